package rc5

import (
	"fmt"

	bstd "github.com/deneonet/benc/std"
)

// -----------------------------------------------------------------------------

const (
	rc5AlgorithmID = 1

	versionDataFormat = 1
)

// -----------------------------------------------------------------------------

// Version is the parametric identity of a control block: the algorithm id
// (always 1 for RC5), the word size in bits, the round count and the key
// length in bytes. It is derived at construction time and immutable.
type Version struct {
	Algorithm uint8
	WordBits  uint8
	Rounds    uint8
	KeyLen    uint8
}

// -----------------------------------------------------------------------------

// String renders the human-readable version string, e.g. "RC5-v1/32/12/16".
func (v Version) String() string {
	return fmt.Sprintf("RC5-v%d/%d/%d/%d", v.Algorithm, v.WordBits, v.Rounds, v.KeyLen)
}

// Serialize encodes the version descriptor so callers can persist the cipher
// parameters alongside ciphertext.
func (v Version) Serialize() []byte {
	bufSize := bstd.SizeUint16() +
		bstd.SizeByte() +
		bstd.SizeByte() +
		bstd.SizeByte() +
		bstd.SizeByte()
	buf := make([]byte, bufSize)

	ofs := bstd.MarshalUint16(0, buf, versionDataFormat)
	ofs = bstd.MarshalByte(ofs, buf, v.Algorithm)
	ofs = bstd.MarshalByte(ofs, buf, v.WordBits)
	ofs = bstd.MarshalByte(ofs, buf, v.Rounds)
	_ = bstd.MarshalByte(ofs, buf, v.KeyLen)

	// Done
	return buf
}

// DeserializeVersion decodes a version descriptor previously created with
// Serialize.
func DeserializeVersion(buf []byte) (Version, error) {
	bufSize := len(buf)
	if bufSize <= bstd.SizeUint16() {
		return Version{}, ErrInvalidVersionData
	}

	// Initialize the version.
	v := Version{}

	// Deserialize data.
	ofs, format, err := bstd.UnmarshalUint16(0, buf)
	if err != nil {
		return Version{}, ErrInvalidVersionData
	}
	switch format {
	case 1:
		ofs, v.Algorithm, err = bstd.UnmarshalByte(ofs, buf)
		if err != nil {
			return Version{}, ErrInvalidVersionData
		}
		ofs, v.WordBits, err = bstd.UnmarshalByte(ofs, buf)
		if err != nil {
			return Version{}, ErrInvalidVersionData
		}
		ofs, v.Rounds, err = bstd.UnmarshalByte(ofs, buf)
		if err != nil {
			return Version{}, ErrInvalidVersionData
		}
		ofs, v.KeyLen, err = bstd.UnmarshalByte(ofs, buf)
		if err != nil {
			return Version{}, ErrInvalidVersionData
		}

	default:
		return Version{}, ErrInvalidVersionData
	}

	// Check if we reached the end of the buffer.
	if ofs != bufSize {
		return Version{}, ErrInvalidVersionData
	}

	// Done
	return v, nil
}
