package rc5

import (
	"fmt"

	"github.com/mxmauro/rc5/util"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

const (
	maxKeyBytes = 255
	maxRounds   = 255
)

// -----------------------------------------------------------------------------

// rc5Key owns the raw key bytes and the expanded round-key table (S-table)
// derived from them. It is created once and never mutated afterwards.
type rc5Key[W word.Word[W]] struct {
	raw    []byte
	sTable []W
}

// -----------------------------------------------------------------------------

func newRC5Key[W word.Word[W]](raw []byte, rounds int) (*rc5Key[W], error) {
	// Validate the raw key at the public boundary.
	if len(raw) == 0 {
		return nil, ErrInvalidKey
	}
	if len(raw) > maxKeyBytes {
		return nil, fmt.Errorf("%w, supported: %d max, current: %d", ErrKeyTooLong, maxKeyBytes, len(raw))
	}

	// Create the key with its expanded S-table.
	kk := rc5Key[W]{
		raw:    append([]byte(nil), raw...),
		sTable: expandKey[W](raw, rounds),
	}

	// Done
	return &kk, nil
}

func (kk *rc5Key[W]) rawLen() int {
	return len(kk.raw)
}

func (kk *rc5Key[W]) zeroize() {
	var z W

	util.SafeZeroMem(kk.raw)
	for idx := range kk.sTable {
		kk.sTable[idx] = z
	}
}

// -----------------------------------------------------------------------------

// expandKey derives the S-table of 2*(rounds+1) words from the raw key using
// the RC5 mixing schedule. Identical (key, rounds) inputs always yield an
// identical table.
func expandKey[W word.Word[W]](key []byte, rounds int) []W {
	var a, b, zero W

	wordBytes := zero.Bytes()

	// Key length is clamped to 1 for table sizing. The constructor rejects
	// empty keys before we get here, so the clamp only documents the sizing
	// rule of the published algorithm.
	keyLen := len(key)
	if keyLen == 0 {
		keyLen = 1
	}

	// Pack the key bytes into words, little-endian, last byte first.
	c := (keyLen + wordBytes - 1) / wordBytes
	keyWords := make([]W, c)
	for idx := len(key) - 1; idx >= 0; idx-- {
		ix := idx / wordBytes
		keyWords[ix] = keyWords[ix].RotL(zero.FromByte(8)).Add(zero.FromByte(key[idx]))
	}

	// Seed the S-table with the magic constants.
	t := 2 * (rounds + 1)
	sTable := make([]W, t)
	sTable[0] = zero.P()
	for idx := 1; idx < t; idx++ {
		sTable[idx] = sTable[idx-1].Add(zero.Q())
	}

	// Mix the key words into the table. The second rotation amount is the
	// word value a+b, reduced modulo the bit width, not a fixed shift.
	iterations := 3 * t
	if c > t {
		iterations = 3 * c
	}
	i, j := 0, 0
	for n := 0; n < iterations; n++ {
		a = sTable[i].Add(a).Add(b).RotL(zero.FromByte(3))
		b = keyWords[j].Add(a).Add(b).RotL(a.Add(b))

		sTable[i] = a
		keyWords[j] = b

		i = (i + 1) % t
		j = (j + 1) % c
	}

	// The key words are scratch; only the table persists.
	return sTable
}
