package word

import (
	"io"
)

// -----------------------------------------------------------------------------

// Word is the capability set an RC5 machine word must provide. RC5 is defined
// parametrically over the word width, so every arithmetic and bit operation the
// cipher performs goes through this interface. All methods are pure; a Word
// value is never mutated in place.
//
// Amount-carrying rotations take the rotation amount as another Word and reduce
// it modulo the bit width, which is what makes RC5's data-dependent rotations
// possible.
type Word[W any] interface {
	// Bytes returns the width of the word in bytes.
	Bytes() int

	// P returns the width-specific key expansion magic constant P.
	P() W
	// Q returns the width-specific key expansion magic constant Q.
	Q() W

	// FromByte widens an 8-bit value to a word.
	FromByte(b byte) W

	// Decode parses a little-endian byte slice of exactly Bytes() bytes.
	Decode(b []byte) W
	// Encode writes the word little-endian into b, which must hold at
	// least Bytes() bytes.
	Encode(b []byte)

	// Add returns the wraparound sum of the two words.
	Add(o W) W
	// Sub returns the wraparound difference of the two words.
	Sub(o W) W
	// Xor returns the bitwise exclusive-or of the two words.
	Xor(o W) W

	// RotL rotates the word left by the value of o modulo the bit width.
	RotL(o W) W
	// RotR rotates the word right by the value of o modulo the bit width.
	RotR(o W) W

	// Random draws a uniform word from the given generator.
	Random(rg io.Reader) (W, error)
}

// -----------------------------------------------------------------------------

// Block is a single cipher block: exactly two words (N=2, fixed for RC5).
// It serializes as word[0] || word[1], each little-endian.
type Block[W Word[W]] [2]W

// BlockSize returns the size of an encoded block in bytes.
func (b Block[W]) BlockSize() int {
	return b[0].Bytes() * 2
}

// Encode writes the block into dst, which must hold at least BlockSize() bytes.
func (b Block[W]) Encode(dst []byte) {
	wb := b[0].Bytes()
	b[0].Encode(dst[:wb])
	b[1].Encode(dst[wb : 2*wb])
}

// DecodeBlock parses a block from exactly one block worth of bytes.
func DecodeBlock[W Word[W]](src []byte) Block[W] {
	var b Block[W]

	wb := b[0].Bytes()
	b[0] = b[0].Decode(src[:wb])
	b[1] = b[1].Decode(src[wb : 2*wb])
	return b
}
