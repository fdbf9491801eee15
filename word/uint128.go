package word

import (
	"io"

	"lukechampine.com/uint128"
)

// -----------------------------------------------------------------------------

// W128 implements Word for the optional 128-bit width on top of
// lukechampine.com/uint128. Only the wrapping arithmetic variants are used.
type W128 uint128.Uint128

var _ Word[W128] = W128{}

var (
	p128 = uint128.New(0xF39CC0605CEDC835, 0x9E3779B97F4A7C15)
	q128 = uint128.New(0xBF7158809CF4F3C7, 0xB7E151628AED2A6A)
)

// -----------------------------------------------------------------------------

func (w W128) Bytes() int {
	return 16
}

func (w W128) P() W128 {
	return W128(p128)
}

func (w W128) Q() W128 {
	return W128(q128)
}

func (w W128) FromByte(b byte) W128 {
	return W128(uint128.From64(uint64(b)))
}

func (w W128) Decode(b []byte) W128 {
	return W128(uint128.FromBytes(b[:16]))
}

func (w W128) Encode(b []byte) {
	uint128.Uint128(w).PutBytes(b[:16])
}

func (w W128) Add(o W128) W128 {
	return W128(uint128.Uint128(w).AddWrap(uint128.Uint128(o)))
}

func (w W128) Sub(o W128) W128 {
	return W128(uint128.Uint128(w).SubWrap(uint128.Uint128(o)))
}

func (w W128) Xor(o W128) W128 {
	return W128(uint128.Uint128(w).Xor(uint128.Uint128(o)))
}

func (w W128) RotL(o W128) W128 {
	n := uint(o.Lo & 127)
	if n == 0 {
		return w
	}
	v := uint128.Uint128(w)
	return W128(v.Lsh(n).Or(v.Rsh(128 - n)))
}

func (w W128) RotR(o W128) W128 {
	n := uint(o.Lo & 127)
	if n == 0 {
		return w
	}
	v := uint128.Uint128(w)
	return W128(v.Rsh(n).Or(v.Lsh(128 - n)))
}

func (w W128) Random(rg io.Reader) (W128, error) {
	var buf [16]byte

	if _, err := io.ReadFull(rg, buf[:]); err != nil {
		return W128{}, err
	}

	// Done
	return W128(uint128.FromBytes(buf[:])), nil
}
