package word

import (
	"encoding/binary"
	"io"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// -----------------------------------------------------------------------------

// W16, W32 and W64 implement Word over the native unsigned integers. Each
// width carries its own pair of key expansion magic constants, derived from
// the binary expansions of e (P) and the golden ratio (Q).

type W16 uint16
type W32 uint32
type W64 uint64

var (
	_ Word[W16] = W16(0)
	_ Word[W32] = W32(0)
	_ Word[W64] = W64(0)
)

// -----------------------------------------------------------------------------

func randomUnsigned[T constraints.Unsigned](rg io.Reader, size int) (T, error) {
	var buf [8]byte
	var v T

	if _, err := io.ReadFull(rg, buf[:size]); err != nil {
		return 0, err
	}
	for idx := size - 1; idx >= 0; idx-- {
		v = (v << 8) | T(buf[idx])
	}

	// Done
	return v, nil
}

// -----------------------------------------------------------------------------

func (w W16) Bytes() int {
	return 2
}

func (w W16) P() W16 {
	return 0xB7E1
}

func (w W16) Q() W16 {
	return 0x9E37
}

func (w W16) FromByte(b byte) W16 {
	return W16(b)
}

func (w W16) Decode(b []byte) W16 {
	return W16(binary.LittleEndian.Uint16(b))
}

func (w W16) Encode(b []byte) {
	binary.LittleEndian.PutUint16(b, uint16(w))
}

func (w W16) Add(o W16) W16 {
	return w + o
}

func (w W16) Sub(o W16) W16 {
	return w - o
}

func (w W16) Xor(o W16) W16 {
	return w ^ o
}

func (w W16) RotL(o W16) W16 {
	return W16(bits.RotateLeft16(uint16(w), int(o&15)))
}

func (w W16) RotR(o W16) W16 {
	return W16(bits.RotateLeft16(uint16(w), -int(o&15)))
}

func (w W16) Random(rg io.Reader) (W16, error) {
	return randomUnsigned[W16](rg, 2)
}

// -----------------------------------------------------------------------------

func (w W32) Bytes() int {
	return 4
}

func (w W32) P() W32 {
	return 0xB7E15163
}

func (w W32) Q() W32 {
	return 0x9E3779B9
}

func (w W32) FromByte(b byte) W32 {
	return W32(b)
}

func (w W32) Decode(b []byte) W32 {
	return W32(binary.LittleEndian.Uint32(b))
}

func (w W32) Encode(b []byte) {
	binary.LittleEndian.PutUint32(b, uint32(w))
}

func (w W32) Add(o W32) W32 {
	return w + o
}

func (w W32) Sub(o W32) W32 {
	return w - o
}

func (w W32) Xor(o W32) W32 {
	return w ^ o
}

func (w W32) RotL(o W32) W32 {
	return W32(bits.RotateLeft32(uint32(w), int(o&31)))
}

func (w W32) RotR(o W32) W32 {
	return W32(bits.RotateLeft32(uint32(w), -int(o&31)))
}

func (w W32) Random(rg io.Reader) (W32, error) {
	return randomUnsigned[W32](rg, 4)
}

// -----------------------------------------------------------------------------

func (w W64) Bytes() int {
	return 8
}

func (w W64) P() W64 {
	return 0xB7E151628AED2A6B
}

func (w W64) Q() W64 {
	return 0x9E3779B97F4A7C15
}

func (w W64) FromByte(b byte) W64 {
	return W64(b)
}

func (w W64) Decode(b []byte) W64 {
	return W64(binary.LittleEndian.Uint64(b))
}

func (w W64) Encode(b []byte) {
	binary.LittleEndian.PutUint64(b, uint64(w))
}

func (w W64) Add(o W64) W64 {
	return w + o
}

func (w W64) Sub(o W64) W64 {
	return w - o
}

func (w W64) Xor(o W64) W64 {
	return w ^ o
}

func (w W64) RotL(o W64) W64 {
	return W64(bits.RotateLeft64(uint64(w), int(o&63)))
}

func (w W64) RotR(o W64) W64 {
	return W64(bits.RotateLeft64(uint64(w), -int(o&63)))
}

func (w W64) Random(rg io.Reader) (W64, error) {
	return randomUnsigned[W64](rg, 8)
}
