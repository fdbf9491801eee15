package rc5

import (
	"fmt"

	"github.com/mxmauro/rc5/models"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

// ControlBlock owns the expanded key, the round count and the derived version
// descriptor, and implements the single-block RC5 round transform. Two control
// blocks built from the same key bytes and round count are functionally
// identical.
//
// A constructed control block is immutable and may be shared read-only across
// any number of goroutines without locking.
type ControlBlock[W word.Word[W]] struct {
	key     *rc5Key[W]
	rounds  int
	version Version
}

var _ models.BlockCipher[word.W32] = (*ControlBlock[word.W32])(nil)

// -----------------------------------------------------------------------------

// NewControlBlock creates an RC5 control block for the given raw key bytes
// (1-255 bytes) and round count (0-255), expanding the key schedule once.
func NewControlBlock[W word.Word[W]](key []byte, rounds int) (*ControlBlock[W], error) {
	var zero W

	// Validate the round count.
	if rounds < 0 || rounds > maxRounds {
		return nil, fmt.Errorf("%w, must be within 0-%d, current: %d", ErrInvalidRounds, maxRounds, rounds)
	}

	// Create the key. This also validates the raw key length.
	kk, err := newRC5Key[W](key, rounds)
	if err != nil {
		return nil, err
	}

	// Create the control block.
	cb := ControlBlock[W]{
		key:    kk,
		rounds: rounds,
		version: Version{
			Algorithm: rc5AlgorithmID,
			WordBits:  uint8(zero.Bytes() * 8),
			Rounds:    uint8(rounds),
			KeyLen:    uint8(kk.rawLen()),
		},
	}

	// Done
	return &cb, nil
}

// Rounds returns the configured round count.
func (cb *ControlBlock[W]) Rounds() int {
	return cb.rounds
}

// Version returns the parametric version descriptor of this control block.
func (cb *ControlBlock[W]) Version() Version {
	return cb.version
}

// BlockSize returns the cipher block size in bytes. A block is exactly two
// words.
func (cb *ControlBlock[W]) BlockSize() int {
	var zero W

	return zero.Bytes() * 2
}

// Destroy zeroizes the owned key material. The control block must not be used
// afterwards.
func (cb *ControlBlock[W]) Destroy() {
	cb.key.zeroize()
}

// -----------------------------------------------------------------------------

// EncryptBlock applies the RC5 encrypt transform to a single block.
func (cb *ControlBlock[W]) EncryptBlock(b word.Block[W]) word.Block[W] {
	sTable := cb.key.sTable
	wordA, wordB := b[0], b[1]

	wordA = wordA.Add(sTable[0])
	wordB = wordB.Add(sTable[1])

	for r := 1; r <= cb.rounds; r++ {
		// Each half uses the already-updated other half.
		wordA = wordA.Xor(wordB).RotL(wordB).Add(sTable[2*r])
		wordB = wordB.Xor(wordA).RotL(wordA).Add(sTable[2*r+1])
	}

	return word.Block[W]{wordA, wordB}
}

// DecryptBlock applies the exact algebraic inverse of EncryptBlock, undoing
// the rounds in reverse order, B before A.
func (cb *ControlBlock[W]) DecryptBlock(b word.Block[W]) word.Block[W] {
	sTable := cb.key.sTable
	wordA, wordB := b[0], b[1]

	for r := cb.rounds; r >= 1; r-- {
		wordB = wordB.Sub(sTable[2*r+1]).RotR(wordA).Xor(wordA)
		wordA = wordA.Sub(sTable[2*r]).RotR(wordB).Xor(wordB)
	}

	wordB = wordB.Sub(sTable[1])
	wordA = wordA.Sub(sTable[0])

	return word.Block[W]{wordA, wordB}
}

// -----------------------------------------------------------------------------

// Blocks segments a byte stream into whole blocks. A trailing chunk shorter
// than one block is not returned; block-aligned modes must pad beforehand.
func (cb *ControlBlock[W]) Blocks(stream []byte) []word.Block[W] {
	bs := cb.BlockSize()

	blocks := make([]word.Block[W], 0, len(stream)/bs)
	for ofs := 0; ofs+bs <= len(stream); ofs += bs {
		blocks = append(blocks, word.DecodeBlock[W](stream[ofs:ofs+bs]))
	}

	// Done
	return blocks
}

// Stream reassembles blocks into a byte stream, each word little-endian,
// words in [A, B] order.
func (cb *ControlBlock[W]) Stream(blocks []word.Block[W]) []byte {
	bs := cb.BlockSize()

	stream := make([]byte, len(blocks)*bs)
	for idx, blk := range blocks {
		blk.Encode(stream[idx*bs:])
	}

	// Done
	return stream
}
