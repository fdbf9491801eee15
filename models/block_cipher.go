package models

import (
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

// BlockCipher is the minimal interface that must be implemented by a block
// cipher over words of type W. The mode layer and the cipher facade are
// written against it.
type BlockCipher[W word.Word[W]] interface {
	// BlockSize returns the cipher block size in bytes.
	BlockSize() int

	// EncryptBlock applies the single-block encrypt transform.
	EncryptBlock(b word.Block[W]) word.Block[W]
	// DecryptBlock applies the single-block decrypt transform.
	DecryptBlock(b word.Block[W]) word.Block[W]

	// Blocks segments a byte stream into whole blocks. Trailing bytes
	// shorter than one block are not part of any returned block, so the
	// caller must pad first when alignment matters.
	Blocks(stream []byte) []word.Block[W]
	// Stream reassembles blocks into a byte stream.
	Stream(blocks []word.Block[W]) []byte
}
