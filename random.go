package rc5

import (
	"crypto/rand"
	"io"

	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

// RandomIV generates a pseudo-random initialization vector of one block. If rg
// is nil, crypto/rand.Reader is used. The generator is consumed only for this
// call; it is not retained.
func RandomIV[W word.Word[W]](rg io.Reader) (word.Block[W], error) {
	var blk word.Block[W]
	var err error

	if rg == nil {
		rg = rand.Reader
	}

	blk[0], err = blk[0].Random(rg)
	if err != nil {
		return blk, err
	}
	blk[1], err = blk[1].Random(rg)
	if err != nil {
		return blk, err
	}

	// Done
	return blk, nil
}

// RandomNonceAndCounter generates a CTR starting block: a random nonce word
// followed by a counter word initialized to zero. If rg is nil,
// crypto/rand.Reader is used.
func RandomNonceAndCounter[W word.Word[W]](rg io.Reader) (word.Block[W], error) {
	var blk word.Block[W]
	var err error

	if rg == nil {
		rg = rand.Reader
	}

	// The last word is the counter and stays at its zero value.
	blk[0], err = blk[0].Random(rg)
	if err != nil {
		return blk, err
	}

	// Done
	return blk, nil
}
