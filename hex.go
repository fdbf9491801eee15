package rc5

import (
	"encoding/hex"
	"fmt"

	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

// ParseIV decodes a hex-encoded initialization vector. The decoded value must
// be exactly one block long.
func ParseIV[W word.Word[W]](s string) (word.Block[W], error) {
	var blk word.Block[W]

	raw, err := hex.DecodeString(s)
	if err != nil {
		return blk, fmt.Errorf("%w: %v", ErrParseHex, err)
	}

	bs := blk.BlockSize()
	if len(raw) != bs {
		return blk, fmt.Errorf("%w, expected %d bytes, got %d", ErrInvalidIV, bs, len(raw))
	}

	// Done
	return word.DecodeBlock[W](raw), nil
}

// ParseNonceAndCounter decodes hex-encoded nonce and counter strings into a
// CTR starting block. Each string must decode to exactly one word; the nonce
// becomes the fixed word, the counter the incrementing one.
func ParseNonceAndCounter[W word.Word[W]](nonce string, counter string) (word.Block[W], error) {
	var blk word.Block[W]
	var zero W

	wordBytes := zero.Bytes()

	nonceRaw, err := hex.DecodeString(nonce)
	if err != nil {
		return blk, fmt.Errorf("%w: %v", ErrParseHex, err)
	}
	if len(nonceRaw) != wordBytes {
		return blk, fmt.Errorf("%w, expected %d bytes, got %d", ErrInvalidNonce, wordBytes, len(nonceRaw))
	}

	counterRaw, err := hex.DecodeString(counter)
	if err != nil {
		return blk, fmt.Errorf("%w: %v", ErrParseHex, err)
	}
	if len(counterRaw) != wordBytes {
		return blk, fmt.Errorf("%w, expected %d bytes, got %d", ErrInvalidNonce, wordBytes, len(counterRaw))
	}

	blk[0] = zero.Decode(nonceRaw)
	blk[1] = zero.Decode(counterRaw)

	// Done
	return blk, nil
}
