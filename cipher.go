package rc5

import (
	"github.com/mxmauro/rc5/models"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

// Cipher combines a block cipher with mode dispatch, padding and byte-stream
// handling. It is the public entry point for encrypting and decrypting byte
// streams of arbitrary length.
//
// A Cipher is stateless beyond the control block it wraps; the chaining and
// counter state of a mode lives inside the call, so a single Cipher is safe to
// share across concurrent callers.
type Cipher[W word.Word[W]] struct {
	block models.BlockCipher[W]
}

// -----------------------------------------------------------------------------

// New creates an RC5 cipher for the given raw key bytes and round count.
func New[W word.Word[W]](key []byte, rounds int) (*Cipher[W], error) {
	cb, err := NewControlBlock[W](key, rounds)
	if err != nil {
		return nil, err
	}

	// Done
	return NewWithBlockCipher[W](cb), nil
}

// NewWithBlockCipher wraps an existing block cipher implementation.
func NewWithBlockCipher[W word.Word[W]](bc models.BlockCipher[W]) *Cipher[W] {
	return &Cipher[W]{
		block: bc,
	}
}

// BlockSize returns the block size of the underlying cipher in bytes.
func (c *Cipher[W]) BlockSize() int {
	return c.block.BlockSize()
}

// Encrypt encrypts the plaintext under the given operation mode. ECB and CBC
// pad the plaintext with PKCS#7 before encrypting; CTR processes the raw bytes
// as a keystream and accepts any length, including zero.
func (c *Cipher[W]) Encrypt(plaintext []byte, mode Mode[W]) ([]byte, error) {
	return mode.encrypt(c.block, plaintext)
}

// Decrypt decrypts the ciphertext under the given operation mode. ECB and CBC
// validate and strip the PKCS#7 padding after decrypting; CTR never unpads.
func (c *Cipher[W]) Decrypt(ciphertext []byte, mode Mode[W]) ([]byte, error) {
	return mode.decrypt(c.block, ciphertext)
}
