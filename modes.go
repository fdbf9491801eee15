package rc5

import (
	"github.com/mxmauro/rc5/models"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

// Mode selects the operation mode for a single encrypt or decrypt call. A mode
// value is transient; it is constructed per call and is not bound to the
// control block, so one cipher can be reused across calls with different
// modes.
//
// Exactly three modes exist: ECB, CBC and CTR.
type Mode[W word.Word[W]] interface {
	encrypt(bc models.BlockCipher[W], plaintext []byte) ([]byte, error)
	decrypt(bc models.BlockCipher[W], ciphertext []byte) ([]byte, error)
}

// ECB is the Electronic Codebook mode. Every block is encrypted independently,
// so identical plaintext blocks yield identical ciphertext blocks. Do not use
// it where confidentiality matters; it exists for completeness and testing.
type ECB[W word.Word[W]] struct{}

// CBC is the Cipher Block Chaining mode. It requires an initialization vector
// of exactly one block.
type CBC[W word.Word[W]] struct {
	IV word.Block[W]
}

// CTR is the Counter mode, a stream cipher over the block transform. It
// requires an initial nonce-and-counter block whose last word is the counter.
// CTR never pads and accepts inputs of arbitrary length.
type CTR[W word.Word[W]] struct {
	NonceAndCounter word.Block[W]
}

// -----------------------------------------------------------------------------

func (ECB[W]) encrypt(bc models.BlockCipher[W], plaintext []byte) ([]byte, error) {
	padded, _ := PKCS7Pad(append([]byte(nil), plaintext...), bc.BlockSize())

	inBlocks := bc.Blocks(padded)
	outBlocks := make([]word.Block[W], len(inBlocks))
	for idx, blk := range inBlocks {
		outBlocks[idx] = bc.EncryptBlock(blk)
	}

	// Done
	return bc.Stream(outBlocks), nil
}

func (ECB[W]) decrypt(bc models.BlockCipher[W], ciphertext []byte) ([]byte, error) {
	inBlocks := bc.Blocks(ciphertext)
	outBlocks := make([]word.Block[W], len(inBlocks))
	for idx, blk := range inBlocks {
		outBlocks[idx] = bc.DecryptBlock(blk)
	}

	plaintext, _, err := PKCS7Unpad(bc.Stream(outBlocks), bc.BlockSize())
	if err != nil {
		return nil, err
	}

	// Done
	return plaintext, nil
}

// -----------------------------------------------------------------------------

func (m CBC[W]) encrypt(bc models.BlockCipher[W], plaintext []byte) ([]byte, error) {
	padded, _ := PKCS7Pad(append([]byte(nil), plaintext...), bc.BlockSize())

	prev := m.IV
	inBlocks := bc.Blocks(padded)
	outBlocks := make([]word.Block[W], len(inBlocks))
	for idx, blk := range inBlocks {
		prev[0] = prev[0].Xor(blk[0])
		prev[1] = prev[1].Xor(blk[1])

		ct := bc.EncryptBlock(prev)
		outBlocks[idx] = ct
		prev = ct
	}

	// Done
	return bc.Stream(outBlocks), nil
}

func (m CBC[W]) decrypt(bc models.BlockCipher[W], ciphertext []byte) ([]byte, error) {
	prev := m.IV
	inBlocks := bc.Blocks(ciphertext)
	outBlocks := make([]word.Block[W], len(inBlocks))
	for idx, blk := range inBlocks {
		pt := bc.DecryptBlock(blk)
		pt[0] = pt[0].Xor(prev[0])
		pt[1] = pt[1].Xor(prev[1])

		// Chain on the original ciphertext block, not the decrypted one.
		prev = blk
		outBlocks[idx] = pt
	}

	plaintext, _, err := PKCS7Unpad(bc.Stream(outBlocks), bc.BlockSize())
	if err != nil {
		return nil, err
	}

	// Done
	return plaintext, nil
}

// -----------------------------------------------------------------------------

func (m CTR[W]) encrypt(bc models.BlockCipher[W], plaintext []byte) ([]byte, error) {
	return ctrApply[W](bc, m.NonceAndCounter, plaintext), nil
}

// Counter mode decryption is the same keystream operation as encryption.
func (m CTR[W]) decrypt(bc models.BlockCipher[W], ciphertext []byte) ([]byte, error) {
	return ctrApply[W](bc, m.NonceAndCounter, ciphertext), nil
}

func ctrApply[W word.Word[W]](bc models.BlockCipher[W], counter word.Block[W], stream []byte) []byte {
	var zero W

	bs := bc.BlockSize()
	one := zero.FromByte(1)

	output := make([]byte, len(stream))
	keystream := make([]byte, bs)
	for ofs := 0; ofs < len(stream); ofs += bs {
		end := ofs + bs
		if end > len(stream) {
			end = len(stream)
		}

		bc.EncryptBlock(counter).Encode(keystream)
		for ix := ofs; ix < end; ix++ {
			output[ix] = stream[ix] ^ keystream[ix-ofs]
		}

		// Only the counter word advances; the nonce words never change.
		counter[1] = counter[1].Add(one)
	}

	// Done
	return output
}
