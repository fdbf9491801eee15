package rc5_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mxmauro/rc5"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

var (
	plaintextSample = []byte("The quick brown fox jumps over the lazy dog")

	errTestMustFail = errors.New("this sub-test was expected to fail")
)

// -----------------------------------------------------------------------------

// sequenceReader is a deterministic random source for tests.
type sequenceReader struct {
	next byte
}

func (r *sequenceReader) Read(p []byte) (int, error) {
	for idx := range p {
		p[idx] = r.next
		r.next += 1
	}
	return len(p), nil
}

// -----------------------------------------------------------------------------

func createCipher[W word.Word[W]](t *testing.T, key []byte, rounds int) *rc5.Cipher[W] {
	t.Helper()

	cipher, err := rc5.New[W](key, rounds)
	if err != nil {
		t.Fatal(err)
	}
	return cipher
}

func testRoundTrip[W word.Word[W]](t *testing.T, key []byte, rounds int, plaintext []byte, mode rc5.Mode[W]) {
	t.Helper()

	cipher := createCipher[W](t, key, rounds)

	ciphertext, err := cipher.Encrypt(plaintext, mode)
	if err != nil {
		t.Fatal(err)
	}

	decrypted, err := cipher.Decrypt(ciphertext, mode)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatal("original and decrypted text mismatch")
	}
}
