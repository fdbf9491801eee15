package rc5_test

import (
	"bytes"
	"testing"

	"github.com/mxmauro/rc5"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

func TestECBRoundTrip(t *testing.T) {
	key := make([]byte, 16)

	for _, rounds := range []int{0, 8, 12, 20} {
		ecbRoundTripAllWidths(t, key, rounds, plaintextSample)
	}

	t.Log("Round tripping messages of awkward lengths...")
	for _, size := range []int{0, 1, 7, 8, 9, 63, 64, 65} {
		ecbRoundTripAllWidths(t, key, 12, bytes.Repeat([]byte{0xA5}, size))
	}
}

func ecbRoundTripAllWidths(t *testing.T, key []byte, rounds int, plaintext []byte) {
	t.Helper()

	testRoundTrip[word.W16](t, key, rounds, plaintext, rc5.ECB[word.W16]{})
	testRoundTrip[word.W32](t, key, rounds, plaintext, rc5.ECB[word.W32]{})
	testRoundTrip[word.W64](t, key, rounds, plaintext, rc5.ECB[word.W64]{})
	testRoundTrip[word.W128](t, key, rounds, plaintext, rc5.ECB[word.W128]{})
}

func TestECBIdenticalBlocks(t *testing.T) {
	cipher := createCipher[word.W32](t, []byte("SECRET_KEY_BYTES"), 12)

	// Two identical plaintext blocks must yield two identical ciphertext
	// blocks under ECB. That property is exactly why ECB is unsuitable for
	// anything confidentiality-sensitive.
	plaintext := bytes.Repeat([]byte("12345678"), 2)
	ciphertext, err := cipher.Encrypt(plaintext, rc5.ECB[word.W32]{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ciphertext[0:8], ciphertext[8:16]) {
		t.Fatal("identical plaintext blocks produced different ciphertext blocks in ecb mode")
	}
}

// -----------------------------------------------------------------------------

func TestCBCRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	rg := sequenceReader{}

	for _, rounds := range []int{0, 8, 12, 20} {
		cbcRoundTrip[word.W16](t, key, rounds, plaintextSample, &rg)
		cbcRoundTrip[word.W32](t, key, rounds, plaintextSample, &rg)
		cbcRoundTrip[word.W64](t, key, rounds, plaintextSample, &rg)
		cbcRoundTrip[word.W128](t, key, rounds, plaintextSample, &rg)
	}

	t.Log("Round tripping an empty and a multi-block message...")
	cbcRoundTrip[word.W32](t, key, 12, nil, &rg)
	cbcRoundTrip[word.W32](t, key, 12, bytes.Repeat(plaintextSample, 10), &rg)
}

func cbcRoundTrip[W word.Word[W]](t *testing.T, key []byte, rounds int, plaintext []byte, rg *sequenceReader) {
	t.Helper()

	iv, err := rc5.RandomIV[W](rg)
	if err != nil {
		t.Fatal(err)
	}
	testRoundTrip[W](t, key, rounds, plaintext, rc5.CBC[W]{IV: iv})
}

func TestCBCHidesIdenticalBlocks(t *testing.T) {
	cipher := createCipher[word.W32](t, []byte("SECRET_KEY_BYTES"), 12)

	iv := word.Block[word.W32]{0xDEADBEEF, 0x01234567}
	plaintext := bytes.Repeat([]byte("12345678"), 2)
	ciphertext, err := cipher.Encrypt(plaintext, rc5.CBC[word.W32]{IV: iv})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(ciphertext[0:8], ciphertext[8:16]) {
		t.Fatal("cbc chaining did not diffuse identical plaintext blocks")
	}
}

// -----------------------------------------------------------------------------

func TestCTRRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	rg := sequenceReader{}

	for _, rounds := range []int{0, 8, 12, 20} {
		ctrRoundTrip[word.W16](t, key, rounds, plaintextSample, &rg)
		ctrRoundTrip[word.W32](t, key, rounds, plaintextSample, &rg)
		ctrRoundTrip[word.W64](t, key, rounds, plaintextSample, &rg)
		ctrRoundTrip[word.W128](t, key, rounds, plaintextSample, &rg)
	}

	t.Log("Round tripping arbitrary lengths, including zero...")
	for _, size := range []int{0, 1, 3, 8, 13, 100} {
		ctrRoundTrip[word.W32](t, key, 12, bytes.Repeat([]byte{0x5A}, size), &rg)
	}
}

func ctrRoundTrip[W word.Word[W]](t *testing.T, key []byte, rounds int, plaintext []byte, rg *sequenceReader) {
	t.Helper()

	nc, err := rc5.RandomNonceAndCounter[W](rg)
	if err != nil {
		t.Fatal(err)
	}
	testRoundTrip[W](t, key, rounds, plaintext, rc5.CTR[W]{NonceAndCounter: nc})
}

func TestCTRPreservesLength(t *testing.T) {
	cipher := createCipher[word.W32](t, []byte("SECRET_KEY_BYTES"), 12)

	nc := word.Block[word.W32]{0xCAFEBABE, 0}
	for _, size := range []int{0, 1, 5, 8, 17} {
		ciphertext, err := cipher.Encrypt(make([]byte, size), rc5.CTR[word.W32]{NonceAndCounter: nc})
		if err != nil {
			t.Fatal(err)
		}
		if len(ciphertext) != size {
			t.Fatalf("ctr changed the stream length, expected %d, got %d", size, len(ciphertext))
		}
	}
}

func TestCTRCounterIncrement(t *testing.T) {
	cb, err := rc5.NewControlBlock[word.W16]([]byte("SECRET_KEY_BYTES"), 12)
	if err != nil {
		t.Fatal(err)
	}
	cipher := rc5.NewWithBlockCipher[word.W16](cb)

	// Start with the counter word at its maximum so the second keystream
	// block exercises the wraparound back to zero.
	nonce := word.W16(0x1234)
	nc := word.Block[word.W16]{nonce, 0xFFFF}

	ciphertext, err := cipher.Encrypt(make([]byte, 8), rc5.CTR[word.W16]{NonceAndCounter: nc})
	if err != nil {
		t.Fatal(err)
	}

	// Encrypting zeros exposes the raw keystream. Only the last word of the
	// counter block may change between the two blocks.
	expected := cb.Stream([]word.Block[word.W16]{
		cb.EncryptBlock(word.Block[word.W16]{nonce, 0xFFFF}),
		cb.EncryptBlock(word.Block[word.W16]{nonce, 0x0000}),
	})
	if !bytes.Equal(ciphertext, expected) {
		t.Fatal("ctr keystream does not match per-block counter encryption")
	}
}
