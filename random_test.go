package rc5_test

import (
	"testing"

	"github.com/mxmauro/rc5"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

func TestRandomIV(t *testing.T) {
	rg := sequenceReader{}

	iv, err := rc5.RandomIV[word.W32](&rg)
	if err != nil {
		t.Fatal(err)
	}

	// The sequence reader yields 0,1,2,... so both words are predictable.
	if iv != (word.Block[word.W32]{0x03020100, 0x07060504}) {
		t.Fatalf("unexpected iv %v", iv)
	}
}

func TestRandomNonceAndCounter(t *testing.T) {
	rg := sequenceReader{next: 1}

	nc, err := rc5.RandomNonceAndCounter[word.W64](&rg)
	if err != nil {
		t.Fatal(err)
	}

	if nc[0] == 0 {
		t.Fatal("nonce word was not drawn from the generator")
	}
	if nc[1] != 0 {
		t.Fatal("counter word must start at zero")
	}
}

func TestRandomNonceAndCounter128(t *testing.T) {
	rg := sequenceReader{next: 1}

	nc, err := rc5.RandomNonceAndCounter[word.W128](&rg)
	if err != nil {
		t.Fatal(err)
	}

	if nc[1] != (word.W128{}) {
		t.Fatal("counter word must start at zero")
	}
	if nc[0] == (word.W128{}) {
		t.Fatal("nonce word was not drawn from the generator")
	}
}
