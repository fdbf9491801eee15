package rc5_test

import (
	"errors"
	"testing"

	"github.com/mxmauro/rc5"
)

// -----------------------------------------------------------------------------

func TestVersionSerialization(t *testing.T) {
	v := rc5.Version{
		Algorithm: 1,
		WordBits:  32,
		Rounds:    12,
		KeyLen:    16,
	}

	t.Log("Serializing and deserializing a version descriptor...")
	decoded, err := rc5.DeserializeVersion(v.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	if decoded != v {
		t.Fatalf("round trip mismatch, expected %v, got %v", v, decoded)
	}

	t.Log("Deserializing malformed version data (expected to fail)...")
	blob := v.Serialize()
	for _, buf := range [][]byte{
		nil,
		{1},
		blob[:len(blob)-1],
		append(append([]byte(nil), blob...), 0),
		{0xFF, 0xFF, 1, 32, 12, 16},
	} {
		_, err = rc5.DeserializeVersion(buf)
		if err == nil {
			t.Fatal(errTestMustFail)
		}
		if !errors.Is(err, rc5.ErrInvalidVersionData) {
			t.Fatal("unexpected error:", err)
		}
	}
}
