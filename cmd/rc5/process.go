package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/mxmauro/rc5"
	"github.com/mxmauro/rc5/util"
	"github.com/mxmauro/rc5/word"
)

// -----------------------------------------------------------------------------

const (
	actionEncrypt = "encrypt"
	actionDecrypt = "decrypt"

	defaultDestPath = "./processed.txt"
)

type modeKind int

const (
	modeECB modeKind = iota
	modeCBC
	modeCTR
)

// -----------------------------------------------------------------------------

// run dispatches to the generic pipeline based on the selected word width.
// The width is fixed per invocation; everything downstream is monomorphic.
func (o *cliOptions) run(kind modeKind) error {
	switch o.wordBits {
	case 16:
		return process[word.W16](o, kind)
	case 32:
		return process[word.W32](o, kind)
	case 64:
		return process[word.W64](o, kind)
	case 128:
		return process[word.W128](o, kind)
	}
	return errUnsupportedWordSize
}

func process[W word.Word[W]](o *cliOptions, kind modeKind) error {
	// Load the source file.
	src, err := os.ReadFile(o.file)
	if err != nil {
		return util.NewExtendedError(err, "unable to read source file")
	}

	// Create the control block and the cipher around it.
	cb, err := rc5.NewControlBlock[W]([]byte(o.secret), o.rounds)
	if err != nil {
		return err
	}
	defer cb.Destroy()
	cipher := rc5.NewWithBlockCipher[W](cb)

	// Resolve the operation mode parameters.
	mode, err := buildMode[W](o, kind)
	if err != nil {
		return err
	}

	// Process the byte stream.
	var output []byte
	if o.action == actionEncrypt {
		output, err = cipher.Encrypt(src, mode)
	} else {
		output, err = cipher.Decrypt(src, mode)
	}
	if err != nil {
		return err
	}

	// Save into the destination file.
	err = os.WriteFile(o.dest, output, 0644)
	if err != nil {
		return util.NewExtendedError(err, "unable to write destination file")
	}

	fmt.Printf("%s: processed %d bytes into %s\n", cb.Version().String(), len(src), o.dest)

	// Done
	return nil
}

// -----------------------------------------------------------------------------

func buildMode[W word.Word[W]](o *cliOptions, kind modeKind) (rc5.Mode[W], error) {
	switch kind {
	case modeECB:
		return rc5.ECB[W]{}, nil

	case modeCBC:
		if len(o.iv) == 0 {
			if o.action == actionDecrypt {
				return nil, errors.New("an iv is required to decrypt in cbc mode")
			}

			// Generate a random IV and print it so the peer can decrypt.
			iv, err := rc5.RandomIV[W](nil)
			if err != nil {
				return nil, err
			}
			fmt.Printf("iv: %s\n", blockHex(iv))
			return rc5.CBC[W]{IV: iv}, nil
		}

		iv, err := rc5.ParseIV[W](o.iv)
		if err != nil {
			return nil, err
		}
		return rc5.CBC[W]{IV: iv}, nil

	case modeCTR:
		if len(o.nonce) == 0 && len(o.counter) == 0 {
			if o.action == actionDecrypt {
				return nil, errors.New("a nonce and a counter are required to decrypt in ctr mode")
			}

			// Generate a random nonce with a zero counter and print both.
			nc, err := rc5.RandomNonceAndCounter[W](nil)
			if err != nil {
				return nil, err
			}
			fmt.Printf("nonce: %s\ncounter: %s\n", wordHex(nc[0]), wordHex(nc[1]))
			return rc5.CTR[W]{NonceAndCounter: nc}, nil
		}

		nc, err := rc5.ParseNonceAndCounter[W](o.nonce, o.counter)
		if err != nil {
			return nil, err
		}
		return rc5.CTR[W]{NonceAndCounter: nc}, nil
	}

	return nil, errors.New("unknown operation mode")
}

// -----------------------------------------------------------------------------

func blockHex[W word.Word[W]](b word.Block[W]) string {
	buf := make([]byte, b.BlockSize())
	b.Encode(buf)
	return hex.EncodeToString(buf)
}

func wordHex[W word.Word[W]](w W) string {
	buf := make([]byte, w.Bytes())
	w.Encode(buf)
	return hex.EncodeToString(buf)
}
