package rc5

import (
	"errors"
)

// -----------------------------------------------------------------------------

var (
	// ErrInvalidKey is returned by the constructors when the raw key is empty.
	ErrInvalidKey = errors.New("invalid rc5 key, received an empty key")

	// ErrKeyTooLong is returned by the constructors when the raw key exceeds
	// 255 bytes. The wrapped message carries the current and supported lengths.
	ErrKeyTooLong = errors.New("rc5 key is too long")

	// ErrInvalidRounds is returned by the constructors when the round count is
	// outside the 0-255 range.
	ErrInvalidRounds = errors.New("rounds out of bounds")

	// ErrPadding covers every padding validation failure. It is always
	// returned bare, with no detail about which check failed, so a caller
	// cannot be turned into a padding oracle.
	ErrPadding = errors.New("invalid pkcs7 padding")

	ErrParseHex           = errors.New("unable to parse hex string")
	ErrInvalidIV          = errors.New("iv does not decode to one block")
	ErrInvalidNonce       = errors.New("nonce/counter does not decode to one word")
	ErrInvalidVersionData = errors.New("invalid version data")
)
