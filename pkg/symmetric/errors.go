package symmetric

import (
	"errors"

	"github.com/idelchi/symcrypt/pkg/wire"
)

var (
	// ErrMalformedCiphertext is returned when ciphertext has a non-numeric or
	// out-of-range token, or (AES) a token count that is not a whole number of blocks.
	ErrMalformedCiphertext = wire.ErrMalformed
	// ErrEmptyKey is returned by the XOR cipher when asked to process text without a key.
	ErrEmptyKey = errors.New("empty key")
	// ErrUnknownAlgorithm is returned when parsing an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
