package logic

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/idelchi/symcrypt/pkg/rijndael"
)

// ErrKeySize is returned when a key of unsupported length is requested.
var ErrKeySize = errors.New("key size must be 16, 24 or 32 bytes")

// RunGenerate writes a random hex-encoded key of size bytes to w.
func RunGenerate(w io.Writer, size int) error {
	switch size {
	case rijndael.KeySize128, rijndael.KeySize192, rijndael.KeySize256:
	default:
		return fmt.Errorf("%w: got %d", ErrKeySize, size)
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	if _, err := fmt.Fprintln(w, hex.EncodeToString(key)); err != nil {
		return fmt.Errorf("writing key: %w", err)
	}

	return nil
}
