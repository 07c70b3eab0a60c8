package encryption

import (
	"path/filepath"
	"strings"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/pkg/symmetric"
)

// DirectionOf reports how file will be processed under cfg.
// In auto mode files carrying the encrypt extension are decrypted and all others encrypted.
func DirectionOf(cfg *config.Config, file string) symmetric.Direction {
	switch {
	case cfg.Auto && strings.HasSuffix(file, cfg.Suffixes.Encrypt):
		return symmetric.Decrypting
	case cfg.Auto:
		return symmetric.Encrypting
	case cfg.Decrypt:
		return symmetric.Decrypting
	default:
		return symmetric.Encrypting
	}
}

// OutputPath generates the output file path for filename processed in dir.
//
// Encrypting appends the encrypt extension. Decrypting strips it from the base
// name, then adds the decrypt prefix and decrypt extension.
func OutputPath(suffixes config.Suffixes, filename string, dir symmetric.Direction) string {
	if dir == symmetric.Encrypting {
		return filename + suffixes.Encrypt
	}

	base := strings.TrimSuffix(filepath.Base(filename), suffixes.Encrypt)

	return filepath.Join(filepath.Dir(filename), suffixes.DecryptPrefix+base+suffixes.Decrypt)
}
