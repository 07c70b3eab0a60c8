package logic

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/symcrypt/internal/config"
)

// resolveFiles expands positional args into the files to process.
//
// Files named explicitly are always kept. Directories are walked, and of the
// files found only those matching the direction are kept: encrypted files
// when decrypting, all others when encrypting. Auto mode keeps everything.
// Returns the kept files and the number of files seen.
func resolveFiles(cfg *config.Config) ([]string, int, error) {
	var (
		files   []string
		scanned int
	)

	seen := make(map[string]struct{})

	keep := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range cfg.Files {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, scanned, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			keep(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			scanned++

			if wanted(cfg, path) {
				keep(filepath.Clean(path))
			}

			return nil
		})
		if err != nil {
			return nil, scanned, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	return files, scanned, nil
}

func wanted(cfg *config.Config, path string) bool {
	if cfg.Auto {
		return true
	}

	encrypted := strings.HasSuffix(path, cfg.Suffixes.Encrypt)

	if cfg.Decrypt {
		return encrypted
	}

	return !encrypted
}
