package encryption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/fileutil"
	"github.com/idelchi/symcrypt/pkg/symmetric"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// algorithm selected by --algorithm
	algorithm symmetric.Algorithm

	// key holds the raw key material
	key string

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
// The key is taken from --key or --key-file and hex decoded when --hex is set.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	algorithm, err := cfg.Cipher()
	if err != nil {
		return nil, err
	}

	material, err := LoadKey(cfg)
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	return &Processor{
		cfg:       cfg,
		algorithm: algorithm,
		key:       material,
		results:   make(chan Result, len(cfg.Files)),
	}, nil
}

// LoadKey returns the key material named by the configuration.
// A trailing line break in a key file is not part of the key.
func LoadKey(cfg *config.Config) (string, error) {
	material := cfg.Key

	if cfg.KeyFile != "" {
		data, err := os.ReadFile(filepath.Clean(cfg.KeyFile))
		if err != nil {
			return "", fmt.Errorf("reading key file: %w", err)
		}

		material = strings.TrimRight(string(data), "\r\n")
		if material == "" {
			return "", fmt.Errorf("%w: %q", ErrEmptyKeyFile, cfg.KeyFile)
		}
	}

	if !cfg.Hex {
		return material, nil
	}

	decoded, err := key.FromHex(strings.TrimSpace(material))
	if err != nil {
		return "", fmt.Errorf("decoding hex key: %w", err)
	}

	return string(decoded), nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// Returns the number of successfully processed files, the number of errors
// and the combined size of all outputs.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
			}

			if !p.cfg.Delete {
				continue
			}

			if err := os.Remove(result.Input); err != nil {
				fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)

				continue
			}

			if !p.cfg.Quiet {
				fmt.Printf("Deleted %q\n", result.Input) //nolint:forbidigo
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			direction := DirectionOf(p.cfg, file)
			outPath := OutputPath(p.cfg.Suffixes, file, direction)

			size, err := p.processFile(file, outPath, direction)
			if err != nil {
				p.results <- Result{Input: file, Direction: direction, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, Direction: direction, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile transforms a single file into outPath.
// It writes into a temporary file and performs an atomic rename on completion.
func (p *Processor) processFile(filename, outPath string, dir symmetric.Direction) (size int64, err error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return 0, fmt.Errorf("%w: %q", ErrSameOutput, filename)
	}

	text, err := fileutil.ReadText(filename)
	if err != nil {
		return 0, err
	}

	transformed, err := symmetric.Transform(p.algorithm, dir, text, p.key)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", dir, p.algorithm, err)
	}

	data, err := fileutil.EncodeText(transformed)
	if err != nil {
		return 0, err
	}

	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if _, err := tc.TmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}

	if err := tc.Commit(outPath); err != nil {
		return 0, err
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}
