package logic

import (
	"fmt"
	"os"

	"github.com/idelchi/symcrypt/internal/config"
	"github.com/idelchi/symcrypt/internal/fileutil"
	"github.com/idelchi/symcrypt/pkg/symmetric"
)

// Detection is what the content heuristic concluded about one file.
type Detection struct {
	File      string
	Direction symmetric.Direction
}

// Detect runs the content heuristic for the configured algorithm over every file.
// Files that cannot be read are reported on stderr and counted in the returned error.
func Detect(cfg *config.Config) ([]Detection, error) {
	algorithm, err := cfg.Cipher()
	if err != nil {
		return nil, err
	}

	all := *cfg
	all.Auto = true

	files, _, err := resolveFiles(&all)
	if err != nil {
		return nil, fmt.Errorf("resolving files: %w", err)
	}

	var (
		detections []Detection
		failures   int
	)

	for _, file := range files {
		text, err := fileutil.ReadText(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", file, err)

			failures++

			continue
		}

		detections = append(detections, Detection{File: file, Direction: symmetric.Detect(algorithm, text)})
	}

	if failures > 0 {
		return detections, fmt.Errorf("%d file(s) could not be read", failures)
	}

	return detections, nil
}

// RunDetect prints, per file, whether it looks encrypted under the configured algorithm.
func RunDetect(cfg *config.Config) error {
	detections, err := Detect(cfg)

	for _, d := range detections {
		fmt.Printf("%-9s %s\n", directionName(d.Direction), d.File) //nolint:forbidigo
	}

	return err
}

func directionName(dir symmetric.Direction) string {
	if dir == symmetric.Decrypting {
		return "encrypted"
	}

	return "plain"
}
