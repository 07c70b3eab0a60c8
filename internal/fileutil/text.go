package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ReadText reads a file as ISO-8859-1 text: every byte becomes the rune of the same value,
// so arbitrary binary content survives the trip through a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	text, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %q: %w", path, err)
	}

	return string(text), nil
}

// EncodeText converts text back to ISO-8859-1 bytes, the inverse of ReadText.
// Runes above U+00FF have no single-byte form and are replaced with the SUB control byte.
func EncodeText(text string) ([]byte, error) {
	data, err := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).String(text)
	if err != nil {
		return nil, fmt.Errorf("encoding text: %w", err)
	}

	return []byte(data), nil
}
