// Package wire converts between bytes and the textual ciphertext format:
// unsigned decimal integers separated by single spaces.
//
// It also holds the content heuristic that guesses whether a text is already
// in wire format. The heuristic is ambiguous by nature: plaintext made only of
// digits and spaces looks like ciphertext.
package wire

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a text cannot be parsed as wire format.
var ErrMalformed = errors.New("malformed ciphertext")

const separator = " "

//nolint:gochecknoglobals
var digitsAndSpaces = regexp.MustCompile(`^[0-9 ]+$`)

// Encode renders each byte of data in decimal, joined by single spaces.
func Encode(data []byte) string {
	var buf strings.Builder

	buf.Grow(len(data) * 4) //nolint:mnd

	for i, b := range data {
		if i > 0 {
			buf.WriteString(separator)
		}

		buf.WriteString(strconv.Itoa(int(b)))
	}

	return buf.String()
}

// DecodeBytes parses text produced by Encode. Every token must be an integer in 0..255.
func DecodeBytes(text string) ([]byte, error) {
	tokens := Split(text)
	data := make([]byte, len(tokens))

	for i, token := range tokens {
		v, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q) is not a byte value", ErrMalformed, i, token)
		}

		data[i] = byte(v)
	}

	return data, nil
}

// DecodeInts parses space separated non-negative decimal integers of any size up to 32 bits.
func DecodeInts(text string) ([]int, error) {
	tokens := Split(text)
	values := make([]int, len(tokens))

	for i, token := range tokens {
		v, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q) is not a number", ErrMalformed, i, token)
		}

		values[i] = int(v)
	}

	return values, nil
}

// Split cuts text on single spaces and drops trailing empty tokens.
// Empty tokens elsewhere (leading or doubled spaces) are kept so they fail to parse.
func Split(text string) []string {
	tokens := strings.Split(text, separator)

	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}

// LooksEncrypted reports whether text has the shape of wire format: only digits
// and spaces, at least one space, and at least minTokens tokens.
func LooksEncrypted(text string, minTokens int) bool {
	if !digitsAndSpaces.MatchString(text) || !strings.Contains(text, separator) {
		return false
	}

	return len(Split(text)) >= minTokens
}
