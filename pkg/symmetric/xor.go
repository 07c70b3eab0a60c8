package symmetric

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/idelchi/symcrypt/pkg/wire"
)

// xorEncrypt XORs every rune of plaintext with the key rune at the same index
// (the key repeats) and writes each result in decimal followed by a space.
func xorEncrypt(plaintext, key string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	keyRunes := []rune(key)
	if len(keyRunes) == 0 {
		return "", ErrEmptyKey
	}

	var buf strings.Builder

	var i int

	for _, r := range plaintext {
		buf.WriteString(strconv.Itoa(int(r ^ keyRunes[i%len(keyRunes)])))
		buf.WriteByte(' ')

		i++
	}

	return buf.String(), nil
}

// xorDecrypt reverses xorEncrypt. Values that do not XOR back to a Unicode
// scalar value (surrogates, anything above U+10FFFF) are malformed.
func xorDecrypt(ciphertext, key string) (string, error) {
	values, err := wire.DecodeInts(ciphertext)
	if err != nil {
		return "", err
	}

	if len(values) == 0 {
		return "", nil
	}

	keyRunes := []rune(key)
	if len(keyRunes) == 0 {
		return "", ErrEmptyKey
	}

	var buf strings.Builder

	for i, v := range values {
		r := rune(v) ^ keyRunes[i%len(keyRunes)]
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: token %d (%d) does not decode to a character", ErrMalformedCiphertext, i, v)
		}

		buf.WriteRune(r)
	}

	return buf.String(), nil
}
