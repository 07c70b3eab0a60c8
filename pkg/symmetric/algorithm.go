package symmetric

import (
	"fmt"
	"strings"
)

// Algorithm selects the cipher used by Transform.
type Algorithm byte

const (
	// AES is the block cipher path: padding, 16-byte blocks, 10/12/14 rounds.
	AES Algorithm = iota
	// XOR is the repeating-key XOR path, one token per rune.
	XOR
)

// String returns the lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AES:
		return "aes"
	case XOR:
		return "xor"
	default:
		return fmt.Sprintf("Algorithm(%d)", byte(a))
	}
}

// ParseAlgorithm parses a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "aes":
		return AES, nil
	case "xor":
		return XOR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Direction selects whether Transform encrypts or decrypts.
type Direction byte

const (
	// Encrypting turns plaintext into wire-format ciphertext.
	Encrypting Direction = iota
	// Decrypting turns wire-format ciphertext back into plaintext.
	Decrypting
)

// String returns "encrypt" or "decrypt".
func (d Direction) String() string {
	if d == Decrypting {
		return "decrypt"
	}

	return "encrypt"
}
