package symmetric

import "fmt"

// Encrypt encrypts plaintext with AES under key and returns wire-format text.
// Keys that are not 16, 24 or 32 bytes are coerced to 16 bytes.
func Encrypt(plaintext, key string) string {
	return aesEncrypt(plaintext, key)
}

// Decrypt reverses Encrypt. Padding that does not verify is left in place
// rather than reported, so a wrong key yields garbage instead of an error.
func Decrypt(ciphertext, key string) (string, error) {
	return aesDecrypt(ciphertext, key)
}

// Transform runs alg in direction dir over text.
func Transform(alg Algorithm, dir Direction, text, key string) (string, error) {
	switch alg {
	case AES:
		if dir == Decrypting {
			return aesDecrypt(text, key)
		}

		return aesEncrypt(text, key), nil
	case XOR:
		if dir == Decrypting {
			return xorDecrypt(text, key)
		}

		return xorEncrypt(text, key)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}
