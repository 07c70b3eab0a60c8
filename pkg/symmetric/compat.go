package symmetric

import "github.com/idelchi/symcrypt/pkg/wire"

// Detect guesses the direction for text from its shape alone.
//
// Text made only of digits and spaces, with at least one space, is taken as
// ciphertext; AES additionally requires at least 16 tokens. Plaintext such as
// "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16" is therefore misread as
// ciphertext. Prefer an explicit Direction.
func Detect(alg Algorithm, text string) Direction {
	minTokens := 0
	if alg == AES {
		minTokens = aesMinTokens
	}

	if wire.LooksEncrypted(text, minTokens) {
		return Decrypting
	}

	return Encrypting
}

// ProcessWithAES encrypts or decrypts text with AES, whichever Detect chooses.
func ProcessWithAES(text, key string) (string, error) {
	return Transform(AES, Detect(AES, text), text, key)
}

// ProcessWithXOR encrypts or decrypts text with XOR, whichever Detect chooses.
func ProcessWithXOR(text, key string) (string, error) {
	return Transform(XOR, Detect(XOR, text), text, key)
}
