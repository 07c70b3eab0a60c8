// Package symmetric is the entry point for text encryption with either the
// AES engine in package rijndael (ECB, PKCS#7 style padding) or a repeating-key XOR.
//
// Ciphertext is text: decimal byte values separated by spaces. Callers choose
// the algorithm and direction explicitly through Transform, Encrypt and Decrypt.
// Detect and the ProcessWith functions instead guess the direction from the
// shape of the input, for callers that only hold text of unknown kind.
//
// All functions are stateless and safe for concurrent use.
package symmetric
