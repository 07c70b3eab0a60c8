// Package rijndael is a table-driven, from-scratch AES block cipher
// (FIPS-197) for 128, 192 and 256-bit keys.
//
// Keys of any other length are coerced to 128 bits rather than rejected;
// see CoerceKey. The implementation makes no constant-time claims.
package rijndael

import "crypto/cipher"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Cipher is an AES instance bound to one expanded key.
// It is immutable and safe for concurrent use.
type Cipher struct {
	keys RoundKeys
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a block cipher for it.
// Unlike crypto/aes it never fails: non-standard key lengths are coerced.
func NewCipher(key []byte) *Cipher {
	return &Cipher{keys: Expand(key)}
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Rounds returns the number of rounds selected by the key length.
func (c *Cipher) Rounds() int { return c.keys.Rounds() }

// Encrypt encrypts the first block in src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}

	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	state := ToState(src)
	encryptState(&state, c.keys)

	out := FromState(&state)
	copy(dst, out[:])
}

// Decrypt decrypts the first block in src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}

	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	state := ToState(src)
	decryptState(&state, c.keys)

	out := FromState(&state)
	copy(dst, out[:])
}
