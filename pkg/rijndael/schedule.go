package rijndael

import "encoding/binary"

// Supported key sizes in bytes.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

// RoundKeys holds one four-word key per round plus the initial whitening key.
type RoundKeys [][4]uint32

// Rounds returns the round count for a key of keyLen bytes.
// Non-standard lengths are coerced to 128 bits and therefore use 10 rounds.
func Rounds(keyLen int) int {
	switch keyLen {
	case KeySize192:
		return 12
	case KeySize256:
		return 14
	default:
		return 10
	}
}

// CoerceKey returns key unchanged when it is 16, 24 or 32 bytes long.
// Any other key is truncated or zero-padded to 16 bytes; no error is reported,
// so a 5-byte key and the same key followed by zero bytes are indistinguishable.
func CoerceKey(key []byte) []byte {
	switch len(key) {
	case KeySize128, KeySize192, KeySize256:
		return key
	}

	coerced := make([]byte, KeySize128)
	copy(coerced, key)

	return coerced
}

// Expand runs the key schedule over key (after coercion) and returns Rounds+1 round keys.
func Expand(key []byte) RoundKeys {
	key = CoerceKey(key)

	rounds := Rounds(len(key))
	keyWords := len(key) / 4
	totalWords := 4 * (rounds + 1)

	words := make([]uint32, totalWords)

	for i := range keyWords {
		words[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := keyWords; i < totalWords; i++ {
		temp := words[i-1]

		switch {
		case i%keyWords == 0:
			temp = subWord(rotWord(temp)) ^ uint32(rcon[i/keyWords-1])<<24
		case keyWords > 6 && i%keyWords == 4:
			temp = subWord(temp)
		}

		words[i] = words[i-keyWords] ^ temp
	}

	keys := make(RoundKeys, rounds+1)
	for round := range keys {
		copy(keys[round][:], words[round*4:round*4+4])
	}

	return keys
}

// Rounds returns the number of rounds the keys were expanded for.
func (k RoundKeys) Rounds() int {
	return len(k) - 1
}

// rotWord rotates w left by one byte: [a b c d] -> [b c d a].
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord applies the S-box to each byte of w.
func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}
