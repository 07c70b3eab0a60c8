package symmetric

import (
	"crypto/cipher"
	"fmt"

	"github.com/idelchi/symcrypt/pkg/padding"
	"github.com/idelchi/symcrypt/pkg/rijndael"
	"github.com/idelchi/symcrypt/pkg/wire"
)

// aesMinTokens is the smallest token count the AES heuristic accepts as
// ciphertext: one block, which is also the smallest real ciphertext.
const aesMinTokens = rijndael.BlockSize

func aesEncrypt(plaintext, key string) string {
	block := rijndael.NewCipher([]byte(key))

	padded := padding.Pad([]byte(plaintext), rijndael.BlockSize)

	return wire.Encode(encryptECB(block, padded))
}

func aesDecrypt(ciphertext, key string) (string, error) {
	data, err := wire.DecodeBytes(ciphertext)
	if err != nil {
		return "", err
	}

	if len(data)%rijndael.BlockSize != 0 {
		return "", fmt.Errorf("%w: %d tokens is not a multiple of %d", ErrMalformedCiphertext, len(data), rijndael.BlockSize)
	}

	block := rijndael.NewCipher([]byte(key))

	return string(padding.Unpad(decryptECB(block, data), rijndael.BlockSize)), nil
}

// encryptECB encrypts each block of data independently. len(data) must be a multiple of the block size.
func encryptECB(block cipher.Block, data []byte) []byte {
	ciphertext := make([]byte, len(data))
	size := block.BlockSize()

	for i := 0; i < len(data); i += size {
		block.Encrypt(ciphertext[i:i+size], data[i:i+size])
	}

	return ciphertext
}

func decryptECB(block cipher.Block, data []byte) []byte {
	plaintext := make([]byte, len(data))
	size := block.BlockSize()

	for i := 0; i < len(data); i += size {
		block.Decrypt(plaintext[i:i+size], data[i:i+size])
	}

	return plaintext
}
