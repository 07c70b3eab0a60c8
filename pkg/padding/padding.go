// Package padding implements PKCS#7 style block padding.
//
// Pad always appends at least one byte, so input that is already a multiple of
// the block size gains a full block of padding. Unpad is permissive: input that
// does not end in a valid pad run is returned unchanged instead of failing.
package padding

import "bytes"

// Pad returns a copy of data extended with PKCS#7 padding to a multiple of blockSize.
func Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)

	return append(padded, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// Unpad strips PKCS#7 padding from data.
// When the last byte is not a plausible pad length for blockSize, or the claimed
// pad run is not uniform, data is returned as is.
func Unpad(data []byte, blockSize int) []byte {
	if !Valid(data, blockSize) {
		return data
	}

	return data[:len(data)-int(data[len(data)-1])]
}

// Valid reports whether data ends in a well-formed pad run for blockSize.
func Valid(data []byte, blockSize int) bool {
	length := len(data)
	if length == 0 {
		return false
	}

	padding := int(data[length-1])
	if padding == 0 || padding > blockSize || padding > length {
		return false
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return false
		}
	}

	return true
}
