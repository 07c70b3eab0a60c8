// Package gf256 implements arithmetic over GF(2^8) with the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1.
package gf256

// Poly is the low byte of the reduction polynomial (x^8 is implied).
const Poly = 0x1b

// Add returns a + b in GF(2^8).
func Add(a, b byte) byte {
	return a ^ b
}

// Multiply returns a * b in GF(2^8) using shift-and-add multiplication.
func Multiply(a, b byte) byte {
	var product byte

	for range 8 {
		if b&1 != 0 {
			product ^= a
		}

		highBit := a & 0x80
		a <<= 1

		if highBit != 0 {
			a ^= Poly
		}

		b >>= 1
	}

	return product
}
