package rijndael

import "github.com/idelchi/symcrypt/pkg/gf256"

func encryptState(s *State, keys RoundKeys) {
	rounds := keys.Rounds()

	addRoundKey(s, keys[0])

	for round := 1; round < rounds; round++ {
		subBytes(s)
		shiftRows(s)
		mixColumns(s)
		addRoundKey(s, keys[round])
	}

	// No MixColumns in the final round.
	subBytes(s)
	shiftRows(s)
	addRoundKey(s, keys[rounds])
}

func decryptState(s *State, keys RoundKeys) {
	rounds := keys.Rounds()

	addRoundKey(s, keys[rounds])

	for round := rounds - 1; round > 0; round-- {
		invShiftRows(s)
		invSubBytes(s)
		addRoundKey(s, keys[round])
		invMixColumns(s)
	}

	invShiftRows(s)
	invSubBytes(s)
	addRoundKey(s, keys[0])
}

// addRoundKey XORs column col with word col of the round key, most significant byte in row 0.
func addRoundKey(s *State, key [4]uint32) {
	for col, word := range key {
		for row := range 4 {
			s[row][col] ^= byte(word >> (8 * (3 - row)))
		}
	}
}

func subBytes(s *State) {
	for row := range 4 {
		for col := range 4 {
			s[row][col] = sbox[s[row][col]]
		}
	}
}

func invSubBytes(s *State) {
	for row := range 4 {
		for col := range 4 {
			s[row][col] = invSbox[s[row][col]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func shiftRows(s *State) {
	for row := 1; row < 4; row++ {
		s[row] = [4]byte{s[row][row%4], s[row][(row+1)%4], s[row][(row+2)%4], s[row][(row+3)%4]}
	}
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s *State) {
	for row := 1; row < 4; row++ {
		var shifted [4]byte
		for col := range 4 {
			shifted[(col+row)%4] = s[row][col]
		}

		s[row] = shifted
	}
}

func mixColumns(s *State) {
	for col := range 4 {
		s0, s1, s2, s3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gf256.Multiply(2, s0) ^ gf256.Multiply(3, s1) ^ s2 ^ s3
		s[1][col] = s0 ^ gf256.Multiply(2, s1) ^ gf256.Multiply(3, s2) ^ s3
		s[2][col] = s0 ^ s1 ^ gf256.Multiply(2, s2) ^ gf256.Multiply(3, s3)
		s[3][col] = gf256.Multiply(3, s0) ^ s1 ^ s2 ^ gf256.Multiply(2, s3)
	}
}

func invMixColumns(s *State) {
	for col := range 4 {
		s0, s1, s2, s3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gf256.Multiply(14, s0) ^ gf256.Multiply(11, s1) ^ gf256.Multiply(13, s2) ^ gf256.Multiply(9, s3)
		s[1][col] = gf256.Multiply(9, s0) ^ gf256.Multiply(14, s1) ^ gf256.Multiply(11, s2) ^ gf256.Multiply(13, s3)
		s[2][col] = gf256.Multiply(13, s0) ^ gf256.Multiply(9, s1) ^ gf256.Multiply(14, s2) ^ gf256.Multiply(11, s3)
		s[3][col] = gf256.Multiply(11, s0) ^ gf256.Multiply(13, s1) ^ gf256.Multiply(9, s2) ^ gf256.Multiply(14, s3)
	}
}
