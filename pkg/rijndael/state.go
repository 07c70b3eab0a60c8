package rijndael

// State is the 4x4 byte matrix a block is processed in.
// Bytes fill it column by column: state[row][col] = block[col*4+row].
type State [4][4]byte

// ToState loads the first BlockSize bytes of block into a State.
func ToState(block []byte) State {
	var s State

	for col := range 4 {
		for row := range 4 {
			s[row][col] = block[col*4+row]
		}
	}

	return s
}

// FromState flattens s back into block order. It is the inverse of ToState.
func FromState(s *State) [BlockSize]byte {
	var block [BlockSize]byte

	for col := range 4 {
		for row := range 4 {
			block[col*4+row] = s[row][col]
		}
	}

	return block
}
