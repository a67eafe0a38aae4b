package protocol

// Single-bit helpers over a byte. All three are pure and total for
// pos 0-7; a pos greater than 7 is a caller precondition violation and
// yields an unspecified result.

// SetBit returns x with bit pos set to 1.
func SetBit(x byte, pos uint) byte {
	return x | 1<<pos
}

// ClearBit returns x with bit pos cleared to 0.
func ClearBit(x byte, pos uint) byte {
	return x &^ (1 << pos)
}

// GetBit reports whether bit pos of x is set.
func GetBit(x byte, pos uint) bool {
	return x&(1<<pos) != 0
}
