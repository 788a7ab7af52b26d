package midi

import "fmt"

// U7 is a MIDI data byte value, 0-0x7F.
type U7 uint8

const (
	U7Min U7 = 0
	U7Max U7 = 0x7F
)

// NewU7 rejects values that do not fit in 7 bits.
func NewU7(v uint8) (U7, error) {
	if v > uint8(U7Max) {
		return 0, fmt.Errorf("%w - %d does not fit in 7 bits", ErrInvalidInteger, v)
	}
	return U7(v), nil
}

// CullU7 strips the high bit.
func CullU7(v uint8) U7 {
	return U7(v & 0x7F)
}

// FillU7 saturates to U7Max.
func FillU7(v uint8) U7 {
	if v > uint8(U7Max) {
		return U7Max
	}
	return U7(v)
}
