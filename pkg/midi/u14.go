package midi

import "fmt"

// U14 is a 14-bit value carried on the wire as two data bytes, LSB first.
type U14 uint16

const (
	U14Min U14 = 0
	U14Max U14 = 0x3FFF
)

func NewU14(v uint16) (U14, error) {
	if v > uint16(U14Max) {
		return 0, fmt.Errorf("%w - %d does not fit in 14 bits", ErrInvalidInteger, v)
	}
	return U14(v), nil
}

func CullU14(v uint16) U14 {
	return U14(v & 0x3FFF)
}

func FillU14(v uint16) U14 {
	if v > uint16(U14Max) {
		return U14Max
	}
	return U14(v)
}

// U14FromPair composes a 14-bit value from its (LSB, MSB) halves.
func U14FromPair(lsb, msb U7) U14 {
	return U14(uint16(msb)<<7 | uint16(lsb))
}

// NewU14FromBytes validates both halves before composing them.
func NewU14FromBytes(lsb, msb byte) (U14, error) {
	l, err := NewU7(lsb)
	if err != nil {
		return 0, err
	}
	m, err := NewU7(msb)
	if err != nil {
		return 0, err
	}
	return U14FromPair(l, m), nil
}

// Pair splits the value into (LSB, MSB).
func (v U14) Pair() (lsb, msb U7) {
	return CullU7(uint8(v & 0x7F)), CullU7(uint8(v >> 7))
}
