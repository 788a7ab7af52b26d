package midi

import "fmt"

// U6 is a 6-bit value, 0-0x3F.
type U6 uint8

const (
	U6Min U6 = 0
	U6Max U6 = 0x3F
)

func NewU6(v uint8) (U6, error) {
	if v > uint8(U6Max) {
		return 0, fmt.Errorf("%w - %d does not fit in 6 bits", ErrInvalidInteger, v)
	}
	return U6(v), nil
}

func CullU6(v uint8) U6 {
	return U6(v & 0x3F)
}

func FillU6(v uint8) U6 {
	if v > uint8(U6Max) {
		return U6Max
	}
	return U6(v)
}
