package midi

import "fmt"

// U4 is a nibble, 0-0x0F.
type U4 uint8

const (
	U4Min U4 = 0
	U4Max U4 = 0x0F
)

func NewU4(v uint8) (U4, error) {
	if v > uint8(U4Max) {
		return 0, fmt.Errorf("%w - %d does not fit in 4 bits", ErrInvalidInteger, v)
	}
	return U4(v), nil
}

func CullU4(v uint8) U4 {
	return U4(v & 0x0F)
}

func FillU4(v uint8) U4 {
	if v > uint8(U4Max) {
		return U4Max
	}
	return U4(v)
}

// SplitU4 returns the low and high nibbles of a byte.
func SplitU4(v byte) (lsb, msb U4) {
	return CullU4(v), CullU4(v >> 4)
}
