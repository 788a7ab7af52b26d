package midi

import "fmt"

// Channel is a MIDI channel stored as 0-15. Users usually count channels 1-16,
// see NaturalChannel and Natural.
type Channel uint8

// NewChannel accepts a zero-based channel.
func NewChannel(v uint8) (Channel, error) {
	if v > 0x0F {
		return 0, fmt.Errorf("%w - %d", ErrInvalidChannel, v)
	}
	return Channel(v), nil
}

// NaturalChannel accepts the 1-16 numbering printed on devices.
func NaturalChannel(n int) (Channel, error) {
	if n < 1 || n > 16 {
		return 0, fmt.Errorf("%w - natural channel %d out of 1..16", ErrInvalidChannel, n)
	}
	return Channel(n - 1), nil
}

// Natural returns the channel numbered 1-16.
func (c Channel) Natural() int {
	return int(c&0x0F) + 1
}

func (c Channel) String() string {
	return fmt.Sprintf("ch%d", c.Natural())
}

// CableNumber identifies a virtual cable of a USB-MIDI endpoint.
type CableNumber uint8

func NewCableNumber(v uint8) (CableNumber, error) {
	if v > 0x0F {
		return 0, fmt.Errorf("%w - %d", ErrInvalidCableNumber, v)
	}
	return CableNumber(v), nil
}

// Note is a MIDI key number, 0-127. Middle C (60) is C4.
type Note uint8

func NewNote(v uint8) (Note, error) {
	if v > 0x7F {
		return 0, fmt.Errorf("%w - %d", ErrInvalidNote, v)
	}
	return Note(v), nil
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", noteNames[n%12], int(n)/12-1)
}

type (
	Velocity = U7
	Pressure = U7
	Control  = U7
	Program  = U7
	Bend     = U14
)

// BendCenter is the pitch bend value of a wheel at rest.
const BendCenter Bend = 0x2000

func NewVelocity(v uint8) (Velocity, error) {
	if v > uint8(U7Max) {
		return 0, fmt.Errorf("%w - %d", ErrInvalidVelocity, v)
	}
	return Velocity(v), nil
}

func NewProgram(v uint8) (Program, error) {
	if v > uint8(U7Max) {
		return 0, fmt.Errorf("%w - %d", ErrInvalidProgram, v)
	}
	return Program(v), nil
}
