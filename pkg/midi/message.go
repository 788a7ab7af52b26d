package midi

import "fmt"

// Message is a decoded MIDI event. The set of implementations is closed;
// use a type switch to inspect one.
type Message interface {
	fmt.Stringer
	message()
}

// Channel voice messages
type (
	NoteOff struct {
		Channel  Channel
		Note     Note
		Velocity Velocity
	}
	NoteOn struct {
		Channel  Channel
		Note     Note
		Velocity Velocity
	}
	// NotePressure is polyphonic key pressure.
	NotePressure struct {
		Channel  Channel
		Note     Note
		Pressure Pressure
	}
	ChannelPressure struct {
		Channel  Channel
		Pressure Pressure
	}
	ProgramChange struct {
		Channel Channel
		Program Program
	}
	ControlChange struct {
		Channel Channel
		Control Control
		Value   U7
	}
	PitchBend struct {
		Channel Channel
		Bend    Bend
	}
)

// System common and realtime messages
type (
	TimeCodeQuarterFrame struct{ Value U7 }
	// SongPositionPointer counts MIDI beats (sixteenth notes) since the song
	// start, as an (LSB, MSB) pair.
	SongPositionPointer struct{ LSB, MSB U7 }
	SongSelect          struct{ Song U7 }
	TuneRequest         struct{}
	TimingClock         struct{}
	MeasureEnd          struct{ Value U7 }
	Start               struct{}
	Continue            struct{}
	Stop                struct{}
	ActiveSensing       struct{}
	SystemReset         struct{}
)

// Sysex fragments. A sysex travels as one SysexBegin, any number of SysexCont
// and one of the SysexEnd variants. Data bytes are 7-bit; Encode culls the
// high bit.
type (
	SysexBegin struct{ Data [2]byte }
	SysexCont  struct{ Data [3]byte }
	SysexEnd   struct{}
	SysexEnd1  struct{ Data byte }
	SysexEnd2  struct{ Data [2]byte }

	// SysexEmpty and SysexSingleByte are complete sysex messages short enough
	// to fit one USB-MIDI packet.
	SysexEmpty      struct{}
	SysexSingleByte struct{ Data byte }
)

func (NoteOff) message()              {}
func (NoteOn) message()               {}
func (NotePressure) message()         {}
func (ChannelPressure) message()      {}
func (ProgramChange) message()        {}
func (ControlChange) message()        {}
func (PitchBend) message()            {}
func (TimeCodeQuarterFrame) message() {}
func (SongPositionPointer) message()  {}
func (SongSelect) message()           {}
func (TuneRequest) message()          {}
func (TimingClock) message()          {}
func (MeasureEnd) message()           {}
func (Start) message()                {}
func (Continue) message()             {}
func (Stop) message()                 {}
func (ActiveSensing) message()        {}
func (SystemReset) message()          {}
func (SysexBegin) message()           {}
func (SysexCont) message()            {}
func (SysexEnd) message()             {}
func (SysexEnd1) message()            {}
func (SysexEnd2) message()            {}
func (SysexEmpty) message()           {}
func (SysexSingleByte) message()      {}

// Position returns the song position as a single 14-bit value.
func (m SongPositionPointer) Position() U14 {
	return U14FromPair(m.LSB, m.MSB)
}

func (m NoteOff) String() string {
	return fmt.Sprintf("NoteOff %s k=%s v=%d", m.Channel, m.Note, m.Velocity)
}

func (m NoteOn) String() string {
	return fmt.Sprintf("NoteOn %s k=%s v=%d", m.Channel, m.Note, m.Velocity)
}

func (m NotePressure) String() string {
	return fmt.Sprintf("NotePressure %s k=%s p=%d", m.Channel, m.Note, m.Pressure)
}

func (m ChannelPressure) String() string {
	return fmt.Sprintf("ChannelPressure %s p=%d", m.Channel, m.Pressure)
}

func (m ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange %s prg=%d", m.Channel, m.Program)
}

func (m ControlChange) String() string {
	return fmt.Sprintf("ControlChange %s cc=%d v=%d", m.Channel, m.Control, m.Value)
}

func (m PitchBend) String() string {
	return fmt.Sprintf("PitchBend %s %d", m.Channel, int(m.Bend)-int(BendCenter))
}

func (m TimeCodeQuarterFrame) String() string {
	return fmt.Sprintf("TimeCodeQuarterFrame %02x", uint8(m.Value))
}

func (m SongPositionPointer) String() string {
	return fmt.Sprintf("SongPositionPointer %d", m.Position())
}

func (m SongSelect) String() string { return fmt.Sprintf("SongSelect %d", m.Song) }
func (m MeasureEnd) String() string { return fmt.Sprintf("MeasureEnd %d", m.Value) }

func (TuneRequest) String() string   { return "TuneRequest" }
func (TimingClock) String() string   { return "TimingClock" }
func (Start) String() string         { return "Start" }
func (Continue) String() string      { return "Continue" }
func (Stop) String() string          { return "Stop" }
func (ActiveSensing) String() string { return "ActiveSensing" }
func (SystemReset) String() string   { return "SystemReset" }

func (m SysexBegin) String() string      { return fmt.Sprintf("SysexBegin % 02x", m.Data[:]) }
func (m SysexCont) String() string       { return fmt.Sprintf("SysexCont % 02x", m.Data[:]) }
func (SysexEnd) String() string          { return "SysexEnd" }
func (m SysexEnd1) String() string       { return fmt.Sprintf("SysexEnd1 %02x", m.Data) }
func (m SysexEnd2) String() string       { return fmt.Sprintf("SysexEnd2 % 02x", m.Data[:]) }
func (SysexEmpty) String() string        { return "SysexEmpty" }
func (m SysexSingleByte) String() string { return fmt.Sprintf("SysexSingleByte %02x", m.Data) }

// NewNoteOn validates raw note and velocity values.
func NewNoteOn(ch Channel, note, velocity uint8) (NoteOn, error) {
	n, err := NewNote(note)
	if err != nil {
		return NoteOn{}, err
	}
	v, err := NewVelocity(velocity)
	if err != nil {
		return NoteOn{}, err
	}
	return NoteOn{Channel: ch, Note: n, Velocity: v}, nil
}

// NewNoteOff validates raw note and velocity values.
func NewNoteOff(ch Channel, note, velocity uint8) (NoteOff, error) {
	n, err := NewNote(note)
	if err != nil {
		return NoteOff{}, err
	}
	v, err := NewVelocity(velocity)
	if err != nil {
		return NoteOff{}, err
	}
	return NoteOff{Channel: ch, Note: n, Velocity: v}, nil
}

func NewProgramChange(ch Channel, program uint8) (ProgramChange, error) {
	p, err := NewProgram(program)
	if err != nil {
		return ProgramChange{}, err
	}
	return ProgramChange{Channel: ch, Program: p}, nil
}

func NewControlChange(ch Channel, control, value uint8) (ControlChange, error) {
	c, err := NewU7(control)
	if err != nil {
		return ControlChange{}, err
	}
	v, err := NewU7(value)
	if err != nil {
		return ControlChange{}, err
	}
	return ControlChange{Channel: ch, Control: c, Value: v}, nil
}

// NewPitchBend takes a bend relative to the wheel center, -8192..8191.
// Values beyond the range saturate.
func NewPitchBend(ch Channel, relative int) PitchBend {
	v := relative + int(BendCenter)
	switch {
	case v < 0:
		v = 0
	case v > int(U14Max):
		v = int(U14Max)
	}
	return PitchBend{Channel: ch, Bend: Bend(v)}
}
