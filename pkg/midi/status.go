package midi

import "fmt"

// Status is the command part of a MIDI status byte. Channel voice statuses
// are stored with the channel nibble cleared.
type Status uint8

const (
	StatusNoteOff         Status = 0x80
	StatusNoteOn          Status = 0x90
	StatusNotePressure    Status = 0xA0
	StatusControlChange   Status = 0xB0
	StatusProgramChange   Status = 0xC0
	StatusChannelPressure Status = 0xD0
	StatusPitchBend       Status = 0xE0

	StatusSysexStart Status = 0xF0

	// System common
	StatusTimeCodeQuarterFrame Status = 0xF1
	StatusSongPositionPointer  Status = 0xF2
	StatusSongSelect           Status = 0xF3
	StatusTuneRequest          Status = 0xF6

	// System realtime
	StatusTimingClock   Status = 0xF8
	StatusMeasureEnd    Status = 0xF9 // non-standard
	StatusStart         Status = 0xFA
	StatusContinue      Status = 0xFB
	StatusStop          Status = 0xFC
	StatusActiveSensing Status = 0xFE
	StatusSystemReset   Status = 0xFF
)

const (
	// SysexStartByte opens a system exclusive message.
	SysexStartByte byte = 0xF0
	// SysexEndByte terminates a system exclusive message. It is NOT a status byte.
	SysexEndByte byte = 0xF7
)

// IsNonStatus reports whether b is data for stream parsing purposes: either a
// plain data byte or the sysex terminator.
func IsNonStatus(b byte) bool {
	return b < 0x80 || b == SysexEndByte
}

// IsChannelStatus reports whether b is a channel voice status byte.
func IsChannelStatus(b byte) bool {
	return 0x80 <= b && b < 0xF0
}

// ParseStatus resolves a wire byte to its Status, masking the channel nibble of
// channel voice statuses. Undefined system bytes (0xF4, 0xF5, 0xFD) and
// non-status bytes are rejected with a *StatusError.
func ParseStatus(b byte) (Status, error) {
	if IsNonStatus(b) {
		return 0, &StatusError{Byte: b}
	}
	if IsChannelStatus(b) {
		return Status(b & 0xF0), nil
	}

	switch s := Status(b); s {
	case StatusSysexStart,
		StatusTimeCodeQuarterFrame, StatusSongPositionPointer, StatusSongSelect, StatusTuneRequest,
		StatusTimingClock, StatusMeasureEnd, StatusStart, StatusContinue, StatusStop,
		StatusActiveSensing, StatusSystemReset:
		return s, nil
	}
	return 0, &StatusError{Byte: b}
}

// IsChannel reports whether the status is a channel voice command.
func (s Status) IsChannel() bool {
	return IsChannelStatus(byte(s))
}

// IsRealtime reports whether the status is a single-byte system realtime
// message, which may appear between the bytes of any other message.
// MeasureEnd sits in the realtime range but carries a data byte, so it is not.
func (s Status) IsRealtime() bool {
	return s >= StatusTimingClock && s.ExpectedLen() == 1
}

// ExpectedLen returns the size in bytes of the message introduced by the
// status, including the status byte itself. Sysex has no fixed length and
// reports 3, the most one packet can carry.
func (s Status) ExpectedLen() int {
	switch s {
	case StatusTuneRequest, StatusTimingClock, StatusStart, StatusContinue, StatusStop,
		StatusActiveSensing, StatusSystemReset:
		return 1
	case StatusProgramChange, StatusChannelPressure, StatusTimeCodeQuarterFrame,
		StatusSongSelect, StatusMeasureEnd:
		return 2
	default:
		return 3
	}
}

var statusNames = map[Status]string{
	StatusNoteOff:              "NoteOff",
	StatusNoteOn:               "NoteOn",
	StatusNotePressure:         "NotePressure",
	StatusControlChange:        "ControlChange",
	StatusProgramChange:        "ProgramChange",
	StatusChannelPressure:      "ChannelPressure",
	StatusPitchBend:            "PitchBend",
	StatusSysexStart:           "SysexStart",
	StatusTimeCodeQuarterFrame: "TimeCodeQuarterFrame",
	StatusSongPositionPointer:  "SongPositionPointer",
	StatusSongSelect:           "SongSelect",
	StatusTuneRequest:          "TuneRequest",
	StatusTimingClock:          "TimingClock",
	StatusMeasureEnd:           "MeasureEnd",
	StatusStart:                "Start",
	StatusContinue:             "Continue",
	StatusStop:                 "Stop",
	StatusActiveSensing:        "ActiveSensing",
	StatusSystemReset:          "SystemReset",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown:%02x", uint8(s))
}
