package midi

import "fmt"

// CodeIndexNumber classifies the payload of a USB-MIDI event packet. It is the
// low nibble of the packet's first byte.
type CodeIndexNumber uint8

const (
	// CINMiscFunction is reserved for future extensions.
	CINMiscFunction CodeIndexNumber = 0x0
	// CINCableEvents is reserved for future expansion.
	CINCableEvents CodeIndexNumber = 0x1
	// CINSystemCommonLen2 carries two-byte system common messages (MTC, SongSelect).
	CINSystemCommonLen2 CodeIndexNumber = 0x2
	// CINSystemCommonLen3 carries three-byte system common messages (SPP).
	CINSystemCommonLen3 CodeIndexNumber = 0x3
	// CINSysex starts or continues a sysex.
	CINSysex CodeIndexNumber = 0x4
	// CINSystemCommonLen1 carries a single-byte system common message, or a
	// sysex ending with the following single byte.
	CINSystemCommonLen1 CodeIndexNumber = 0x5
	// CINSysexEndsNext2 is a sysex ending with the following two bytes.
	CINSysexEndsNext2 CodeIndexNumber = 0x6
	// CINSysexEndsNext3 is a sysex ending with the following three bytes.
	CINSysexEndsNext3  CodeIndexNumber = 0x7
	CINNoteOff         CodeIndexNumber = 0x8
	CINNoteOn          CodeIndexNumber = 0x9
	CINPolyKeypress    CodeIndexNumber = 0xA
	CINControlChange   CodeIndexNumber = 0xB
	CINProgramChange   CodeIndexNumber = 0xC
	CINChannelPressure CodeIndexNumber = 0xD
	CINPitchbendChange CodeIndexNumber = 0xE
	CINSingleByte      CodeIndexNumber = 0xF
)

var cinTable = [16]struct {
	name       string
	payloadLen int
}{
	CINMiscFunction:     {"MiscFunction", 0},
	CINCableEvents:      {"CableEvents", 0},
	CINSystemCommonLen2: {"SystemCommonLen2", 2},
	CINSystemCommonLen3: {"SystemCommonLen3", 3},
	CINSysex:            {"Sysex", 3},
	CINSystemCommonLen1: {"SystemCommonLen1", 1},
	CINSysexEndsNext2:   {"SysexEndsNext2", 2},
	CINSysexEndsNext3:   {"SysexEndsNext3", 3},
	CINNoteOff:          {"NoteOff", 3},
	CINNoteOn:           {"NoteOn", 3},
	CINPolyKeypress:     {"PolyKeypress", 3},
	CINControlChange:    {"ControlChange", 3},
	CINProgramChange:    {"ProgramChange", 2},
	CINChannelPressure:  {"ChannelPressure", 2},
	CINPitchbendChange:  {"PitchbendChange", 3},
	CINSingleByte:       {"SingleByte", 1},
}

// ParseCodeIndexNumber rejects values that do not fit in a nibble.
func ParseCodeIndexNumber(v uint8) (CodeIndexNumber, error) {
	if v > 0x0F {
		return 0, fmt.Errorf("%w - %#02x", ErrInvalidCodeIndexNumber, v)
	}
	return CodeIndexNumber(v), nil
}

// CINFromStatus returns the CIN of a packet carrying a message introduced by s.
func CINFromStatus(s Status) CodeIndexNumber {
	switch s {
	case StatusSysexStart:
		return CINSysex
	case StatusTimeCodeQuarterFrame, StatusSongSelect, StatusMeasureEnd:
		return CINSystemCommonLen2
	case StatusSongPositionPointer:
		return CINSystemCommonLen3
	case StatusTuneRequest, StatusTimingClock, StatusStart, StatusContinue, StatusStop,
		StatusActiveSensing, StatusSystemReset:
		return CINSystemCommonLen1
	}
	// channel voice CINs mirror the command nibble
	return CodeIndexNumber(uint8(s)>>4) & 0x0F
}

// EndSysex returns the CIN of a packet terminating a sysex with n bytes,
// terminator included. Longer tails must be split across packets upstream.
func EndSysex(n int) (CodeIndexNumber, error) {
	switch n {
	case 1:
		return CINSystemCommonLen1, nil
	case 2:
		return CINSysexEndsNext2, nil
	case 3:
		return CINSysexEndsNext3, nil
	}
	return 0, fmt.Errorf("%w - sysex tail of %d bytes", ErrSysexOutOfBounds, n)
}

// PayloadLen is the number of meaningful bytes following the packet header.
func (c CodeIndexNumber) PayloadLen() int {
	return cinTable[c&0x0F].payloadLen
}

func (c CodeIndexNumber) String() string {
	if c > 0x0F {
		return fmt.Sprintf("Unknown:%02x", uint8(c))
	}
	return cinTable[c].name
}
