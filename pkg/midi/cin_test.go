package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadLen(t *testing.T) {
	want := [16]int{0, 0, 2, 3, 3, 1, 2, 3, 3, 3, 3, 3, 2, 2, 3, 1}
	for c, n := range want {
		cin, err := ParseCodeIndexNumber(uint8(c))
		require.NoError(t, err)
		assert.Equal(t, n, cin.PayloadLen(), cin.String())
	}

	_, err := ParseCodeIndexNumber(0x10)
	assert.True(t, errors.Is(err, ErrInvalidCodeIndexNumber))
}

func TestCINFromStatus(t *testing.T) {
	testcases := map[Status]CodeIndexNumber{
		StatusNoteOff:              CINNoteOff,
		StatusNoteOn:               CINNoteOn,
		StatusNotePressure:         CINPolyKeypress,
		StatusControlChange:        CINControlChange,
		StatusProgramChange:        CINProgramChange,
		StatusChannelPressure:      CINChannelPressure,
		StatusPitchBend:            CINPitchbendChange,
		StatusSysexStart:           CINSysex,
		StatusTimeCodeQuarterFrame: CINSystemCommonLen2,
		StatusSongPositionPointer:  CINSystemCommonLen3,
		StatusSongSelect:           CINSystemCommonLen2,
		StatusMeasureEnd:           CINSystemCommonLen2,
		StatusTuneRequest:          CINSystemCommonLen1,
		StatusTimingClock:          CINSystemCommonLen1,
		StatusSystemReset:          CINSystemCommonLen1,
	}
	for s, want := range testcases {
		assert.Equal(t, want, CINFromStatus(s), s.String())
	}
}

func TestEndSysex(t *testing.T) {
	for n, want := range map[int]CodeIndexNumber{1: CINSystemCommonLen1, 2: CINSysexEndsNext2, 3: CINSysexEndsNext3} {
		got, err := EndSysex(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, n := range []int{0, 4, -1} {
		_, err := EndSysex(n)
		assert.True(t, errors.Is(err, ErrSysexOutOfBounds))
	}
}
