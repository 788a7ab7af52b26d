package midi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketAccessors(t *testing.T) {
	p := Packet{0x39, 0x93, 0x40, 0x7F}

	assert.Equal(t, CableNumber(3), p.CableNumber())
	assert.Equal(t, CINNoteOn, p.CodeIndexNumber())
	assert.Equal(t, []byte{0x93, 0x40, 0x7F}, p.Payload())

	s, ok := p.Status()
	require.True(t, ok)
	assert.Equal(t, StatusNoteOn, s)

	ch, ok := p.Channel()
	require.True(t, ok)
	assert.Equal(t, Channel(3), ch)

	q := p.WithCableNumber(0xA)
	assert.Equal(t, CableNumber(0xA), q.CableNumber())
	assert.Equal(t, CINNoteOn, q.CodeIndexNumber())
}

func TestPacketPayloadBounds(t *testing.T) {
	p := Packet{byte(CINProgramChange), 0xC0, 0x05, 0xEE}
	assert.Equal(t, []byte{0xC0, 0x05}, p.Payload())

	p = Packet{byte(CINMiscFunction), 0x90, 0x40, 0x7F}
	assert.Empty(t, p.Payload())
	_, ok := p.Status()
	assert.False(t, ok)
	_, ok = p.Channel()
	assert.False(t, ok)

	p = Packet{byte(CINSystemCommonLen1), 0xF8}
	_, ok = p.Channel()
	assert.False(t, ok)
}

func TestPacketSysexBody(t *testing.T) {
	testcases := []struct {
		p    Packet
		want []byte
	}{
		{Packet{0x04, 0xF0, 0x01, 0x02}, []byte{0x01, 0x02}},
		{Packet{0x04, 0x03, 0x04, 0x05}, []byte{0x03, 0x04, 0x05}},
		{Packet{0x05, 0xF7}, []byte{}},
		{Packet{0x06, 0x06, 0xF7}, []byte{0x06}},
		{Packet{0x07, 0x06, 0x07, 0xF7}, []byte{0x06, 0x07}},
		{Packet{0x06, 0xF0, 0xF7}, []byte{}},
		{Packet{0x07, 0xF0, 0x42, 0xF7}, []byte{0x42}},
		{Packet{0x09, 0x90, 0x40, 0x7F}, []byte{}},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.want, tc.p.SysexBody(), tc.p.String())
	}
}

func TestPacketFromBytes(t *testing.T) {
	p, err := PacketFromBytes([]byte{0x09, 0x90, 0x40, 0x7F})
	require.NoError(t, err)
	assert.Equal(t, Packet{0x09, 0x90, 0x40, 0x7F}, p)
	assert.Equal(t, []byte{0x09, 0x90, 0x40, 0x7F}, p.Bytes())

	_, err = PacketFromBytes([]byte{0x09, 0x90})
	assert.True(t, errors.Is(err, ErrPacketSize))
}
