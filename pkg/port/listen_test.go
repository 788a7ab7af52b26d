package port

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListenerRun(t *testing.T) {
	stream := bytes.Repeat([]byte{0x90, 0x3C, 0x7F, 0xF8}, 20)
	in := NewSerialIn(bytes.NewReader(stream), 0, nil)

	lists := make(chan PacketList, 64)
	err := NewListener(lists, zap.NewNop()).Run(context.Background(), in)
	require.NoError(t, err)
	close(lists)

	var got []midi.Packet
	for list := range lists {
		assert.True(t, list.Len() > 0 && list.Len() <= MaxPackets)
		got = append(got, list.Packets()...)
	}
	require.Len(t, got, 40)
	assert.Equal(t, midi.Packet{0x09, 0x90, 0x3C, 0x7F}, got[0])
	assert.Equal(t, midi.Packet{0x05, 0xF8}, got[1])
}

func TestListenerDrop(t *testing.T) {
	stream := bytes.Repeat([]byte{0xF8}, 100)
	in := NewSerialIn(bytes.NewReader(stream), 0, nil)

	// nobody reads the channel
	lists := make(chan PacketList)
	l := NewListener(lists, nil)
	l.Drop = true
	require.NoError(t, l.Run(context.Background(), in))
	assert.Equal(t, int64(100), l.Dropped())
}

func TestListenerCancel(t *testing.T) {
	g := NewGomidiIn(0, 4)
	lists := make(chan PacketList)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewListener(lists, nil).Run(ctx, g)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestBridge(t *testing.T) {
	stream := []byte("\x90\x3C\x7F\x3C\x00\xF0\x01\x02\x03\xF7\xFA")
	rec := &recordingTransmitter{}

	err := Bridge(context.Background(), NewSerialIn(bytes.NewReader(stream), 3, nil), rec, nil)
	require.NoError(t, err)

	want := []midi.Packet{
		{0x39, 0x90, 0x3C, 0x7F},
		{0x39, 0x90, 0x3C, 0x00},
		{0x34, 0xF0, 0x01, 0x02},
		{0x36, 0x03, 0xF7},
		{0x35, 0xFA},
	}
	if diff := cmp.Diff(want, rec.packets()); diff != "" {
		t.Errorf("packets mismatch (-want +got):\n%s", diff)
	}
}

type failingTransmitter struct{}

func (failingTransmitter) Transmit(PacketList) error {
	return midi.ErrPort
}

func TestBridgeTransmitError(t *testing.T) {
	in := NewSerialIn(bytes.NewReader([]byte{0xF8}), 0, nil)
	err := Bridge(context.Background(), in, failingTransmitter{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, midi.ErrPort))
}
