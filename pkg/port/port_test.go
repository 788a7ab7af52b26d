package port

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func receiveAll(t *testing.T, r Receiver) []midi.Packet {
	t.Helper()
	var packets []midi.Packet
	for {
		p, ok, err := r.Receive()
		if err == io.EOF {
			return packets
		}
		require.NoError(t, err)
		if ok {
			packets = append(packets, p)
		}
	}
}

func TestPacketList(t *testing.T) {
	var l PacketList
	for i := 0; i < MaxPackets; i++ {
		require.NoError(t, l.Push(midi.Packet{0x05, 0xF8}))
	}
	assert.True(t, l.Full())
	assert.True(t, errors.Is(l.Push(midi.Packet{}), midi.ErrBufferFull))
	assert.Len(t, l.Packets(), MaxPackets)

	l.Clear()
	assert.Equal(t, 0, l.Len())

	s := Single(midi.Packet{0x09, 0x90, 0x40, 0x7F})
	assert.Equal(t, []midi.Packet{{0x09, 0x90, 0x40, 0x7F}}, s.Packets())
}

func TestSerialIn(t *testing.T) {
	in := NewSerialIn(bytes.NewReader([]byte("\x91\x3C\x7F\x3C\x00\xF0\x01\xF7")), 1, nil)

	want := []midi.Packet{
		{0x19, 0x91, 0x3C, 0x7F},
		{0x19, 0x91, 0x3C, 0x00},
		{0x17, 0xF0, 0x01, 0xF7},
	}
	if diff := cmp.Diff(want, receiveAll(t, in)); diff != "" {
		t.Errorf("packets mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialInSysexAbandoned(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	stream := []byte("\xF0\x43\x10\xF8\x01\x90\x3C\x7F\xF0\x01\xF7")
	in := NewSerialIn(bytes.NewReader(stream), 0, zap.New(core))

	want := []midi.Packet{
		{0x04, 0xF0, 0x43, 0x10},
		{0x05, 0xF8},
		{0x09, 0x90, 0x3C, 0x7F},
		{0x07, 0xF0, 0x01, 0xF7},
	}
	if diff := cmp.Diff(want, receiveAll(t, in)); diff != "" {
		t.Errorf("packets mismatch (-want +got):\n%s", diff)
	}

	// the realtime byte does not abandon the sysex, the note on does
	abandoned := logs.FilterMessage("sysex abandoned").All()
	require.Len(t, abandoned, 1)
	assert.Equal(t, uint8(0x90), abandoned[0].ContextMap()["byte"])
	assert.Equal(t, midi.ErrSysexInterrupted.Error(), abandoned[0].ContextMap()["error"])
}

func TestSerialOut(t *testing.T) {
	messages := []midi.Message{
		midi.NoteOn{Channel: 0, Note: 60, Velocity: 100},
		midi.NoteOn{Channel: 0, Note: 64, Velocity: 100},
		midi.TimingClock{},
		midi.NoteOn{Channel: 0, Note: 67, Velocity: 100},
		midi.NoteOn{Channel: 1, Note: 67, Velocity: 100},
		midi.SysexSingleByte{Data: 0x42},
		midi.NoteOn{Channel: 1, Note: 60, Velocity: 0},
	}

	var plain bytes.Buffer
	require.NoError(t, WriteMessages(NewSerialOut(&plain), 0, messages...))
	assert.Equal(t, []byte{
		0x90, 60, 100,
		0x90, 64, 100,
		0xF8,
		0x90, 67, 100,
		0x91, 67, 100,
		0xF0, 0x42, 0xF7,
		0x91, 60, 0,
	}, plain.Bytes())

	var compact bytes.Buffer
	out := NewSerialOut(&compact)
	out.RunningStatus = true
	require.NoError(t, WriteMessages(out, 0, messages...))
	assert.Equal(t, []byte{
		0x90, 60, 100,
		64, 100,
		0xF8,
		67, 100,
		0x91, 67, 100,
		0xF0, 0x42, 0xF7,
		0x91, 60, 0,
	}, compact.Bytes())

	// the compressed stream parses back to the same messages
	packets := receiveAll(t, NewSerialIn(&compact, 0, nil))
	decoded, err := midi.DecodeAll(packets)
	require.NoError(t, err)
	assert.Equal(t, messages, decoded)
}

func TestSerialOutRunningStatusAfterMeasureEnd(t *testing.T) {
	messages := []midi.Message{
		midi.NoteOn{Channel: 0, Note: 0x3C, Velocity: 0x7F},
		midi.MeasureEnd{Value: 5},
		midi.NoteOn{Channel: 0, Note: 0x40, Velocity: 0x7F},
		midi.TimingClock{},
		midi.NoteOn{Channel: 0, Note: 0x43, Velocity: 0x7F},
	}

	var buf bytes.Buffer
	out := NewSerialOut(&buf)
	out.RunningStatus = true
	require.NoError(t, WriteMessages(out, 0, messages...))

	// MeasureEnd carries a data byte, so the status must be repeated after it
	assert.Equal(t, []byte{
		0x90, 0x3C, 0x7F,
		0xF9, 0x05,
		0x90, 0x40, 0x7F,
		0xF8,
		0x43, 0x7F,
	}, buf.Bytes())

	packets := receiveAll(t, NewSerialIn(&buf, 0, nil))
	decoded, err := midi.DecodeAll(packets)
	require.NoError(t, err)
	assert.Equal(t, messages, decoded)
}

type shortWriter struct{}

func (shortWriter) Write(b []byte) (int, error) {
	return len(b) / 2, nil
}

func TestShortWrite(t *testing.T) {
	list := Single(midi.Encode(midi.NoteOn{Channel: 0, Note: 60, Velocity: 100}))

	err := NewSerialOut(shortWriter{}).Transmit(list)
	assert.True(t, errors.Is(err, midi.ErrPort))

	err = NewUSBOut(shortWriter{}).Transmit(list)
	assert.True(t, errors.Is(err, midi.ErrPort))
}

func TestUSBRoundTrip(t *testing.T) {
	packets := []midi.Packet{
		{0x09, 0x90, 0x3C, 0x7F},
		{0x25, 0xF8},
		{0x04, 0xF0, 0x01, 0x02},
		{0x06, 0x03, 0xF7},
	}
	var list PacketList
	for _, p := range packets {
		require.NoError(t, list.Push(p))
	}

	var buf bytes.Buffer
	require.NoError(t, NewUSBOut(&buf).Transmit(list))
	assert.Equal(t, 4*len(packets), buf.Len())

	// zero padding between transfers is skipped
	buf.Write(make([]byte, 8))
	buf.Write([]byte{0x0B, 0xB0, 0x07, 0x64})

	want := append(packets, midi.Packet{0x0B, 0xB0, 0x07, 0x64})
	if diff := cmp.Diff(want, receiveAll(t, NewUSBIn(&buf))); diff != "" {
		t.Errorf("packets mismatch (-want +got):\n%s", diff)
	}
}

func TestUSBInTruncated(t *testing.T) {
	in := NewUSBIn(bytes.NewReader([]byte{0x09, 0x90}))
	_, ok, err := in.Receive()
	assert.False(t, ok)
	assert.True(t, errors.Is(err, midi.ErrPacketSize))
}

func TestWriteMessagesBatches(t *testing.T) {
	var messages []midi.Message
	for i := 0; i < MaxPackets*2+3; i++ {
		messages = append(messages, midi.TimingClock{})
	}

	rec := &recordingTransmitter{}
	require.NoError(t, WriteMessages(rec, 4, messages...))
	require.Len(t, rec.lists, 3)
	assert.Equal(t, MaxPackets, rec.lists[0].Len())
	assert.Equal(t, 3, rec.lists[2].Len())
	assert.Equal(t, midi.CableNumber(4), rec.lists[2].Packets()[0].CableNumber())
}

type recordingTransmitter struct {
	lists []PacketList
}

func (r *recordingTransmitter) Transmit(list PacketList) error {
	r.lists = append(r.lists, list)
	return nil
}

func (r *recordingTransmitter) packets() []midi.Packet {
	var packets []midi.Packet
	for i := range r.lists {
		packets = append(packets, r.lists[i].Packets()...)
	}
	return packets
}
