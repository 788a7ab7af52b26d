// Package port moves USB-MIDI packets between byte-oriented transports.
//
// Receivers yield at most one packet per call; transmitters accept bounded
// batches. Serial adapters speak raw MIDI 1.0 bytes, USB adapters speak
// 4-byte event packets.
package port

import (
	"github.com/fralalonde/embedded-midi/pkg/midi"
)

// MaxPackets is the capacity of a PacketList.
const MaxPackets = 16

// PacketList is a bounded batch of packets.
type PacketList struct {
	packets [MaxPackets]midi.Packet
	n       int
}

// Single returns a list holding p.
func Single(p midi.Packet) PacketList {
	var l PacketList
	l.packets[0] = p
	l.n = 1
	return l
}

// Push appends p, failing with midi.ErrBufferFull when the list is full.
func (l *PacketList) Push(p midi.Packet) error {
	if l.n == MaxPackets {
		return midi.ErrBufferFull
	}
	l.packets[l.n] = p
	l.n++
	return nil
}

func (l *PacketList) Len() int {
	return l.n
}

func (l *PacketList) Full() bool {
	return l.n == MaxPackets
}

func (l *PacketList) Clear() {
	l.n = 0
}

// Packets returns the packets in the list. The slice aliases the list.
func (l *PacketList) Packets() []midi.Packet {
	return l.packets[:l.n]
}

// Receiver yields packets one at a time. ok is false when no packet is
// available; blocking receivers return io.EOF once their source is
// exhausted.
type Receiver interface {
	Receive() (p midi.Packet, ok bool, err error)
}

// Transmitter sends a batch of packets.
type Transmitter interface {
	Transmit(list PacketList) error
}

// WriteMessages encodes messages on cable and transmits them in batches.
func WriteMessages(t Transmitter, cable midi.CableNumber, messages ...midi.Message) error {
	var list PacketList
	for _, m := range messages {
		if list.Full() {
			if err := t.Transmit(list); err != nil {
				return err
			}
			list.Clear()
		}
		_ = list.Push(midi.Encode(m).WithCableNumber(cable))
	}
	if list.Len() == 0 {
		return nil
	}
	return t.Transmit(list)
}
