package port

import (
	"sync/atomic"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// ToGomidi renders a complete message as a gomidi message. Sysex fragments
// render their raw bytes only.
func ToGomidi(m midi.Message) gomidi.Message {
	p := midi.Encode(m)
	return gomidi.Message(append([]byte(nil), p.Payload()...))
}

// FromGomidi splits a gomidi message into packets on cable.
func FromGomidi(msg gomidi.Message, cable midi.CableNumber) ([]midi.Packet, error) {
	parser := midi.NewPacketParser(cable)
	var packets []midi.Packet
	for _, b := range []byte(msg) {
		p, ok, err := parser.Advance(b)
		if err != nil {
			return packets, err
		}
		if ok {
			packets = append(packets, p)
		}
	}
	return packets, nil
}

// GomidiOut transmits packets through a gomidi send function, such as the
// one returned by gomidi.SendTo. Sysex fragments are reassembled so the
// function always receives complete messages.
type GomidiOut struct {
	send  func(msg gomidi.Message) error
	sysex []byte
}

func NewGomidiOut(send func(msg gomidi.Message) error) *GomidiOut {
	return &GomidiOut{send: send}
}

func (g *GomidiOut) Transmit(list PacketList) error {
	for _, p := range list.Packets() {
		payload := p.Payload()
		if len(payload) == 0 {
			continue
		}

		sysex := p.CodeIndexNumber() == midi.CINSysex ||
			p.CodeIndexNumber() == midi.CINSysexEndsNext2 ||
			p.CodeIndexNumber() == midi.CINSysexEndsNext3 ||
			payload[0] == midi.SysexEndByte
		if !sysex {
			if err := g.send(gomidi.Message(append([]byte(nil), payload...))); err != nil {
				return err
			}
			continue
		}

		if payload[0] == midi.SysexStartByte {
			g.sysex = g.sysex[:0]
		}
		g.sysex = append(g.sysex, payload...)
		if payload[len(payload)-1] != midi.SysexEndByte {
			continue
		}

		msg := gomidi.Message(append([]byte(nil), g.sysex...))
		g.sysex = g.sysex[:0]
		if msg[0] != midi.SysexStartByte {
			// tail of a sysex whose start was never seen
			continue
		}
		if err := g.send(msg); err != nil {
			return err
		}
	}
	return nil
}

// GomidiIn queues messages handed to it by gomidi.ListenTo and yields them as
// packets. It never blocks the gomidi callback: when the queue is full the
// message is dropped and counted.
type GomidiIn struct {
	cable   midi.CableNumber
	queue   chan midi.Packet
	dropped int64
}

func NewGomidiIn(cable midi.CableNumber, capacity int) *GomidiIn {
	return &GomidiIn{cable: cable, queue: make(chan midi.Packet, capacity)}
}

// Handle has the signature of a gomidi.ListenTo callback.
func (g *GomidiIn) Handle(msg gomidi.Message, timestampms int32) {
	packets, _ := FromGomidi(msg, g.cable)
	for _, p := range packets {
		select {
		case g.queue <- p:
		default:
			atomic.AddInt64(&g.dropped, 1)
		}
	}
}

// Receive returns a queued packet without blocking.
func (g *GomidiIn) Receive() (midi.Packet, bool, error) {
	select {
	case p := <-g.queue:
		return p, true, nil
	default:
		return midi.Packet{}, false, nil
	}
}

// Dropped returns the number of packets discarded because the queue was full.
func (g *GomidiIn) Dropped() int64 {
	return atomic.LoadInt64(&g.dropped)
}
