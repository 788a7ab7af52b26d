package midi

import "fmt"

// PacketSize is the size of a USB-MIDI event packet.
const PacketSize = 4

// Packet is a USB-MIDI event packet. Byte 0 holds the cable number (high
// nibble) and CIN (low nibble); bytes 1-3 hold up to three MIDI bytes.
type Packet [PacketSize]byte

// PacketFromBytes copies a 4-byte slice into a Packet.
func PacketFromBytes(b []byte) (Packet, error) {
	var p Packet
	if len(b) != PacketSize {
		return p, fmt.Errorf("%w - got %d bytes", ErrPacketSize, len(b))
	}
	copy(p[:], b)
	return p, nil
}

func (p Packet) CableNumber() CableNumber {
	return CableNumber(p[0] >> 4)
}

func (p Packet) CodeIndexNumber() CodeIndexNumber {
	return CodeIndexNumber(p[0] & 0x0F)
}

// WithCableNumber returns a copy of p addressed to cable c.
func (p Packet) WithCableNumber(c CableNumber) Packet {
	p[0] = p[0]&0x0F | byte(c&0x0F)<<4
	return p
}

// Payload returns the meaningful MIDI bytes of the packet, as sent on a
// serial line. It never extends past the CIN's payload length. The slice
// refers to a copy of the packet.
func (p Packet) Payload() []byte {
	return p[1 : 1+p.CodeIndexNumber().PayloadLen()]
}

// Status resolves the first payload byte.
func (p Packet) Status() (Status, bool) {
	payload := p.Payload()
	if len(payload) == 0 {
		return 0, false
	}
	s, err := ParseStatus(payload[0])
	return s, err == nil
}

// Channel returns the channel of a channel voice packet.
func (p Packet) Channel() (Channel, bool) {
	payload := p.Payload()
	if len(payload) == 0 || !IsChannelStatus(payload[0]) {
		return 0, false
	}
	return Channel(payload[0] & 0x0F), true
}

// SysexBody returns the sysex data carried by the packet, without the
// SysexStartByte and SysexEndByte markers. It is empty for non-sysex packets.
func (p Packet) SysexBody() []byte {
	payload := p.Payload()
	switch p.CodeIndexNumber() {
	case CINSysex, CINSysexEndsNext2, CINSysexEndsNext3:
	default:
		return payload[:0]
	}

	if len(payload) > 0 && payload[0] == SysexStartByte {
		payload = payload[1:]
	}
	if n := len(payload); n > 0 && payload[n-1] == SysexEndByte {
		payload = payload[:n-1]
	}
	return payload
}

// Bytes returns the raw packet, as sent on a USB endpoint.
func (p Packet) Bytes() []byte {
	return p[:]
}

func (p Packet) String() string {
	return fmt.Sprintf("[%d %s % 02x]", p.CableNumber(), p.CodeIndexNumber(), p.Payload())
}
