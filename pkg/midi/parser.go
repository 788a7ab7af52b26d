package midi

import "fmt"

// packetBuffer accumulates the MIDI bytes of one packet. bytes[0] is reserved
// for the packet header.
type packetBuffer struct {
	expectedLen int
	len         int
	bytes       Packet
}

func (b *packetBuffer) isFull() bool {
	return b.len >= b.expectedLen
}

func (b *packetBuffer) isStarted() bool {
	return b.len != 0
}

func (b *packetBuffer) push(v byte) error {
	if b.isFull() || b.len >= PacketSize-1 {
		return fmt.Errorf("%w - %d >= %d", ErrParserOverflow, b.len, b.expectedLen)
	}
	b.len++
	b.bytes[b.len] = v
	return nil
}

func (b *packetBuffer) build(cable CableNumber, cin CodeIndexNumber) Packet {
	p := b.bytes
	p[0] = byte(cable&0x0F)<<4 | byte(cin&0x0F)
	b.clear(b.expectedLen)
	return p
}

func (b *packetBuffer) clear(expectedLen int) {
	b.len = 0
	b.bytes = Packet{}
	b.expectedLen = expectedLen
}

// PacketParser turns a serial MIDI byte stream into USB-MIDI event packets.
// It handles running status, sysex fragmentation and realtime bytes
// interleaved with other messages.
//
// A PacketParser is not safe for concurrent use. The zero value parses for
// cable 0.
type PacketParser struct {
	cable CableNumber

	// latched status for running status purposes, and its wire byte
	status     Status
	statusByte byte
	latched    bool

	buffer packetBuffer
}

// NewPacketParser returns a parser tagging its packets with cable.
func NewPacketParser(cable CableNumber) *PacketParser {
	return &PacketParser{cable: cable & 0x0F}
}

// Reset drops any partial message and the running status, as after a
// hardware reset of the input.
func (p *PacketParser) Reset() {
	p.latched = false
	p.status = 0
	p.statusByte = 0
	p.buffer.clear(0)
}

// InSysex reports whether a sysex is open, so that any status byte other
// than a realtime one would abandon it.
func (p *PacketParser) InSysex() bool {
	return p.latched && p.status == StatusSysexStart
}

// Advance consumes one byte. It returns a packet and true when the byte
// completes one. Data bytes received without a status are dropped.
//
// An error means the parser state was inconsistent; the parser is reset and
// the caller may keep feeding it.
func (p *PacketParser) Advance(b byte) (Packet, bool, error) {
	if IsNonStatus(b) {
		return p.advanceData(b)
	}

	status, err := ParseStatus(b)
	if err != nil {
		// undefined system status, ignored
		return Packet{}, false, nil
	}

	if status.ExpectedLen() == 1 {
		if !status.IsRealtime() {
			// system common messages cancel running status
			p.latched = false
			p.buffer.clear(0)
		}
		pkt := Packet{byte(p.cable)<<4 | byte(CINFromStatus(status)), b}
		return pkt, true, nil
	}

	p.status, p.statusByte, p.latched = status, b, true
	p.buffer.clear(status.ExpectedLen())
	if err := p.buffer.push(b); err != nil {
		p.Reset()
		return Packet{}, false, err
	}
	return Packet{}, false, nil
}

func (p *PacketParser) advanceData(b byte) (Packet, bool, error) {
	if !p.latched {
		return Packet{}, false, nil
	}

	if !p.buffer.isStarted() && p.status.IsChannel() {
		// running status: repeat the last status byte
		p.buffer.clear(p.buffer.expectedLen)
		if err := p.buffer.push(p.statusByte); err != nil {
			p.Reset()
			return Packet{}, false, err
		}
	}
	if err := p.buffer.push(b); err != nil {
		p.Reset()
		return Packet{}, false, err
	}

	if b == SysexEndByte {
		p.latched = false
		cin, err := EndSysex(p.buffer.len)
		if err != nil {
			p.Reset()
			return Packet{}, false, err
		}
		return p.buffer.build(p.cable, cin), true, nil
	}

	if p.buffer.isFull() {
		if !p.status.IsChannel() && p.status != StatusSysexStart {
			// only channel messages use running status
			p.latched = false
		}
		return p.buffer.build(p.cable, CINFromStatus(p.status)), true, nil
	}
	return Packet{}, false, nil
}
