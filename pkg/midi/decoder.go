package midi

import (
	"bufio"
	"fmt"
	"io"
)

// Decoder reads a serial MIDI byte stream and yields USB-MIDI packets.
type Decoder struct {
	r      io.ByteReader
	parser *PacketParser
	offset int64

	// Packets holds everything returned by Decode.
	Packets []Packet
}

// NewDecoder returns a Decoder reading from r, tagging packets with cable 0.
func NewDecoder(r io.Reader) *Decoder {
	return NewCableDecoder(r, 0)
}

// NewCableDecoder returns a Decoder tagging packets with cable.
func NewCableDecoder(r io.Reader, cable CableNumber) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br, parser: NewPacketParser(cable)}
}

// Offset is the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Next returns the next complete packet, or io.EOF once the stream is
// exhausted. A partial message pending at EOF is dropped. Parser errors are
// reported with the offending offset; decoding may continue afterwards.
func (d *Decoder) Next() (Packet, error) {
	for {
		b, err := d.readByte()
		if err != nil {
			return Packet{}, err
		}

		p, ok, err := d.parser.Advance(b)
		if err != nil {
			return Packet{}, fmt.Errorf("%w - byte %#02x at offset %d", err, b, d.offset-1)
		}
		if ok {
			return p, nil
		}
	}
}

// Decode reads the whole stream into d.Packets.
func (d *Decoder) Decode() ([]Packet, error) {
	for {
		p, err := d.Next()
		if err == io.EOF {
			return d.Packets, nil
		}
		if err != nil {
			return d.Packets, err
		}
		d.Packets = append(d.Packets, p)
	}
}
