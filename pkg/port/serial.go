package port

import (
	"bufio"
	"io"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SerialIn parses a raw MIDI byte stream into packets.
type SerialIn struct {
	r      io.ByteReader
	parser *midi.PacketParser
	log    *zap.Logger
}

// NewSerialIn reads from r, tagging packets with cable. log may be nil.
func NewSerialIn(r io.Reader, cable midi.CableNumber, log *zap.Logger) *SerialIn {
	if log == nil {
		log = zap.NewNop()
	}
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &SerialIn{
		r:      br,
		parser: midi.NewPacketParser(cable),
		log:    log.Named("serial_in"),
	}
}

// Receive blocks until a packet is complete. Bytes the parser rejects are
// logged and skipped. io.EOF is returned unwrapped.
func (s *SerialIn) Receive() (midi.Packet, bool, error) {
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			return midi.Packet{}, false, err
		}
		if err != nil {
			return midi.Packet{}, false, errors.Wrap(err, "serial read")
		}

		if s.parser.InSysex() && !midi.IsNonStatus(b) {
			if status, err := midi.ParseStatus(b); err == nil && !status.IsRealtime() {
				s.log.Debug("sysex abandoned", zap.Uint8("byte", b), zap.Error(midi.ErrSysexInterrupted))
			}
		}

		p, ok, err := s.parser.Advance(b)
		if err != nil {
			s.log.Debug("parser reset", zap.Uint8("byte", b), zap.Error(err))
			continue
		}
		if ok {
			return p, true, nil
		}
	}
}

// SerialOut writes packets as raw MIDI bytes.
type SerialOut struct {
	w io.Writer

	// RunningStatus omits channel status bytes repeating the previous one.
	RunningStatus bool
	last          byte
}

func NewSerialOut(w io.Writer) *SerialOut {
	return &SerialOut{w: w}
}

// Transmit writes the list with a single Write call.
func (s *SerialOut) Transmit(list PacketList) error {
	var buf [MaxPackets * (midi.PacketSize - 1)]byte
	out := buf[:0]

	for _, p := range list.Packets() {
		payload := p.Payload()
		if len(payload) == 0 {
			continue
		}

		switch lead := payload[0]; {
		case midi.IsChannelStatus(lead):
			if s.RunningStatus && lead == s.last {
				payload = payload[1:]
			}
			s.last = lead
		case lead >= 0x80:
			if status, err := midi.ParseStatus(lead); err == nil && status.IsRealtime() {
				// realtime leaves running status alone
				break
			}
			s.last = 0
		}
		out = append(out, payload...)
	}

	n, err := s.w.Write(out)
	if err != nil {
		return errors.Wrap(err, "serial write")
	}
	if n < len(out) {
		return errors.Wrapf(midi.ErrPort, "serial write: short write %d/%d", n, len(out))
	}
	return nil
}
