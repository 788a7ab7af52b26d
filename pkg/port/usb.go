package port

import (
	"io"

	"github.com/fralalonde/embedded-midi/pkg/midi"
	"github.com/pkg/errors"
)

// USBIn reads 4-byte event packets.
type USBIn struct {
	r io.Reader
}

func NewUSBIn(r io.Reader) *USBIn {
	return &USBIn{r: r}
}

// Receive returns the next non-empty packet. All-zero packets pad USB
// transfers and are skipped.
func (u *USBIn) Receive() (midi.Packet, bool, error) {
	var p midi.Packet
	for {
		_, err := io.ReadFull(u.r, p[:])
		switch {
		case err == io.EOF:
			return p, false, err
		case err == io.ErrUnexpectedEOF:
			return p, false, errors.Wrap(midi.ErrPacketSize, "truncated usb packet")
		case err != nil:
			return p, false, errors.Wrap(err, "usb read")
		}
		if p != (midi.Packet{}) {
			return p, true, nil
		}
	}
}

// USBOut writes 4-byte event packets.
type USBOut struct {
	w io.Writer
}

func NewUSBOut(w io.Writer) *USBOut {
	return &USBOut{w: w}
}

func (u *USBOut) Transmit(list PacketList) error {
	var buf [MaxPackets * midi.PacketSize]byte
	out := buf[:0]
	for _, p := range list.Packets() {
		out = append(out, p[:]...)
	}
	n, err := u.w.Write(out)
	if err != nil {
		return errors.Wrap(err, "usb write")
	}
	if n < len(out) {
		return errors.Wrapf(midi.ErrPort, "usb write: short write %d/%d", n, len(out))
	}
	return nil
}
