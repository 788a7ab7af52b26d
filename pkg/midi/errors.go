package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus is reported for bytes that do not resolve to a Status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidCodeIndexNumber is reported for values outside the 4-bit CIN range.
	ErrInvalidCodeIndexNumber = errors.New("invalid code index number")
	// ErrInvalidCableNumber is reported for values outside the 4-bit cable range.
	ErrInvalidCableNumber = errors.New("invalid cable number")
	ErrInvalidChannel     = errors.New("invalid channel")
	ErrInvalidProgram     = errors.New("invalid program")
	ErrInvalidNote        = errors.New("invalid note")
	ErrInvalidVelocity    = errors.New("invalid velocity")
	// ErrInvalidInteger is reported when a value does not fit a bounded integer.
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrBadPacket is reported for packets that do not decode to any Message.
	ErrBadPacket = errors.New("bad packet")
	// ErrSysexOutOfBounds is reported when a sysex fragment cannot fit one packet.
	ErrSysexOutOfBounds   = errors.New("sysex out of bounds")
	ErrSysexInterrupted   = errors.New("sysex interrupted")
	ErrNoModeForParameter = errors.New("no mode for parameter")

	// ErrParserOverflow means the stream parser tried to buffer more bytes than
	// the latched status allows. It wraps ErrSysexOutOfBounds.
	ErrParserOverflow = fmt.Errorf("%w - parser buffer overflow", ErrSysexOutOfBounds)

	// Transport errors share the taxonomy but are raised by pkg/port.
	ErrPort          = errors.New("port error")
	ErrBufferFull    = errors.New("buffer full")
	ErrDroppedPacket = errors.New("dropped packet")
	// ErrPacketSize is reported when a byte slice is not exactly one packet long.
	ErrPacketSize = errors.New("packet size mismatch")
)

// StatusError carries the byte rejected by ParseStatus.
type StatusError struct {
	Byte byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s - %#02x", ErrInvalidStatus, e.Byte)
}

func (e *StatusError) Unwrap() error {
	return ErrInvalidStatus
}

// PacketError carries the packet Decode could not match.
type PacketError struct {
	Packet Packet
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("%s - %v", ErrBadPacket, e.Packet)
}

func (e *PacketError) Unwrap() error {
	return ErrBadPacket
}
