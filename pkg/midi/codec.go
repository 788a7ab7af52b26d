package midi

// CINFromMessage returns the CIN of the packet carrying m.
func CINFromMessage(m Message) CodeIndexNumber {
	switch m.(type) {
	case NoteOff:
		return CINNoteOff
	case NoteOn:
		return CINNoteOn
	case NotePressure:
		return CINPolyKeypress
	case ChannelPressure:
		return CINChannelPressure
	case ProgramChange:
		return CINProgramChange
	case ControlChange:
		return CINControlChange
	case PitchBend:
		return CINPitchbendChange
	case TimeCodeQuarterFrame, SongSelect, MeasureEnd:
		return CINSystemCommonLen2
	case SongPositionPointer:
		return CINSystemCommonLen3
	case SysexBegin, SysexCont:
		return CINSysex
	case SysexEnd1, SysexEmpty:
		return CINSysexEndsNext2
	case SysexEnd2, SysexSingleByte:
		return CINSysexEndsNext3
	}
	// TuneRequest, realtime messages and SysexEnd
	return CINSystemCommonLen1
}

// StatusByte returns the wire status byte of m, channel included. Sysex
// fragments have none.
func StatusByte(m Message) (byte, bool) {
	var s Status
	var ch Channel
	switch m := m.(type) {
	case NoteOff:
		s, ch = StatusNoteOff, m.Channel
	case NoteOn:
		s, ch = StatusNoteOn, m.Channel
	case NotePressure:
		s, ch = StatusNotePressure, m.Channel
	case ChannelPressure:
		s, ch = StatusChannelPressure, m.Channel
	case ProgramChange:
		s, ch = StatusProgramChange, m.Channel
	case ControlChange:
		s, ch = StatusControlChange, m.Channel
	case PitchBend:
		s, ch = StatusPitchBend, m.Channel
	case TimeCodeQuarterFrame:
		s = StatusTimeCodeQuarterFrame
	case SongPositionPointer:
		s = StatusSongPositionPointer
	case SongSelect:
		s = StatusSongSelect
	case TuneRequest:
		s = StatusTuneRequest
	case TimingClock:
		s = StatusTimingClock
	case MeasureEnd:
		s = StatusMeasureEnd
	case Start:
		s = StatusStart
	case Continue:
		s = StatusContinue
	case Stop:
		s = StatusStop
	case ActiveSensing:
		s = StatusActiveSensing
	case SystemReset:
		s = StatusSystemReset
	default:
		return 0, false
	}
	return byte(s) | byte(ch&0x0F), true
}

// Encode builds the packet carrying m on cable 0. Sysex data bytes are
// culled to 7 bits.
func Encode(m Message) Packet {
	var p Packet
	p[0] = byte(CINFromMessage(m))
	if b, ok := StatusByte(m); ok {
		p[1] = b
	}

	switch m := m.(type) {
	case NoteOff:
		p[2], p[3] = byte(m.Note), byte(m.Velocity)
	case NoteOn:
		p[2], p[3] = byte(m.Note), byte(m.Velocity)
	case NotePressure:
		p[2], p[3] = byte(m.Note), byte(m.Pressure)
	case ChannelPressure:
		p[2] = byte(m.Pressure)
	case ProgramChange:
		p[2] = byte(m.Program)
	case ControlChange:
		p[2], p[3] = byte(m.Control), byte(m.Value)
	case PitchBend:
		lsb, msb := m.Bend.Pair()
		p[2], p[3] = byte(lsb), byte(msb)
	case TimeCodeQuarterFrame:
		p[2] = byte(m.Value)
	case SongPositionPointer:
		p[2], p[3] = byte(m.LSB), byte(m.MSB)
	case SongSelect:
		p[2] = byte(m.Song)
	case MeasureEnd:
		p[2] = byte(m.Value)

	// sysex data bytes are culled to 7 bits so they never read as markers
	case SysexBegin:
		p[1], p[2], p[3] = SysexStartByte, m.Data[0]&0x7F, m.Data[1]&0x7F
	case SysexCont:
		p[1], p[2], p[3] = m.Data[0]&0x7F, m.Data[1]&0x7F, m.Data[2]&0x7F
	case SysexEnd:
		p[1] = SysexEndByte
	case SysexEnd1:
		p[1], p[2] = m.Data&0x7F, SysexEndByte
	case SysexEnd2:
		p[1], p[2], p[3] = m.Data[0]&0x7F, m.Data[1]&0x7F, SysexEndByte
	case SysexEmpty:
		p[1], p[2] = SysexStartByte, SysexEndByte
	case SysexSingleByte:
		p[1], p[2], p[3] = SysexStartByte, m.Data&0x7F, SysexEndByte
	}
	return p
}

// Decode classifies a packet into a Message. Out of range data bytes fail
// with the error of the field they belong to; packets matching no message
// fail with a *PacketError.
func Decode(p Packet) (Message, error) {
	payload := p.Payload()
	if len(payload) == 0 {
		return nil, &PacketError{Packet: p}
	}

	switch p.CodeIndexNumber() {
	case CINSysex:
		switch {
		case payload[0] < 0x80:
			return SysexCont{Data: [3]byte{payload[0], payload[1], payload[2]}}, nil
		case payload[0] == SysexStartByte:
			return SysexBegin{Data: [2]byte{payload[1], payload[2]}}, nil
		}
		return nil, &PacketError{Packet: p}

	case CINSysexEndsNext2:
		if payload[0] == SysexStartByte {
			return SysexEmpty{}, nil
		}
		return SysexEnd1{Data: payload[0]}, nil

	case CINSysexEndsNext3:
		if payload[0] == SysexStartByte {
			return SysexSingleByte{Data: payload[1]}, nil
		}
		return SysexEnd2{Data: [2]byte{payload[0], payload[1]}}, nil

	case CINSystemCommonLen1:
		if payload[0] == SysexEndByte {
			return SysexEnd{}, nil
		}
	}

	status, ok := p.Status()
	if !ok {
		return nil, &PacketError{Packet: p}
	}
	if status.IsChannel() {
		return decodeChannel(p, status)
	}
	return decodeSystem(p, status)
}

func decodeChannel(p Packet, status Status) (Message, error) {
	payload := p.Payload()
	ch, _ := p.Channel()
	if len(payload) < status.ExpectedLen() {
		return nil, &PacketError{Packet: p}
	}

	switch status {
	case StatusNoteOff:
		m, err := NewNoteOff(ch, payload[1], payload[2])
		if err != nil {
			return nil, err
		}
		return m, nil
	case StatusNoteOn:
		m, err := NewNoteOn(ch, payload[1], payload[2])
		if err != nil {
			return nil, err
		}
		return m, nil
	case StatusNotePressure:
		note, err := NewNote(payload[1])
		if err != nil {
			return nil, err
		}
		pressure, err := NewU7(payload[2])
		if err != nil {
			return nil, err
		}
		return NotePressure{Channel: ch, Note: note, Pressure: pressure}, nil
	case StatusChannelPressure:
		pressure, err := NewU7(payload[1])
		if err != nil {
			return nil, err
		}
		return ChannelPressure{Channel: ch, Pressure: pressure}, nil
	case StatusProgramChange:
		m, err := NewProgramChange(ch, payload[1])
		if err != nil {
			return nil, err
		}
		return m, nil
	case StatusControlChange:
		m, err := NewControlChange(ch, payload[1], payload[2])
		if err != nil {
			return nil, err
		}
		return m, nil
	case StatusPitchBend:
		bend, err := NewU14FromBytes(payload[1], payload[2])
		if err != nil {
			return nil, err
		}
		return PitchBend{Channel: ch, Bend: bend}, nil
	}
	return nil, &PacketError{Packet: p}
}

func decodeSystem(p Packet, status Status) (Message, error) {
	payload := p.Payload()

	switch p.CodeIndexNumber() {
	case CINSystemCommonLen1, CINSingleByte:
		switch status {
		case StatusTuneRequest:
			return TuneRequest{}, nil
		case StatusTimingClock:
			return TimingClock{}, nil
		case StatusStart:
			return Start{}, nil
		case StatusContinue:
			return Continue{}, nil
		case StatusStop:
			return Stop{}, nil
		case StatusActiveSensing:
			return ActiveSensing{}, nil
		case StatusSystemReset:
			return SystemReset{}, nil
		}

	case CINSystemCommonLen2:
		if status != StatusTimeCodeQuarterFrame && status != StatusSongSelect && status != StatusMeasureEnd {
			break
		}
		v, err := NewU7(payload[1])
		if err != nil {
			return nil, err
		}
		switch status {
		case StatusTimeCodeQuarterFrame:
			return TimeCodeQuarterFrame{Value: v}, nil
		case StatusSongSelect:
			return SongSelect{Song: v}, nil
		case StatusMeasureEnd:
			return MeasureEnd{Value: v}, nil
		}

	case CINSystemCommonLen3:
		if status != StatusSongPositionPointer {
			break
		}
		lsb, err := NewU7(payload[1])
		if err != nil {
			return nil, err
		}
		msb, err := NewU7(payload[2])
		if err != nil {
			return nil, err
		}
		return SongPositionPointer{LSB: lsb, MSB: msb}, nil
	}
	return nil, &PacketError{Packet: p}
}
