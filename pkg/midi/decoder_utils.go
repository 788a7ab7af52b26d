package midi

// add offset
func (d *Decoder) readByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err == nil {
		d.offset++ // read byte
	}
	return b, err
}

// DecodeAll decodes every packet, stopping at the first undecodable one.
func DecodeAll(packets []Packet) ([]Message, error) {
	messages := make([]Message, 0, len(packets))
	for _, p := range packets {
		m, err := Decode(p)
		if err != nil {
			return messages, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}
