package midi

import "fmt"

// ChannelMode is a channel mode message. It travels as a ControlChange on one
// of the reserved controllers 120-127.
type ChannelMode uint8

const (
	AllSoundOff ChannelMode = 120 + iota
	ResetAllControllers
	LocalControl
	AllNotesOff
	OmniOff
	OmniOn
	MonoOn
	PolyOn
)

var modeNames = [8]string{
	"AllSoundOff", "ResetAllControllers", "LocalControl", "AllNotesOff",
	"OmniOff", "OmniOn", "MonoOn", "PolyOn",
}

func (m ChannelMode) String() string {
	if m < AllSoundOff || m > PolyOn {
		return fmt.Sprintf("Unknown:%d", uint8(m))
	}
	return modeNames[m-AllSoundOff]
}

// Mode returns the channel mode selected by the controller. Controllers below
// 120 are plain parameters and fail with ErrNoModeForParameter.
func (m ControlChange) Mode() (ChannelMode, error) {
	if m.Control < Control(AllSoundOff) {
		return 0, fmt.Errorf("%w - controller %d", ErrNoModeForParameter, m.Control)
	}
	return ChannelMode(m.Control), nil
}

// NewChannelMode builds the ControlChange carrying mode. value is the mode
// argument: on/off for LocalControl, the channel count for MonoOn, 0 otherwise.
func NewChannelMode(ch Channel, mode ChannelMode, value uint8) (ControlChange, error) {
	if mode < AllSoundOff || mode > PolyOn {
		return ControlChange{}, fmt.Errorf("%w - controller %d", ErrNoModeForParameter, uint8(mode))
	}
	return NewControlChange(ch, uint8(mode), value)
}
