package optical

import "fmt"

// GridType identifies the frequency grid layout of a channel.
type GridType uint8

const (
	// GridDWDM is the fixed-spacing dense WDM grid.
	GridDWDM GridType = iota
	// GridCWDM is the coarse WDM grid.
	GridCWDM
	// GridFlex is the flexible grid with 12.5 GHz slot granularity.
	GridFlex
)

// String returns the short name of the grid type.
func (g GridType) String() string {
	switch g {
	case GridDWDM:
		return "dwdm"
	case GridCWDM:
		return "cwdm"
	case GridFlex:
		return "flex"
	default:
		return "unknown"
	}
}

// ChannelSpacing is the frequency spacing between adjacent grid channels.
type ChannelSpacing uint8

const (
	Spacing100GHz ChannelSpacing = iota
	Spacing50GHz
	Spacing25GHz
	Spacing12p5GHz
	Spacing6p25GHz
)

// Frequency returns the spacing as a frequency per grid step.
func (cs ChannelSpacing) Frequency() Frequency {
	switch cs {
	case Spacing100GHz:
		return GHz(100)
	case Spacing50GHz:
		return GHz(50)
	case Spacing25GHz:
		return GHz(25)
	case Spacing12p5GHz:
		return GHz(12.5)
	case Spacing6p25GHz:
		return GHz(6.25)
	default:
		return 0
	}
}

// String returns the spacing in GHz.
func (cs ChannelSpacing) String() string {
	return cs.Frequency().String()
}

// slotGranularityFrequency is the flex-grid slot width unit.
var slotGranularityFrequency = GHz(12.5)

// OchSignal describes one optical channel on a frequency grid: the grid
// layout, the channel spacing, the signed multiplier locating the channel
// relative to the grid center, and the slot width in 12.5 GHz units.
//
// OchSignal is an immutable value type; two signals are the same channel
// exactly when all four fields are equal.
type OchSignal struct {
	GridType          GridType
	ChannelSpacing    ChannelSpacing
	SpacingMultiplier int
	SlotGranularity   int
}

// CentralFrequency returns the center frequency of the channel.
func (s OchSignal) CentralFrequency() Frequency {
	step := s.ChannelSpacing.Frequency().Hz()
	return CenterFrequency.Add(Frequency(int64(s.SpacingMultiplier) * step))
}

// SlotWidth returns the width of the channel slot.
func (s OchSignal) SlotWidth() Frequency {
	return Frequency(int64(s.SlotGranularity) * slotGranularityFrequency.Hz())
}

// Compare defines a strict total order over channel descriptors: spacing
// multiplier first, then channel spacing, grid type and slot granularity as
// tie breakers.
func (s OchSignal) Compare(other OchSignal) int {
	if c := compareInt(s.SpacingMultiplier, other.SpacingMultiplier); c != 0 {
		return c
	}
	if c := compareInt(int(s.ChannelSpacing), int(other.ChannelSpacing)); c != 0 {
		return c
	}
	if c := compareInt(int(s.GridType), int(other.GridType)); c != 0 {
		return c
	}

	return compareInt(s.SlotGranularity, other.SlotGranularity)
}

// String renders the channel as its grid position and center frequency.
func (s OchSignal) String() string {
	return fmt.Sprintf("%s{spacing: %s, multiplier: %d, center: %s}",
		s.GridType, s.ChannelSpacing, s.SpacingMultiplier, s.CentralFrequency())
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
