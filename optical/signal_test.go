package optical

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOchSignalCentralFrequency(t *testing.T) {
	require := require.New(t)

	center := OchSignal{GridType: GridFlex, ChannelSpacing: Spacing12p5GHz}
	require.Equal(CenterFrequency, center.CentralFrequency())

	up := OchSignal{GridType: GridFlex, ChannelSpacing: Spacing50GHz, SpacingMultiplier: 2}
	require.Equal(CenterFrequency.Add(GHz(100)), up.CentralFrequency())

	down := OchSignal{GridType: GridFlex, ChannelSpacing: Spacing12p5GHz, SpacingMultiplier: -4}
	require.Equal(CenterFrequency.Subtract(GHz(50)), down.CentralFrequency())
}

func TestOchSignalSlotWidth(t *testing.T) {
	require := require.New(t)

	s := OchSignal{SlotGranularity: 1}
	require.Equal(GHz(12.5), s.SlotWidth())

	s.SlotGranularity = 4
	require.Equal(GHz(50), s.SlotWidth())
}

func TestOchSignalCompare(t *testing.T) {
	require := require.New(t)

	a := OchSignal{GridType: GridFlex, ChannelSpacing: Spacing12p5GHz, SpacingMultiplier: -1, SlotGranularity: 1}
	b := OchSignal{GridType: GridFlex, ChannelSpacing: Spacing12p5GHz, SpacingMultiplier: 3, SlotGranularity: 1}

	require.Negative(a.Compare(b))
	require.Positive(b.Compare(a))
	require.Zero(a.Compare(a))

	// spacing breaks ties between equal multipliers
	c := a
	c.ChannelSpacing = Spacing50GHz
	require.Negative(c.Compare(a))
}

func TestChannelSpacingFrequency(t *testing.T) {
	require := require.New(t)

	require.Equal(GHz(100), Spacing100GHz.Frequency())
	require.Equal(GHz(50), Spacing50GHz.Frequency())
	require.Equal(GHz(25), Spacing25GHz.Frequency())
	require.Equal(GHz(12.5), Spacing12p5GHz.Frequency())
	require.Equal(GHz(6.25), Spacing6p25GHz.Frequency())
}
