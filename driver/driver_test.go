package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumennet/ofoptical/ofmsg"
	"github.com/lumennet/ofoptical/optical"
)

func TestCapabilitySurface(t *testing.T) {
	require := require.New(t)

	d := newTestDriver(&fakeTransport{})

	require.Equal("of:0000000000000001", d.DeviceID())
	require.Equal(FiberSwitch, d.DeviceType())
	require.False(d.SupportNxRole())
	require.Equal([]PortDescPropertyType{OpticalTransport}, d.PortTypes())
}

func TestGetPortsOfUnsupportedType(t *testing.T) {
	require := require.New(t)

	d := newTestDriver(&fakeTransport{})
	require.NoError(d.StartHandshake())
	require.NoError(d.HandleHandshakeMessage(&ofmsg.CalientPortDescReply{
		Entries: portEntries("1.1.1"),
	}))

	require.Empty(d.GetPortsOf(EthernetTransport))
	require.Len(d.GetPortsOf(OpticalTransport), 1)
}

func TestQueryLambdas(t *testing.T) {
	require := require.New(t)

	d := newTestDriver(&fakeTransport{})

	signals := d.QueryLambdas(1)
	require.Len(signals, 4717)
	require.Equal(-1130, signals[0].SpacingMultiplier)
	require.Equal(3586, signals[len(signals)-1].SpacingMultiplier)

	for i := 1; i < len(signals); i++ {
		require.Positive(signals[i].Compare(signals[i-1]))
	}

	// every port exposes the same grid
	require.Equal(signals, d.QueryLambdas(42))
}

func TestQueryLambdasCustomProfile(t *testing.T) {
	require := require.New(t)

	profile := Profile{
		Name:       "c-band-only",
		LowerBound: optical.CBandMin,
		UpperBound: optical.CBandMax,
		Center:     optical.CenterFrequency,
		Spacing:    optical.Spacing50GHz,
	}
	d := newTestDriver(&fakeTransport{}, WithProfile(profile))

	signals := d.QueryLambdas(1)
	require.NotEmpty(signals)
	for _, s := range signals {
		require.Equal(optical.Spacing50GHz, s.ChannelSpacing)
	}

	inverted := profile
	inverted.LowerBound, inverted.UpperBound = profile.UpperBound, profile.LowerBound
	d = newTestDriver(&fakeTransport{}, WithProfile(inverted))
	require.Empty(d.QueryLambdas(1))
}

func TestDeviceTypeString(t *testing.T) {
	require := require.New(t)

	require.Equal("fiber-switch", FiberSwitch.String())
	require.Equal("roadm", ROADM.String())
	require.Equal("unknown", DeviceType(99).String())
}
