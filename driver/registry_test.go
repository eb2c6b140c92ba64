package driver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	require := require.New(t)

	reg := NewRegistry()
	require.Zero(reg.Len())

	d1 := New("of:01", &fakeTransport{}, WithLogger(&nopLogger{}))
	d2 := New("of:02", &fakeTransport{}, WithLogger(&nopLogger{}))

	require.True(reg.Register(d1))
	require.True(reg.Register(d2))
	require.Equal(2, reg.Len())

	// a second registration for the same ID keeps the existing driver
	dup := New("of:01", &fakeTransport{}, WithLogger(&nopLogger{}))
	require.False(reg.Register(dup))

	got, ok := reg.Get("of:01")
	require.True(ok)
	require.Same(d1, got)

	_, ok = reg.Get("of:99")
	require.False(ok)

	seen := make(map[string]bool)
	reg.Range(func(deviceID string, d *Driver) bool {
		seen[deviceID] = true
		return true
	})
	require.Equal(map[string]bool{"of:01": true, "of:02": true}, seen)

	reg.Remove("of:01")
	require.Equal(1, reg.Len())
	_, ok = reg.Get("of:01")
	require.False(ok)
}
