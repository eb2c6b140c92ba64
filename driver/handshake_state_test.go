package driver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandshakeStateTransitions(t *testing.T) {
	require := require.New(t)

	var st AtomicHandshakeState
	require.Equal(NotStartedState, st.Get())
	require.True(st.IsNotStarted())

	require.True(st.ToInProgress())
	require.True(st.IsInProgress())
	// repeated start attempt does not transition
	require.False(st.ToInProgress())

	require.True(st.ToComplete())
	require.True(st.IsComplete())
	// no transition leaves the complete state
	require.False(st.ToComplete())
	require.False(st.ToInProgress())
	require.Equal(CompleteState, st.Get())
}

func TestHandshakeStateCompleteRequiresInProgress(t *testing.T) {
	require := require.New(t)

	var st AtomicHandshakeState
	require.False(st.ToComplete())
	require.True(st.IsNotStarted())
}

func TestHandshakeStateString(t *testing.T) {
	require := require.New(t)

	require.Equal("not-started", NotStartedState.String())
	require.Equal("in-progress", InProgressState.String())
	require.Equal("complete", CompleteState.String())
	require.Equal("unknown", HandshakeState(7).String())

	var st AtomicHandshakeState
	require.Equal("not-started", st.String())
}
