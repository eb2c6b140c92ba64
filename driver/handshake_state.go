package driver

import "sync/atomic"

// HandshakeState represents the lifecycle of the vendor sub-handshake.
type HandshakeState uint32

const (
	// NotStartedState indicates that StartHandshake has not been invoked yet.
	NotStartedState HandshakeState = iota
	// InProgressState indicates that the vendor discovery request was issued
	// and reply fragments are awaited.
	InProgressState
	// CompleteState indicates that the terminal reply fragment arrived. No
	// transition leaves this state.
	CompleteState
)

// String returns string representation of the current state.
func (hs HandshakeState) String() string {
	switch hs {
	case NotStartedState:
		return "not-started"
	case InProgressState:
		return "in-progress"
	case CompleteState:
		return "complete"
	default:
		return "unknown"
	}
}

// AtomicHandshakeState holds a HandshakeState with atomic transitions, so the
// completion flag can be read from goroutines other than the one delivering
// messages.
type AtomicHandshakeState struct {
	state atomic.Uint32
}

// Get returns the current state.
func (st *AtomicHandshakeState) Get() HandshakeState {
	return HandshakeState(st.state.Load())
}

func (st *AtomicHandshakeState) String() string {
	return st.Get().String()
}

func (st *AtomicHandshakeState) IsNotStarted() bool {
	return st.Get() == NotStartedState
}

func (st *AtomicHandshakeState) IsInProgress() bool {
	return st.Get() == InProgressState
}

func (st *AtomicHandshakeState) IsComplete() bool {
	return st.Get() == CompleteState
}

// ToInProgress transitions from NotStartedState to InProgressState. It
// reports whether the transition took place.
func (st *AtomicHandshakeState) ToInProgress() bool {
	return st.state.CompareAndSwap(uint32(NotStartedState), uint32(InProgressState))
}

// ToComplete transitions from InProgressState to CompleteState. It reports
// whether the transition took place.
func (st *AtomicHandshakeState) ToComplete() bool {
	return st.state.CompareAndSwap(uint32(InProgressState), uint32(CompleteState))
}
