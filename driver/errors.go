package driver

import "errors"

var (
	// ErrHandshakeAlreadyStarted indicates that StartHandshake was invoked on
	// a driver whose sub-handshake is already underway or finished. The host
	// invoked the hook twice, a protocol usage violation.
	ErrHandshakeAlreadyStarted = errors.New("driver sub-handshake already started")

	// ErrHandshakeNotStarted indicates that a handshake message was delivered
	// before StartHandshake.
	ErrHandshakeNotStarted = errors.New("driver sub-handshake not started")

	// ErrHandshakeCompleted indicates that a handshake message was delivered
	// after the sub-handshake already completed. Post-handshake traffic must
	// not be routed through the handshake hook.
	ErrHandshakeCompleted = errors.New("driver sub-handshake already completed")
)

var (
	// ErrInvalidProfile indicates that a hardware profile failed validation.
	ErrInvalidProfile = errors.New("invalid hardware profile")
)
