// Package driver implements the vendor sub-handshake for Calient S-series
// optical circuit switches on top of an established OpenFlow session.
//
// The host session layer owns the connection and drives the handshake through
// two hooks: StartHandshake once per session, then HandleHandshakeMessage for
// each inbound message until the handshake completes. The driver issues the
// vendor port description request, accumulates the multipart reply fragments,
// and flips its completion flag exactly once when the terminal fragment
// arrives. After that the rest of the system can query the advertised ports
// and the supported channel grid.
//
// All outbound traffic goes through Send, which transparently rewrites
// generic flow statistics requests into the vendor encoding the hardware
// accepts. The rewrite applies regardless of handshake state.
//
// One Driver instance serves one device session. The host must not invoke
// StartHandshake and HandleHandshakeMessage concurrently for the same
// instance; capability queries are safe from any goroutine at any time and
// never block. Callers that need a complete port view must poll
// HandshakeComplete themselves.
package driver
