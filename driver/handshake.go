package driver

import (
	"github.com/lumennet/ofoptical/ofmsg"
)

// StartHandshake begins the vendor sub-handshake by issuing the Calient port
// description request. The host must invoke it exactly once per session,
// after the generic OpenFlow handshake finished.
//
// It returns ErrHandshakeAlreadyStarted when invoked more than once; the
// handshake state is left unchanged in that case.
//
// A transport failure while sending the discovery request is logged and
// swallowed: the handshake stays in progress with no request on the wire, and
// the host session timeout is the only backstop. See DESIGN.md for why this
// leniency is kept.
func (d *Driver) StartHandshake() error {
	if !d.state.ToInProgress() {
		return ErrHandshakeAlreadyStarted
	}

	d.logger.Info("starting driver sub-handshake")

	req := &ofmsg.CalientPortDescRequest{XID: d.nextXid()}
	if err := d.transport.Send(req); err != nil {
		d.logger.Error("failed to send port description request", "error", err)
	}

	return nil
}

// HandleHandshakeMessage processes one inbound message during the
// sub-handshake window.
//
// It returns ErrHandshakeNotStarted before StartHandshake and
// ErrHandshakeCompleted once the handshake finished; both indicate the host
// routed messages out of order. Every recognized session message is tolerated
// during the window, and unknown kinds are logged and ignored so that new
// message types can never abort the handshake.
func (d *Driver) HandleHandshakeMessage(msg ofmsg.Message) error {
	if d.state.IsNotStarted() {
		return ErrHandshakeNotStarted
	}
	if d.state.IsComplete() {
		return ErrHandshakeCompleted
	}

	switch m := msg.(type) {
	case *ofmsg.CalientPortDescReply:
		d.appendPorts(m.Entries)
		if !m.More() {
			d.state.ToComplete()
			d.logger.Info("driver sub-handshake complete", "ports", d.portCount())
		}

	case *ofmsg.ErrorMsg:
		// device diagnostics, not a handshake failure
		d.logger.Error("switch error during sub-handshake",
			"type", m.Type, "code", m.Code, "data", m.Data)

	case *ofmsg.Hello, *ofmsg.EchoRequest, *ofmsg.EchoReply, *ofmsg.FeaturesReply,
		*ofmsg.BarrierReply, *ofmsg.RoleReply, *ofmsg.GetAsyncReply,
		*ofmsg.QueueGetConfigReply, *ofmsg.FlowRemoved, *ofmsg.PacketIn,
		*ofmsg.PortStatus:
		// expected session traffic during the handshake window

	default:
		d.logger.Warn("ignoring message during driver sub-handshake", "kind", msg.Kind())
	}

	return nil
}

// HandshakeComplete reports whether the terminal reply fragment arrived.
// Safe to call from any goroutine.
func (d *Driver) HandshakeComplete() bool {
	return d.state.IsComplete()
}

func (d *Driver) appendPorts(entries []ofmsg.CalientPortDescEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.fiberPorts = append(d.fiberPorts, entries...)
}

func (d *Driver) portCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.fiberPorts)
}
