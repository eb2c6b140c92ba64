package driver

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lumennet/ofoptical/internal/util"
	"github.com/lumennet/ofoptical/logger"
	"github.com/lumennet/ofoptical/ofmsg"
	"github.com/lumennet/ofoptical/optical"
)

// Transport is the narrow interface the driver needs from the host session
// layer that owns the device connection.
type Transport interface {
	// Send dispatches one outbound protocol message to the device.
	// It returns a transport error when the message could not be handed to
	// the connection.
	Send(msg ofmsg.Message) error
}

// DeviceType categorizes the device for upstream capability negotiation.
type DeviceType uint8

const (
	// FiberSwitch is an all-optical circuit switch.
	FiberSwitch DeviceType = iota
	// ROADM is a reconfigurable optical add-drop multiplexer.
	ROADM
)

// String returns the short name of the device type.
func (dt DeviceType) String() string {
	switch dt {
	case FiberSwitch:
		return "fiber-switch"
	case ROADM:
		return "roadm"
	default:
		return "unknown"
	}
}

// PortDescPropertyType tags a class of port description properties a switch
// can report.
type PortDescPropertyType uint8

const (
	// OpticalTransport covers ports described by optical transport
	// properties. It is the only property type the S-series reports.
	OpticalTransport PortDescPropertyType = iota
	// EthernetTransport covers ports described by Ethernet properties.
	EthernetTransport
)

// Option customizes a Driver instance.
type Option func(*Driver)

// WithLogger sets the logger for the driver. The driver adds its device
// identity to every record it emits.
func WithLogger(l logger.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithProfile sets the hardware profile determining the channel grid the
// driver advertises. Defaults to the Calient S160 profile.
func WithProfile(p Profile) Option {
	return func(d *Driver) {
		d.profile = p
	}
}

// Driver implements the Calient vendor sub-handshake and the capability
// surface of one optical switch session.
type Driver struct {
	deviceID  string
	transport Transport
	profile   Profile
	logger    logger.Logger

	state AtomicHandshakeState
	xid   atomic.Uint32

	// fiberPorts accumulates vendor port records in arrival order. Appended
	// from the message delivery path, read from arbitrary query goroutines.
	mu         sync.Mutex
	fiberPorts []ofmsg.CalientPortDescEntry
}

// New creates a driver for the device identified by deviceID, sending through
// the given transport.
func New(deviceID string, transport Transport, opts ...Option) *Driver {
	d := &Driver{
		deviceID:  deviceID,
		transport: transport,
		profile:   S160Profile(),
		logger:    logger.GetLogger(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.logger = d.logger.With("device", d.deviceID)

	return d
}

// DeviceID returns the device identity this driver serves.
func (d *Driver) DeviceID() string {
	return d.deviceID
}

// DeviceType returns the device category advertised upstream.
func (d *Driver) DeviceType() DeviceType {
	return FiberSwitch
}

// SupportNxRole reports whether the device understands Nicira role request
// messages. The S-series does not.
func (d *Driver) SupportNxRole() bool {
	return false
}

// PortTypes returns the port description property types the device reports.
func (d *Driver) PortTypes() []PortDescPropertyType {
	return []PortDescPropertyType{OpticalTransport}
}

// GetPortsOf returns a snapshot of the port records accumulated so far for
// the given property type, in arrival order. Property types the device does
// not report yield an empty result.
//
// The snapshot may be partial while the sub-handshake is still in progress;
// callers needing a complete view must check HandshakeComplete first.
func (d *Driver) GetPortsOf(t PortDescPropertyType) []ofmsg.CalientPortDescEntry {
	if t != OpticalTransport {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return util.CloneSlice(d.fiberPorts, 0)
}

// QueryLambdas enumerates the channel grid available on the given port,
// ordered by ascending spacing multiplier. The S-series exposes the same
// grid on every port, so the port argument does not affect the result.
func (d *Driver) QueryLambdas(port ofmsg.PortNo) []optical.OchSignal {
	signals := d.profile.Grid()
	sort.Slice(signals, func(i, j int) bool {
		return signals[i].Compare(signals[j]) < 0
	})

	return signals
}

// nextXid returns a fresh transaction ID for driver-originated requests.
func (d *Driver) nextXid() uint32 {
	return d.xid.Add(1)
}
