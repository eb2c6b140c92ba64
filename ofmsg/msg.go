package ofmsg

// Message is one OpenFlow protocol message as observed by the driver.
type Message interface {
	// Kind returns the OpenFlow message type.
	Kind() Kind
	// Xid returns the transaction ID correlating requests and replies.
	Xid() uint32
}

// Hello is the OpenFlow version negotiation message.
type Hello struct {
	XID     uint32
	Version uint8
}

func (*Hello) Kind() Kind    { return KindHello }
func (m *Hello) Xid() uint32 { return m.XID }

// ErrorMsg is an asynchronous error notification from the device.
type ErrorMsg struct {
	XID  uint32
	Type uint16
	Code uint16
	// Data carries the failed request prefix or a vendor diagnostic string.
	Data []byte
}

func (*ErrorMsg) Kind() Kind    { return KindError }
func (m *ErrorMsg) Xid() uint32 { return m.XID }

// EchoRequest is a liveness probe from either side of the session.
type EchoRequest struct {
	XID  uint32
	Data []byte
}

func (*EchoRequest) Kind() Kind    { return KindEchoRequest }
func (m *EchoRequest) Xid() uint32 { return m.XID }

// EchoReply answers an EchoRequest with the same payload.
type EchoReply struct {
	XID  uint32
	Data []byte
}

func (*EchoReply) Kind() Kind    { return KindEchoReply }
func (m *EchoReply) Xid() uint32 { return m.XID }

// FeaturesReply reports the datapath identity and basic capabilities,
// exchanged during the generic session handshake.
type FeaturesReply struct {
	XID          uint32
	DatapathID   uint64
	NumBuffers   uint32
	NumTables    uint8
	Capabilities uint32
}

func (*FeaturesReply) Kind() Kind    { return KindFeaturesReply }
func (m *FeaturesReply) Xid() uint32 { return m.XID }

// BarrierReply acknowledges a barrier request.
type BarrierReply struct {
	XID uint32
}

func (*BarrierReply) Kind() Kind    { return KindBarrierReply }
func (m *BarrierReply) Xid() uint32 { return m.XID }

// RoleReply reports the controller role after a role request.
type RoleReply struct {
	XID  uint32
	Role uint32
}

func (*RoleReply) Kind() Kind    { return KindRoleReply }
func (m *RoleReply) Xid() uint32 { return m.XID }

// GetAsyncReply reports the asynchronous message configuration.
type GetAsyncReply struct {
	XID uint32
}

func (*GetAsyncReply) Kind() Kind    { return KindGetAsyncReply }
func (m *GetAsyncReply) Xid() uint32 { return m.XID }

// QueueGetConfigReply reports per-port queue configuration.
type QueueGetConfigReply struct {
	XID  uint32
	Port PortNo
}

func (*QueueGetConfigReply) Kind() Kind    { return KindQueueGetConfigReply }
func (m *QueueGetConfigReply) Xid() uint32 { return m.XID }

// FlowRemoved notifies that a flow entry was removed from a table.
type FlowRemoved struct {
	XID     uint32
	Cookie  uint64
	TableID TableID
}

func (*FlowRemoved) Kind() Kind    { return KindFlowRemoved }
func (m *FlowRemoved) Xid() uint32 { return m.XID }

// PacketIn delivers a packet punted to the controller.
type PacketIn struct {
	XID      uint32
	BufferID uint32
	Reason   uint8
	Data     []byte
}

func (*PacketIn) Kind() Kind    { return KindPacketIn }
func (m *PacketIn) Xid() uint32 { return m.XID }

// PortStatus notifies of a port addition, removal or modification.
type PortStatus struct {
	XID    uint32
	Reason uint8
	PortNo PortNo
}

func (*PortStatus) Kind() Kind    { return KindPortStatus }
func (m *PortStatus) Xid() uint32 { return m.XID }
