package ofmsg

// StatsType identifies the multipart statistics family of a stats request
// or reply.
type StatsType uint16

const (
	StatsFlow StatsType = iota
	StatsPort
	StatsPortDesc
	StatsExperimenter
)

// String returns the lowercase name of the stats type.
func (st StatsType) String() string {
	switch st {
	case StatsFlow:
		return "flow"
	case StatsPort:
		return "port"
	case StatsPortDesc:
		return "port-desc"
	case StatsExperimenter:
		return "experimenter"
	default:
		return "unknown"
	}
}

// StatsRequestFlags are the flags of a multipart request.
type StatsRequestFlags uint16

// StatsReplyFlags are the flags of a multipart reply.
type StatsReplyFlags uint16

// ReplyMore indicates that further fragments of the same logical multipart
// reply follow.
const ReplyMore StatsReplyFlags = 1 << 0

// Has reports whether all bits of flag are set.
func (f StatsReplyFlags) Has(flag StatsReplyFlags) bool {
	return f&flag == flag
}

// StatsRequest is implemented by every outbound multipart request, so the
// send path can identify the statistics family without enumerating the
// concrete types.
type StatsRequest interface {
	Message
	StatsType() StatsType
}

// FlowStatsRequest is the generic OpenFlow flow statistics request.
type FlowStatsRequest struct {
	XID        uint32
	Flags      StatsRequestFlags
	Cookie     uint64
	CookieMask uint64
	Match      Match
	OutPort    PortNo
	OutGroup   GroupID
	TableID    TableID
}

var _ StatsRequest = (*FlowStatsRequest)(nil)

func (*FlowStatsRequest) Kind() Kind           { return KindStatsRequest }
func (m *FlowStatsRequest) Xid() uint32        { return m.XID }
func (*FlowStatsRequest) StatsType() StatsType { return StatsFlow }

// PortStatsRequest is the generic OpenFlow port statistics request.
type PortStatsRequest struct {
	XID    uint32
	Flags  StatsRequestFlags
	PortNo PortNo
}

var _ StatsRequest = (*PortStatsRequest)(nil)

func (*PortStatsRequest) Kind() Kind           { return KindStatsRequest }
func (m *PortStatsRequest) Xid() uint32        { return m.XID }
func (*PortStatsRequest) StatsType() StatsType { return StatsPort }
