package ofmsg

// Calient S-series experimenter messages. The S160 rejects the generic
// flow stats and port description encodings, so the driver substitutes
// these vendor shapes on the wire.

// CalientPortDescRequest asks the switch for its vendor port description
// multipart reply.
type CalientPortDescRequest struct {
	XID   uint32
	Flags StatsRequestFlags
}

var _ StatsRequest = (*CalientPortDescRequest)(nil)

func (*CalientPortDescRequest) Kind() Kind           { return KindStatsRequest }
func (m *CalientPortDescRequest) Xid() uint32        { return m.XID }
func (*CalientPortDescRequest) StatsType() StatsType { return StatsExperimenter }

// CalientPortDescEntry is one vendor port record from the port description
// reply. The switch reports entries in hardware order; the driver preserves
// that order, duplicates included.
type CalientPortDescEntry struct {
	PortNo     PortNo
	Name       string
	AdminUp    bool
	OperUp     bool
	InCircuit  string
	OutCircuit string
}

// CalientPortDescReply is one fragment of the vendor port description
// multipart reply. A fragment with the ReplyMore flag set promises further
// fragments of the same logical reply.
type CalientPortDescReply struct {
	XID     uint32
	Flags   StatsReplyFlags
	Entries []CalientPortDescEntry
}

func (*CalientPortDescReply) Kind() Kind           { return KindStatsReply }
func (m *CalientPortDescReply) Xid() uint32        { return m.XID }
func (*CalientPortDescReply) StatsType() StatsType { return StatsExperimenter }

// More reports whether further fragments of the reply follow.
func (m *CalientPortDescReply) More() bool {
	return m.Flags.Has(ReplyMore)
}

// CalientFlowStatsRequest is the vendor flow statistics request. It carries
// the same selectors as FlowStatsRequest, but the switch only honors the
// wildcard forms of the match, output port and table selectors.
type CalientFlowStatsRequest struct {
	XID        uint32
	Flags      StatsRequestFlags
	Cookie     uint64
	CookieMask uint64
	Match      Match
	OutPort    PortNo
	OutGroup   GroupID
	TableID    TableID
}

var _ StatsRequest = (*CalientFlowStatsRequest)(nil)

func (*CalientFlowStatsRequest) Kind() Kind           { return KindStatsRequest }
func (m *CalientFlowStatsRequest) Xid() uint32        { return m.XID }
func (*CalientFlowStatsRequest) StatsType() StatsType { return StatsExperimenter }
