package ofmsg

// PortNo is an OpenFlow port number.
type PortNo uint32

// Reserved OpenFlow port numbers.
const (
	// PortMax is the maximum number of physical and logical switch ports.
	PortMax PortNo = 0xffffff00
	// PortAny wildcards the port in flow mod and stats requests.
	PortAny PortNo = 0xffffffff
)

// GroupID is an OpenFlow group identifier.
type GroupID uint32

// GroupAny wildcards the group in flow stats requests.
const GroupAny GroupID = 0xffffffff

// TableID is an OpenFlow flow table identifier.
type TableID uint8

// TableAll wildcards the table selector in flow stats requests.
const TableAll TableID = 0xff

// MatchField is a single OXM match field/value pair.
type MatchField struct {
	Name  string
	Value []byte
}

// Match is a flow match criterion. A Match with no fields matches every flow.
type Match struct {
	fields []MatchField
}

// NewMatch builds a match from the given OXM fields.
func NewMatch(fields ...MatchField) Match {
	return Match{fields: fields}
}

// MatchWildcardAll returns the match that matches every flow.
func MatchWildcardAll() Match {
	return Match{}
}

// Fields returns the OXM fields of the match.
func (m Match) Fields() []MatchField {
	return m.fields
}

// IsWildcardAll reports whether the match matches every flow.
func (m Match) IsWildcardAll() bool {
	return len(m.fields) == 0
}
