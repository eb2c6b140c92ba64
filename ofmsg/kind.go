package ofmsg

// Kind identifies the OpenFlow message type of a Message.
type Kind uint8

// Message kinds the driver can observe. The set mirrors the OpenFlow 1.3
// message types that occur on an established optical switch session.
const (
	KindUnknown Kind = iota
	KindHello
	KindError
	KindEchoRequest
	KindEchoReply
	KindFeaturesReply
	KindBarrierReply
	KindRoleReply
	KindGetAsyncReply
	KindQueueGetConfigReply
	KindFlowRemoved
	KindPacketIn
	KindPortStatus
	KindStatsRequest
	KindStatsReply
)

var kindNames = map[Kind]string{
	KindUnknown:             "unknown",
	KindHello:               "hello",
	KindError:               "error",
	KindEchoRequest:         "echo.request",
	KindEchoReply:           "echo.reply",
	KindFeaturesReply:       "features.reply",
	KindBarrierReply:        "barrier.reply",
	KindRoleReply:           "role.reply",
	KindGetAsyncReply:       "get-async.reply",
	KindQueueGetConfigReply: "queue-get-config.reply",
	KindFlowRemoved:         "flow.removed",
	KindPacketIn:            "packet.in",
	KindPortStatus:          "port.status",
	KindStatsRequest:        "stats.request",
	KindStatsReply:          "stats.reply",
}

// String returns the lowercase dotted name of the kind, "unknown" for any
// value outside the defined set.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}
