package ofmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("hello", KindHello.String())
	require.Equal("stats.request", KindStatsRequest.String())
	require.Equal("stats.reply", KindStatsReply.String())
	require.Equal("port.status", KindPortStatus.String())
	require.Equal("unknown", KindUnknown.String())
	require.Equal("unknown", Kind(250).String())
}

func TestStatsTypeString(t *testing.T) {
	require := require.New(t)

	require.Equal("flow", StatsFlow.String())
	require.Equal("port", StatsPort.String())
	require.Equal("port-desc", StatsPortDesc.String())
	require.Equal("experimenter", StatsExperimenter.String())
	require.Equal("unknown", StatsType(999).String())
}

func TestMessageKinds(t *testing.T) {
	require := require.New(t)

	msgs := map[Kind]Message{
		KindHello:               &Hello{},
		KindError:               &ErrorMsg{},
		KindEchoRequest:         &EchoRequest{},
		KindEchoReply:           &EchoReply{},
		KindFeaturesReply:       &FeaturesReply{},
		KindBarrierReply:        &BarrierReply{},
		KindRoleReply:           &RoleReply{},
		KindGetAsyncReply:       &GetAsyncReply{},
		KindQueueGetConfigReply: &QueueGetConfigReply{},
		KindFlowRemoved:         &FlowRemoved{},
		KindPacketIn:            &PacketIn{},
		KindPortStatus:          &PortStatus{},
	}

	for kind, msg := range msgs {
		require.Equal(kind, msg.Kind())
	}

	require.Equal(KindStatsRequest, (&FlowStatsRequest{}).Kind())
	require.Equal(KindStatsRequest, (&PortStatsRequest{}).Kind())
	require.Equal(KindStatsRequest, (&CalientPortDescRequest{}).Kind())
	require.Equal(KindStatsRequest, (&CalientFlowStatsRequest{}).Kind())
	require.Equal(KindStatsReply, (&CalientPortDescReply{}).Kind())
}
