package ofmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchWildcardAll(t *testing.T) {
	require := require.New(t)

	m := MatchWildcardAll()
	require.True(m.IsWildcardAll())
	require.Empty(m.Fields())

	m = NewMatch(MatchField{Name: "in_port", Value: []byte{0, 0, 0, 1}})
	require.False(m.IsWildcardAll())
	require.Len(m.Fields(), 1)
}

func TestStatsReplyFlags(t *testing.T) {
	require := require.New(t)

	var flags StatsReplyFlags
	require.False(flags.Has(ReplyMore))

	flags |= ReplyMore
	require.True(flags.Has(ReplyMore))

	reply := &CalientPortDescReply{Flags: ReplyMore}
	require.True(reply.More())
	require.False((&CalientPortDescReply{}).More())
}
