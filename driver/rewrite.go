package driver

import (
	"github.com/lumennet/ofoptical/ofmsg"
)

// Send dispatches one outbound message to the device, substituting vendor
// encodings where the hardware rejects the generic one. The rewrite applies
// to every send, regardless of handshake state: once the device is attached,
// all flow statistics polling must use the vendor shape.
//
// Transport errors are returned to the caller unmodified.
func (d *Driver) Send(msg ofmsg.Message) error {
	return d.transport.Send(d.rewrite(msg))
}

// rewrite maps generic statistics requests onto their Calient equivalents.
func (d *Driver) rewrite(msg ofmsg.Message) ofmsg.Message {
	sr, ok := msg.(ofmsg.StatsRequest)
	if !ok {
		return msg
	}

	switch sr.StatsType() {
	case ofmsg.StatsFlow:
		fr, ok := sr.(*ofmsg.FlowStatsRequest)
		if !ok {
			return msg
		}

		// The switch only supports flow stats over all flows and all
		// tables, so the per-match and per-table selectors are forced to
		// their wildcard forms. Cookie selectors and the output group
		// survive the translation.
		d.logger.Debug("rewriting flow stats request to vendor encoding", "xid", fr.XID)

		return &ofmsg.CalientFlowStatsRequest{
			XID:        fr.XID,
			Flags:      fr.Flags,
			Cookie:     fr.Cookie,
			CookieMask: fr.CookieMask,
			Match:      ofmsg.MatchWildcardAll(),
			OutPort:    ofmsg.PortAny,
			OutGroup:   fr.OutGroup,
			TableID:    ofmsg.TableAll,
		}

	case ofmsg.StatsPort:
		// TODO: vendor port stats encoding, once the S-series firmware
		// documents one. Forwarded unchanged until then.
		return msg

	default:
		return msg
	}
}
