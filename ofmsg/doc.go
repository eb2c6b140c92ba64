// Package ofmsg models the subset of OpenFlow 1.3 and Calient experimenter
// messages that the optical switch driver exchanges with a device.
//
// Messages are represented as a closed set of kinds (see Kind) with one
// payload struct per kind, so driver code dispatches with an exhaustive type
// switch instead of downcasting through a generic message tree.
//
// Wire encoding and decoding are deliberately out of scope: the session layer
// that owns the TCP connection is responsible for framing, and hands the
// driver fully-decoded messages. This package only defines the kinds and
// field accessors the driver logic needs.
package ofmsg
