// Package addr defines the primitive address and enum types shared by
// every header and frame in the codec: MAC/IPv4 addresses, EtherType,
// IP protocol numbers, and the DSCP/ECN code points.
package addr

import "fmt"

// MacAddr is a 6-byte Ethernet hardware address. It is a plain value
// type so copying, comparing with ==, and embedding in headers never
// allocates.
type MacAddr [6]byte

// MacBroadcast is the all-ones MAC address used for ARP requests and
// DHCP INFORM frames.
var MacBroadcast = MacAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// MacAny is the all-zeros MAC address.
var MacAny = MacAddr{}

// NewMacAddr builds a MacAddr from its six bytes. Total: every [6]byte
// value is a legal address.
func NewMacAddr(b [6]byte) MacAddr {
	return MacAddr(b)
}

// String renders the address in standard colon-hex notation.
func (m MacAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}
