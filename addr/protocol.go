package addr

import "fmt"

// IPProtocol is the 8-bit protocol field of an IPv4 header.
type IPProtocol uint8

const (
	// IPProtocolTCP is the Transmission Control Protocol number.
	IPProtocolTCP IPProtocol = 6
	// IPProtocolUDP is the User Datagram Protocol number. This stack
	// only ever transmits IPProtocolUDP; other values only arise on
	// receive.
	IPProtocolUDP IPProtocol = 17
)

// String renders known protocol numbers by name and anything else as
// an unknown(N) escape, never failing merely because a value wasn't
// among the named constants.
func (p IPProtocol) String() string {
	switch p {
	case IPProtocolTCP:
		return "TCP"
	case IPProtocolUDP:
		return "UDP"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}
