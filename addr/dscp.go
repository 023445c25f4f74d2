package addr

import "fmt"

// DSCP is a Differentiated Services Code Point: the 6-bit value meant
// to occupy the high six bits of the IPv4 type-of-service byte (see
// bitfields.DSCPAndECN for the packing). Values are stored as the bare
// 6-bit codepoint (0-63), matching RFC 2474's own notation, not the
// byte-shifted form catnip's Rust source used internally.
type DSCP uint8

const (
	// DSCPStandard is best-effort traffic and almost always the right choice.
	DSCPStandard DSCP = 0
	// DSCPRealTime is the expedited-forwarding-adjacent class used for
	// latency-sensitive control traffic on this stack.
	DSCPRealTime DSCP = 46
	// DSCPAF11 is assured forwarding class 1, low drop precedence.
	DSCPAF11 DSCP = 10
	// DSCPAF12 is assured forwarding class 1, medium drop precedence.
	DSCPAF12 DSCP = 12
	// DSCPAF13 is assured forwarding class 1, high drop precedence.
	DSCPAF13 DSCP = 14
	// DSCPCS0 is class selector 0, numerically identical to DSCPStandard.
	DSCPCS0 DSCP = 0
	// DSCPCS7 is class selector 7, the highest-priority class selector,
	// conventionally reserved for network control traffic.
	DSCPCS7 DSCP = 56
)

// String renders named DSCP code points and falls back to an other(N)
// escape for anything else, per spec the DSCP field never fails to
// round-trip merely because the value isn't one of the named points.
func (d DSCP) String() string {
	switch d {
	case DSCPStandard:
		return "standard"
	case DSCPRealTime:
		return "real-time"
	case DSCPAF11:
		return "af11"
	case DSCPAF12:
		return "af12"
	case DSCPAF13:
		return "af13"
	case DSCPCS7:
		return "cs7"
	default:
		return fmt.Sprintf("other(%d)", uint8(d))
	}
}

// ECN is the 2-bit Explicit Congestion Notification field. It defaults
// to 0 (not ECN-capable) and this stack never sets it on transmit.
type ECN uint8

const (
	ECNNotCapable     ECN = 0
	ECNCapableT0      ECN = 1
	ECNCapableT1      ECN = 2
	ECNCongestionSeen ECN = 3
)
