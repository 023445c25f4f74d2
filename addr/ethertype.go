package addr

import "fmt"

// EtherType is the 16-bit type field of an Ethernet II header. Unknown
// values still round-trip (String reports them as unknown(0x....))
// instead of failing to parse, the same "Unknown" escape hatch used by
// gopacket/layers.EthernetType and by catnip's enum_with_unknown! macro.
type EtherType uint16

const (
	// EtherTypeIPv4 tags an IPv4 datagram payload.
	EtherTypeIPv4 EtherType = 0x0800
	// EtherTypeARP tags an ARP message payload.
	EtherTypeARP EtherType = 0x0806
)

// String renders known EtherType values by name and anything else as
// an unknown(0x....) escape.
func (e EtherType) String() string {
	switch e {
	case EtherTypeIPv4:
		return "IPv4"
	case EtherTypeARP:
		return "ARP"
	default:
		return fmt.Sprintf("unknown(0x%04x)", uint16(e))
	}
}
