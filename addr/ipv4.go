package addr

import "fmt"

// IpV4Addr is a 4-byte IPv4 address.
type IpV4Addr [4]byte

// IpV4Broadcast is the limited broadcast address 255.255.255.255.
var IpV4Broadcast = IpV4Addr{0xFF, 0xFF, 0xFF, 0xFF}

// IpV4Any is the unspecified address 0.0.0.0.
var IpV4Any = IpV4Addr{}

// NewIpV4Addr builds an IpV4Addr from its four bytes.
func NewIpV4Addr(b [4]byte) IpV4Addr {
	return IpV4Addr(b)
}

// String renders the address in dotted-decimal notation.
func (a IpV4Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}
