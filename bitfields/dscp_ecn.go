package bitfields

import "github.com/catnip-embedded/netstack/addr"

// DSCPAndECN packs a 6-bit DSCP code point into the high bits and a
// 2-bit ECN marker into the low bits of the IPv4 type-of-service byte.
type DSCPAndECN uint8

// NewDSCPAndECN returns the zero value: DSCPStandard, ECNNotCapable.
func NewDSCPAndECN() DSCPAndECN {
	return 0
}

// WithDSCP returns a copy with the DSCP code point set.
func (d DSCPAndECN) WithDSCP(dscp addr.DSCP) DSCPAndECN {
	return DSCPAndECN(uint8(d)&0x03 | (uint8(dscp)&0x3F)<<2)
}

// WithECN returns a copy with the ECN marker set.
func (d DSCPAndECN) WithECN(ecn addr.ECN) DSCPAndECN {
	return DSCPAndECN(uint8(d)&0xFC | uint8(ecn)&0x03)
}

// DSCP returns the 6-bit DSCP code point.
func (d DSCPAndECN) DSCP() addr.DSCP {
	return addr.DSCP(uint8(d) >> 2)
}

// ECN returns the 2-bit ECN marker.
func (d DSCPAndECN) ECN() addr.ECN {
	return addr.ECN(uint8(d) & 0x03)
}

// Byte returns the packed byte.
func (d DSCPAndECN) Byte() uint8 {
	return uint8(d)
}
