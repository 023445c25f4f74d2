package addr_test

import (
	"testing"

	"github.com/catnip-embedded/netstack/addr"

	"github.com/stretchr/testify/assert"
)

func TestMacAddrString(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		mac  addr.MacAddr
		want string
	}{
		{"broadcast", addr.MacBroadcast, "ff:ff:ff:ff:ff:ff"},
		{"any", addr.MacAny, "00:00:00:00:00:00"},
		{"mixed", addr.NewMacAddr([6]byte{0x02, 0xAF, 0xFF, 0x1A, 0xE5, 0x3C}), "02:af:ff:1a:e5:3c"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.mac.String())
		})
	}
}

func TestMacAddrEquality(t *testing.T) {
	t.Parallel()

	a := addr.NewMacAddr([6]byte{1, 2, 3, 4, 5, 6})
	b := addr.NewMacAddr([6]byte{1, 2, 3, 4, 5, 6})
	c := addr.NewMacAddr([6]byte{1, 2, 3, 4, 5, 7})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestIpV4AddrString(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		ip   addr.IpV4Addr
		want string
	}{
		{"broadcast", addr.IpV4Broadcast, "255.255.255.255"},
		{"any", addr.IpV4Any, "0.0.0.0"},
		{"host", addr.NewIpV4Addr([4]byte{10, 0, 0, 120}), "10.0.0.120"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.ip.String())
		})
	}
}

func TestEtherTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IPv4", addr.EtherTypeIPv4.String())
	assert.Equal(t, "ARP", addr.EtherTypeARP.String())
	assert.Equal(t, "unknown(0x86dd)", addr.EtherType(0x86DD).String())
}

func TestIPProtocolString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TCP", addr.IPProtocolTCP.String())
	assert.Equal(t, "UDP", addr.IPProtocolUDP.String())
	assert.Equal(t, "unknown(1)", addr.IPProtocol(1).String())
}

func TestDSCPString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "standard", addr.DSCPStandard.String())
	assert.Equal(t, "real-time", addr.DSCPRealTime.String())
	assert.Equal(t, "other(63)", addr.DSCP(63).String())
}
