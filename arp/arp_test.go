package arp_test

import (
	"testing"

	"github.com/catnip-embedded/netstack/addr"
	"github.com/catnip-embedded/netstack/arp"

	"github.com/google/gopacket"
	gplayers "github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario2ARPRequest(t *testing.T) {
	t.Parallel()

	senderMAC := addr.NewMacAddr([6]byte{0x02, 0xAF, 0xFF, 0x1A, 0xE5, 0x3C})
	senderIP := addr.NewIpV4Addr([4]byte{10, 0, 0, 120})
	targetIP := addr.NewIpV4Addr([4]byte{10, 0, 0, 121})

	frame := arp.NewRequestFrame(senderMAC, senderIP, targetIP)
	b := frame.ToBEBytes()

	require.Len(t, b, 42)
	assert.Equal(t, []byte{0x00, 0x01}, b[20:22], "operation field")
	assert.Equal(t, addr.MacAny, frame.Data.TargetMAC)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, b[32:38], "target MAC on the wire")
}

func TestARPRoundTrip(t *testing.T) {
	t.Parallel()

	senderMAC := addr.NewMacAddr([6]byte{1, 2, 3, 4, 5, 6})
	senderIP := addr.NewIpV4Addr([4]byte{192, 168, 1, 10})
	requesterMAC := addr.NewMacAddr([6]byte{6, 5, 4, 3, 2, 1})
	requesterIP := addr.NewIpV4Addr([4]byte{192, 168, 1, 20})

	frame := arp.NewReplyFrame(senderMAC, senderIP, requesterMAC, requesterIP)
	b := frame.ToBEBytes()

	parsed, err := frame.ReadBytes(b)
	require.NoError(t, err)
	assert.Equal(t, frame, parsed)
	assert.Equal(t, arp.ArpOperationReply, parsed.Data.Operation)
}

func TestARPCrossValidateWithGopacket(t *testing.T) {
	t.Parallel()

	senderMAC := addr.NewMacAddr([6]byte{0x02, 0xAF, 0xFF, 0x1A, 0xE5, 0x3C})
	senderIP := addr.NewIpV4Addr([4]byte{10, 0, 0, 120})
	targetIP := addr.NewIpV4Addr([4]byte{10, 0, 0, 121})

	frame := arp.NewRequestFrame(senderMAC, senderIP, targetIP)
	b := frame.ToBEBytes()

	pkt := gopacket.NewPacket(b, gplayers.LayerTypeEthernet, gopacket.Lazy)
	eth, ok := pkt.Layer(gplayers.LayerTypeEthernet).(*gplayers.Ethernet)
	require.True(t, ok)
	assert.Equal(t, gplayers.EthernetTypeARP, eth.EthernetType)

	arpLayer, ok := pkt.Layer(gplayers.LayerTypeARP).(*gplayers.ARP)
	require.True(t, ok)
	assert.Equal(t, uint16(gplayers.ARPRequest), arpLayer.Operation)
	assert.Equal(t, uint8(6), arpLayer.HwAddressSize)
	assert.Equal(t, uint8(4), arpLayer.ProtAddressSize)
	assert.Equal(t, []byte(senderIP[:]), []byte(arpLayer.SourceProtAddress))
	assert.Equal(t, []byte(targetIP[:]), []byte(arpLayer.DstProtAddress))
}

func TestArpOperationStringUnknownEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Request", arp.ArpOperationRequest.String())
	assert.Equal(t, "Reply", arp.ArpOperationReply.String())
	assert.Equal(t, "unknown(9)", arp.ArpOperation(9).String())
}
