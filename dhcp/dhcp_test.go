package dhcp_test

import (
	"testing"

	"github.com/catnip-embedded/netstack/addr"
	"github.com/catnip-embedded/netstack/codec"
	"github.com/catnip-embedded/netstack/dhcp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario3InformRoundTrip(t *testing.T) {
	t.Parallel()

	clientMAC := addr.NewMacAddr([6]byte{0x02, 0xAF, 0xFF, 0x1A, 0xE5, 0x3C})
	clientIP := addr.NewIpV4Addr([4]byte{10, 0, 0, 120})

	params := dhcp.InformParams{
		TransactionID:  0x1234ABCD,
		SecondsElapsed: 3,
		Broadcast:      true,
		ClientIP:       clientIP,
		ClientMAC:      clientMAC,
	}
	frame := dhcp.NewInformDatagram(params, clientMAC)

	frame.Data.Data.Header.Checksum = codec.CalcUDPChecksum(frame.Data.Header, frame.Data.Data)
	frame.Data.Header.Checksum = codec.CalcIPChecksum(frame.Data.Header)

	b := frame.ToBEBytes()
	parsed, err := frame.ReadBytes(b)
	require.NoError(t, err)
	assert.Equal(t, frame, parsed)

	payload := parsed.Data.Data.Data
	assert.Equal(t, dhcp.MessageKindInform, payload.MessageKind)
	assert.Equal(t, uint8(8), uint8(payload.MessageKind), "option 53 value")
	assert.True(t, payload.Broadcast())
	assert.Equal(t, clientIP, payload.CIAddr)
	assert.Equal(t, clientMAC, payload.CHAddr)
}

func TestInformDefaultsMatchWireFormat(t *testing.T) {
	t.Parallel()

	clientMAC := addr.NewMacAddr([6]byte{1, 2, 3, 4, 5, 6})
	clientIP := addr.NewIpV4Addr([4]byte{192, 168, 0, 5})

	payload := dhcp.BuildInform(dhcp.InformParams{
		TransactionID: 42,
		ClientIP:      clientIP,
		ClientMAC:     clientMAC,
	})
	b := make([]byte, payload.ByteLen())
	require.NoError(t, payload.WriteTo(b))

	assert.Equal(t, uint8(dhcp.DHCPOperationRequest), b[0], "op")
	assert.Equal(t, uint8(1), b[1], "htype")
	assert.Equal(t, uint8(6), b[2], "hlen")
	assert.Equal(t, []byte{0x63, 0x82, 0x53, 0x63}, b[236:240], "magic cookie")
	assert.Equal(t, uint8(53), b[240], "option 53 kind")
	assert.Equal(t, uint8(1), b[241], "option 53 length")
	assert.Equal(t, uint8(8), b[242], "option 53 value: Inform")
	assert.Len(t, b, dhcp.DHCPInformPayloadByteLen)
}

func TestDHCPMessageKindStringUnknownEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Inform", dhcp.MessageKindInform.String())
	assert.Equal(t, "unknown(99)", dhcp.DHCPMessageKind(99).String())
}
