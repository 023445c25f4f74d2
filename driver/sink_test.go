package driver_test

import (
	"context"
	"testing"

	"github.com/catnip-embedded/netstack/driver"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFrameSinkCountsAndLogs(t *testing.T) {
	t.Parallel()

	log, hook := test.NewNullLogger()
	sink := driver.NewLoggingFrameSink(log)

	require.NoError(t, sink.SendFrame([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
	require.NoError(t, sink.SendFrame(make([]byte, 64)))

	assert.Equal(t, 2, sink.FramesSent())
	require.Len(t, hook.Entries, 2)
	assert.Equal(t, 4, hook.Entries[0].Data["frame_bytes"])
	assert.Equal(t, false, hook.Entries[0].Data["truncated"])
	assert.Equal(t, true, hook.Entries[1].Data["truncated"])
}

func TestLoggingFrameSinkDefaultsToStandardLogger(t *testing.T) {
	t.Parallel()

	sink := driver.NewLoggingFrameSink(nil)
	assert.NoError(t, sink.SendFrame([]byte{0x01}))
}

func TestUDPFrameSinkSendsToPeer(t *testing.T) {
	t.Parallel()

	recvAddr, err := driver.NewUDPFrameSink(context.Background(), driver.UDPFrameSinkConfig{
		RecvUDPEndpoint: "127.0.0.1:52001",
		SendUDPEndpoint: "127.0.0.1:52002",
		TTL:             32,
	})
	require.NoError(t, err)
	defer recvAddr.Close()

	other, err := driver.NewUDPFrameSink(context.Background(), driver.UDPFrameSinkConfig{
		RecvUDPEndpoint: "127.0.0.1:52002",
		SendUDPEndpoint: "127.0.0.1:52001",
	})
	require.NoError(t, err)
	defer other.Close()

	frame := []byte{0x00, 0x11, 0x22, 0x33, 0x44}
	assert.NoError(t, recvAddr.SendFrame(frame))
}

func TestUDPFrameSinkBadEndpointFails(t *testing.T) {
	t.Parallel()

	_, err := driver.NewUDPFrameSink(context.Background(), driver.UDPFrameSinkConfig{
		RecvUDPEndpoint: "not-an-address",
		SendUDPEndpoint: "127.0.0.1:52003",
	})
	assert.Error(t, err)
}
