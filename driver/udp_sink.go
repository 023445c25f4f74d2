package driver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/net/ipv4"
)

// UDPFrameSink tunnels serialized frames over a host UDP socket, the
// same trick the teacher's fullDuplexUnreliablePort uses to simulate a
// wire: dial a UDP socket bound to a fixed local endpoint and write
// whole frames to it. It exists for inspecting frametool's output with
// a packet capture on a real host, never for the bare-metal target.
type UDPFrameSink struct {
	conn *net.UDPConn
	ttl  int
}

// UDPFrameSinkConfig mirrors the teacher's
// FullDuplexUnreliablePortConfig: a fixed local recv endpoint dialed
// out to a fixed remote send endpoint.
type UDPFrameSinkConfig struct {
	RecvUDPEndpoint string
	SendUDPEndpoint string
	// TTL sets the outgoing IP TTL on the tunneling socket via
	// golang.org/x/net/ipv4, independent of whatever TTL the tunneled
	// frame's own IPv4 header carries. Zero leaves the OS default.
	TTL int
}

// NewUDPFrameSink dials the configured UDP socket and, if TTL is set,
// applies it to the socket through x/net/ipv4's Conn wrapper —
// the stdlib net package exposes no portable TTL knob, which is the
// concrete reason this driver reaches for x/net instead of net alone.
func NewUDPFrameSink(ctx context.Context, conf UDPFrameSinkConfig) (*UDPFrameSink, error) {
	recvAddr, err := net.ResolveUDPAddr("udp", conf.RecvUDPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("error resolving udp address of recv endpoint: %w", err)
	}
	dialer := &net.Dialer{LocalAddr: recvAddr}
	rawConn, err := dialer.DialContext(ctx, "udp", conf.SendUDPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("error dialing udp: %w", err)
	}
	conn, ok := rawConn.(*net.UDPConn)
	if !ok {
		rawConn.Close()
		return nil, errors.New("dialed connection is not a UDP connection")
	}

	if conf.TTL > 0 {
		pc := ipv4.NewConn(conn)
		if err := pc.SetTTL(conf.TTL); err != nil {
			conn.Close()
			return nil, fmt.Errorf("error setting ipv4 ttl on tunnel socket: %w", err)
		}
	}

	return &UDPFrameSink{conn: conn, ttl: conf.TTL}, nil
}

// SendFrame writes frame to the tunnel socket in full, with a short
// write deadline so a stalled receiver cannot block the caller
// forever.
func (s *UDPFrameSink) SendFrame(frame []byte) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("error setting write deadline: %w", err)
	}
	n, err := s.conn.Write(frame)
	if err != nil {
		return fmt.Errorf("error writing frame to udp tunnel: %w", err)
	}
	if n != len(frame) {
		return fmt.Errorf("short write: wrote %d of %d bytes", n, len(frame))
	}
	return nil
}

// Close releases the tunnel socket.
func (s *UDPFrameSink) Close() error {
	return s.conn.Close()
}
