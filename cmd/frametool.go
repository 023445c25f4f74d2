package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/catnip-embedded/netstack/addr"
	"github.com/catnip-embedded/netstack/bitfields"
	"github.com/catnip-embedded/netstack/codec"
	"github.com/catnip-embedded/netstack/config"
	"github.com/catnip-embedded/netstack/dhcp"
	"github.com/catnip-embedded/netstack/driver"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// frameTemplate is the YAML shape frametool reads to build one frame.
// Mode selects which nested shape to build: "udp" builds a plain
// Ethernet/IPv4/UDP datagram, "dhcp-inform" builds the fixed DHCP
// INFORM payload from dhcp.NewInformDatagram.
type frameTemplate struct {
	Mode string `yaml:"mode"`

	SrcMAC string `yaml:"srcMAC"`
	DstMAC string `yaml:"dstMAC"`
	SrcIP  string `yaml:"srcIP"`
	DstIP  string `yaml:"dstIP"`

	SrcPort uint16 `yaml:"srcPort"`
	DstPort uint16 `yaml:"dstPort"`
	TTL     uint8  `yaml:"ttl"`

	// PayloadSize must be one of 0, 1, 8, 64, 512 — the compile-time
	// shapes the codec exercises (spec.md §8). PayloadHex is truncated
	// or zero-padded to exactly that many bytes.
	PayloadSize int    `yaml:"payloadSize"`
	PayloadHex  string `yaml:"payloadHex"`

	TransactionID  uint32 `yaml:"transactionID"`
	SecondsElapsed uint16 `yaml:"secondsElapsed"`
	Broadcast      bool   `yaml:"broadcast"`
}

var (
	framesBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "frametool_frames_built_total",
		Help: "Total number of frames successfully built and round-tripped by frametool.",
	})
	checksumMismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "frametool_checksum_mismatches_total",
		Help: "Total number of frames frametool built whose checksum failed to verify on round-trip.",
	})
)

var (
	metricsAddr string
	sinkKind    string

	frametoolCmd = &cobra.Command{
		Use:   "build <yaml-template-file>",
		Short: "Build a frame from a YAML template, checksum it, and round-trip it through the parser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrametool(args[0])
		},
	}
)

func init() {
	frametoolCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while building")
	frametoolCmd.Flags().StringVar(&sinkKind, "sink", "logging", "frame sink to hand the built frame to: logging or none")
	rootCmd.AddCommand(frametoolCmd)
}

func runFrametool(templateFile string) error {
	ctx, cancel := contextWithCancelOnInterrupt(context.Background())
	defer cancel()

	log := logrus.WithField("template_file", templateFile)

	if metricsAddr != "" {
		server := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler()}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("metrics server error")
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			server.Shutdown(shutdownCtx)
		}()
		log.WithField("metrics_addr", metricsAddr).Info("serving prometheus metrics")
	}

	var tmpl frameTemplate
	if err := config.ReadYAMLFileAndUnmarshal(templateFile, &tmpl); err != nil {
		return err
	}

	frame, err := buildFrame(tmpl)
	if err != nil {
		return err
	}
	framesBuiltTotal.Inc()

	fmt.Printf("%d bytes:\n%s\n", len(frame), hex.Dump(frame))

	var sink driver.FrameSink
	switch sinkKind {
	case "logging":
		sink = driver.NewLoggingFrameSink(log)
	case "none":
	default:
		return fmt.Errorf("unknown --sink value %q", sinkKind)
	}
	if sink != nil {
		if err := sink.SendFrame(frame); err != nil {
			return fmt.Errorf("error sending frame to sink: %w", err)
		}
	}

	<-ctx.Done()
	return nil
}

// buildFrame constructs and checksums the frame described by tmpl,
// serializes it, and round-trips it back through the parser as a
// sanity check before returning the wire bytes.
func buildFrame(tmpl frameTemplate) ([]byte, error) {
	switch tmpl.Mode {
	case "dhcp-inform":
		return buildDHCPInform(tmpl)
	case "udp", "":
		return buildUDP(tmpl)
	default:
		return nil, fmt.Errorf("unknown frame mode %q", tmpl.Mode)
	}
}

func buildUDP(tmpl frameTemplate) ([]byte, error) {
	srcMAC, dstMAC, srcIP, dstIP, err := parseEndpoints(tmpl)
	if err != nil {
		return nil, err
	}

	payload, err := decodePayloadHex(tmpl.PayloadHex, tmpl.PayloadSize)
	if err != nil {
		return nil, err
	}

	ipHeader := codec.IPv4Header{
		VersionAndHeaderLength: bitfields.StandardIPv4(),
		DSCPAndECN:             bitfields.NewDSCPAndECN(),
		Fragmentation:          bitfields.NewFragmentation().WithDoNotFragment(true),
		TimeToLive:             tmpl.TTL,
		Protocol:               addr.IPProtocolUDP,
		SrcIP:                  srcIP,
		DstIP:                  dstIP,
	}
	ethHeader := codec.EthernetHeader{
		DstMac:    dstMAC,
		SrcMac:    srcMAC,
		EtherType: addr.EtherTypeIPv4,
	}
	udpHeader := codec.UDPHeader{SrcPort: tmpl.SrcPort, DstPort: tmpl.DstPort}

	switch tmpl.PayloadSize {
	case 0:
		return buildAndVerify(ethHeader, ipHeader, udpHeader, codec.Payload0{}, payload)
	case 1:
		return buildAndVerify(ethHeader, ipHeader, udpHeader, codec.Payload1{}, payload)
	case 8:
		return buildAndVerify(ethHeader, ipHeader, udpHeader, codec.Payload8{}, payload)
	case 64:
		return buildAndVerify(ethHeader, ipHeader, udpHeader, codec.Payload64{}, payload)
	case 512:
		return buildAndVerify(ethHeader, ipHeader, udpHeader, codec.Payload512{}, payload)
	default:
		return nil, fmt.Errorf("unsupported payloadSize %d: must be one of 0, 1, 8, 64, 512", tmpl.PayloadSize)
	}
}

// buildAndVerify builds an Ethernet/IPv4/UDP frame with body shape B,
// computes checksums, serializes, and round-trips it, incrementing
// checksumMismatchesTotal on any verification failure.
func buildAndVerify[B codec.Body[B]](
	ethHeader codec.EthernetHeader,
	ipHeader codec.IPv4Header,
	udpHeader codec.UDPHeader,
	zero B,
	payload []byte,
) ([]byte, error) {
	body, err := zero.ReadBytes(payload)
	if err != nil {
		return nil, fmt.Errorf("error building payload body: %w", err)
	}

	udpFrame := codec.NewUDPFrame(udpHeader, body)
	ipFrame := codec.NewIPv4UDPDatagram(ipHeader, udpFrame)
	ipFrame.Data.Header.Checksum = codec.CalcUDPChecksum(ipFrame.Header, ipFrame.Data)
	ipFrame.Header.Checksum = codec.CalcIPChecksum(ipFrame.Header)
	frame := codec.NewEthernetUDPDatagram(ethHeader, ipFrame)

	wire := frame.ToBEBytes()

	parsed, err := frame.ReadBytes(wire)
	if err != nil {
		return nil, fmt.Errorf("error round-tripping built frame: %w", err)
	}
	if err := codec.VerifyDatagram(parsed.Data.Header, parsed.Data.Data); err != nil {
		checksumMismatchesTotal.Inc()
		return nil, fmt.Errorf("checksum verification failed on round-trip: %w", err)
	}

	return wire, nil
}

func buildDHCPInform(tmpl frameTemplate) ([]byte, error) {
	srcMAC, err := parseMAC(tmpl.SrcMAC)
	if err != nil {
		return nil, fmt.Errorf("error parsing srcMAC: %w", err)
	}
	clientIP, err := parseIP(tmpl.SrcIP)
	if err != nil {
		return nil, fmt.Errorf("error parsing srcIP: %w", err)
	}

	xid := tmpl.TransactionID
	if xid == 0 {
		xid = petnameTransactionID()
	}

	frame := dhcp.NewInformDatagram(dhcp.InformParams{
		TransactionID:  xid,
		SecondsElapsed: tmpl.SecondsElapsed,
		Broadcast:      tmpl.Broadcast,
		ClientIP:       clientIP,
		ClientMAC:      srcMAC,
	}, srcMAC)

	frame.Data.Data.Header.Checksum = codec.CalcUDPChecksum(frame.Data.Header, frame.Data.Data)
	frame.Data.Header.Checksum = codec.CalcIPChecksum(frame.Data.Header)

	wire := frame.ToBEBytes()
	parsed, err := frame.ReadBytes(wire)
	if err != nil {
		return nil, fmt.Errorf("error round-tripping built frame: %w", err)
	}
	if err := codec.VerifyDatagram(parsed.Data.Header, parsed.Data.Data); err != nil {
		checksumMismatchesTotal.Inc()
		return nil, fmt.Errorf("checksum verification failed on round-trip: %w", err)
	}

	return wire, nil
}

// petnameTransactionID derives a deterministic-looking but ephemeral
// 32-bit transaction id from a petname, for dry runs where the caller
// has no real DHCP client state to draw an xid from.
func petnameTransactionID() uint32 {
	name := petname.Generate(2, "-")
	var x uint32
	for i := 0; i < len(name); i++ {
		x = x*31 + uint32(name[i])
	}
	return x
}

func parseEndpoints(tmpl frameTemplate) (srcMAC, dstMAC addr.MacAddr, srcIP, dstIP addr.IpV4Addr, err error) {
	if srcMAC, err = parseMAC(tmpl.SrcMAC); err != nil {
		return addr.MacAddr{}, addr.MacAddr{}, addr.IpV4Addr{}, addr.IpV4Addr{}, fmt.Errorf("error parsing srcMAC: %w", err)
	}
	if dstMAC, err = parseMAC(tmpl.DstMAC); err != nil {
		return addr.MacAddr{}, addr.MacAddr{}, addr.IpV4Addr{}, addr.IpV4Addr{}, fmt.Errorf("error parsing dstMAC: %w", err)
	}
	if srcIP, err = parseIP(tmpl.SrcIP); err != nil {
		return addr.MacAddr{}, addr.MacAddr{}, addr.IpV4Addr{}, addr.IpV4Addr{}, fmt.Errorf("error parsing srcIP: %w", err)
	}
	if dstIP, err = parseIP(tmpl.DstIP); err != nil {
		return addr.MacAddr{}, addr.MacAddr{}, addr.IpV4Addr{}, addr.IpV4Addr{}, fmt.Errorf("error parsing dstIP: %w", err)
	}
	return srcMAC, dstMAC, srcIP, dstIP, nil
}

func parseMAC(s string) (addr.MacAddr, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return addr.MacAddr{}, err
	}
	if len(hw) != 6 {
		return addr.MacAddr{}, fmt.Errorf("mac address %q is not 6 bytes long", s)
	}
	var m [6]byte
	copy(m[:], hw)
	return addr.NewMacAddr(m), nil
}

func parseIP(s string) (addr.IpV4Addr, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return addr.IpV4Addr{}, fmt.Errorf("invalid ip address %q", s)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return addr.IpV4Addr{}, fmt.Errorf("ip address %q is not ipv4", s)
	}
	var b [4]byte
	copy(b[:], ip4)
	return addr.NewIpV4Addr(b), nil
}

// decodePayloadHex decodes hexStr and zero-pads or truncates the
// result to exactly size bytes.
func decodePayloadHex(hexStr string, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("payloadSize must not be negative, got %d", size)
	}
	decoded, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("error decoding payloadHex: %w", err)
	}
	out := make([]byte, size)
	copy(out, decoded)
	return out, nil
}
