package codec

import (
	"encoding/binary"

	"github.com/catnip-embedded/netstack/addr"
	"github.com/catnip-embedded/netstack/bitfields"
)

// IPv4HeaderByteLen is the fixed wire length of IPv4Header. This stack
// never emits or parses IPv4 options: IHL is always 5 (20 bytes).
const IPv4HeaderByteLen = 20

// IPv4Header is the 20-byte IPv4 header per RFC 791, IHL fixed at 5.
type IPv4Header struct {
	VersionAndHeaderLength bitfields.VersionAndHeaderLength
	DSCPAndECN             bitfields.DSCPAndECN
	TotalLength            uint16
	Identification         uint16
	Fragmentation          bitfields.Fragmentation
	TimeToLive             uint8
	Protocol               addr.IPProtocol
	Checksum               uint16
	SrcIP                  addr.IpV4Addr
	DstIP                  addr.IpV4Addr
}

// ToBEBytes packs the header into network byte order.
func (h IPv4Header) ToBEBytes() [IPv4HeaderByteLen]byte {
	var b [IPv4HeaderByteLen]byte
	b[0] = h.VersionAndHeaderLength.Byte()
	b[1] = h.DSCPAndECN.Byte()
	binary.BigEndian.PutUint16(b[2:4], h.TotalLength)
	binary.BigEndian.PutUint16(b[4:6], h.Identification)
	binary.BigEndian.PutUint16(b[6:8], h.Fragmentation.Uint16())
	b[8] = h.TimeToLive
	b[9] = uint8(h.Protocol)
	binary.BigEndian.PutUint16(b[10:12], h.Checksum)
	copy(b[12:16], h.SrcIP[:])
	copy(b[16:20], h.DstIP[:])
	return b
}

// ReadIPv4Header parses the 20-byte header from the head of buf.
// ErrUnsupportedIHL is returned if the header length nibble is not 5;
// per spec.md §3 this stack tolerates any IHL value reported but only
// ever parses the fixed 20-byte form.
func ReadIPv4Header(buf []byte) (IPv4Header, error) {
	if len(buf) < IPv4HeaderByteLen {
		return IPv4Header{}, ErrBufferTooShort
	}
	var h IPv4Header
	h.VersionAndHeaderLength = bitfields.VersionAndHeaderLength(buf[0])
	if h.VersionAndHeaderLength.HeaderLength() != 5 {
		return IPv4Header{}, ErrUnsupportedIHL
	}
	h.DSCPAndECN = bitfields.DSCPAndECN(buf[1])
	h.TotalLength = binary.BigEndian.Uint16(buf[2:4])
	h.Identification = binary.BigEndian.Uint16(buf[4:6])
	h.Fragmentation = bitfields.Fragmentation(binary.BigEndian.Uint16(buf[6:8]))
	h.TimeToLive = buf[8]
	h.Protocol = addr.IPProtocol(buf[9])
	h.Checksum = binary.BigEndian.Uint16(buf[10:12])
	copy(h.SrcIP[:], buf[12:16])
	copy(h.DstIP[:], buf[16:20])
	return h, nil
}

// IPv4Frame is an IPv4 datagram carrying a fixed-shape body.
type IPv4Frame[B Body[B]] struct {
	Header IPv4Header
	Data   B
}

// ByteLen is IPv4HeaderByteLen + the body's byte length.
func (f IPv4Frame[B]) ByteLen() int {
	return IPv4HeaderByteLen + f.Data.ByteLen()
}

// WriteTo serializes header then body into buf[:f.ByteLen()]. It does
// not validate or recompute Header.TotalLength/Header.Checksum: the
// caller is responsible for having set them (see checksum.go and the
// NewIPv4Frame constructor).
func (f IPv4Frame[B]) WriteTo(buf []byte) error {
	n := f.ByteLen()
	if len(buf) < n {
		return ErrBufferTooShort
	}
	h := f.Header.ToBEBytes()
	copy(buf[0:IPv4HeaderByteLen], h[:])
	return f.Data.WriteTo(buf[IPv4HeaderByteLen:n])
}

// ReadBytes parses an IPv4Frame from the head of buf. ErrUnsupportedIHL
// propagates from the header parse; ErrLengthFieldInconsistent is
// returned when TotalLength does not equal 20 plus the body's
// compile-time-known byte length.
func (f IPv4Frame[B]) ReadBytes(buf []byte) (IPv4Frame[B], error) {
	var zero B
	n := IPv4HeaderByteLen + zero.ByteLen()
	if len(buf) < n {
		return IPv4Frame[B]{}, ErrBufferTooShort
	}
	if len(buf) > n {
		return IPv4Frame[B]{}, ErrBufferTooLong
	}
	header, err := ReadIPv4Header(buf[:IPv4HeaderByteLen])
	if err != nil {
		return IPv4Frame[B]{}, err
	}
	if int(header.TotalLength) != n {
		return IPv4Frame[B]{}, ErrLengthFieldInconsistent
	}
	data, err := zero.ReadBytes(buf[IPv4HeaderByteLen:n])
	if err != nil {
		return IPv4Frame[B]{}, err
	}
	return IPv4Frame[B]{Header: header, Data: data}, nil
}

// NewIPv4Frame builds an IPv4Frame with TotalLength set correctly and
// Checksum left at 0 (the caller computes it via CalcIPChecksum once
// the rest of the header is final, per spec.md §6's send sequence).
func NewIPv4Frame[B Body[B]](header IPv4Header, data B) IPv4Frame[B] {
	header.TotalLength = uint16(IPv4HeaderByteLen + data.ByteLen())
	return IPv4Frame[B]{Header: header, Data: data}
}
