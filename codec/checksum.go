package codec

import "encoding/binary"

// CalcIPChecksumBytes computes the RFC 791/RFC 1071 Internet checksum
// over a serialized 20-byte IPv4 header, treating the checksum field
// (bytes 10:12) as zero regardless of its actual content. The result
// is the value to store in the header's checksum field before
// transmit, or to compare against on receive.
func CalcIPChecksumBytes(headerBytes [IPv4HeaderByteLen]byte) uint16 {
	b := headerBytes
	b[10], b[11] = 0, 0
	return foldAndComplement(sum16(b[:], 0))
}

// CalcIPChecksum computes the header checksum for an IPv4Header value,
// ignoring whatever is currently in header.Checksum.
func CalcIPChecksum(header IPv4Header) uint16 {
	return CalcIPChecksumBytes(header.ToBEBytes())
}

// VerifyIPChecksum reports ErrChecksumMismatch if header.Checksum does
// not match the value CalcIPChecksum would compute. Plain decoding
// never calls this; it exists only for callers that explicitly want
// verification, per spec.md §7.
func VerifyIPChecksum(header IPv4Header) error {
	if CalcIPChecksum(header) != header.Checksum {
		return ErrChecksumMismatch
	}
	return nil
}

// CalcUDPChecksum computes the UDP checksum for a UDP frame riding
// inside an IPv4 datagram, per RFC 768: a 12-byte pseudo-header (src
// IP, dst IP, zero, protocol, UDP length) folded together with the UDP
// header (checksum field zeroed) and payload. If the computed value is
// numerically zero it is returned as 0xFFFF, since zero on the wire
// means "checksum not computed".
func CalcUDPChecksum[B Body[B]](ipv4Header IPv4Header, udp UDPFrame[B]) uint16 {
	zeroed := udp
	zeroed.Header.Checksum = 0

	buf := make([]byte, zeroed.ByteLen())
	_ = zeroed.WriteTo(buf) // buf sized exactly to ByteLen(), cannot fail

	var pseudo [12]byte
	copy(pseudo[0:4], ipv4Header.SrcIP[:])
	copy(pseudo[4:8], ipv4Header.DstIP[:])
	pseudo[8] = 0
	pseudo[9] = uint8(ipv4Header.Protocol)
	binary.BigEndian.PutUint16(pseudo[10:12], zeroed.Header.Length)

	sum := sum16(pseudo[:], 0)
	sum = sum16(buf, sum)
	checksum := foldAndComplement(sum)
	if checksum == 0 {
		return 0xFFFF
	}
	return checksum
}

// VerifyUDPChecksum reports ErrChecksumMismatch if udp.Header.Checksum
// does not match the value CalcUDPChecksum would compute. A stored
// checksum of 0 means "not computed" and is never treated as a
// mismatch.
func VerifyUDPChecksum[B Body[B]](ipv4Header IPv4Header, udp UDPFrame[B]) error {
	if udp.Header.Checksum == 0 {
		return nil
	}
	if CalcUDPChecksum(ipv4Header, udp) != udp.Header.Checksum {
		return ErrChecksumMismatch
	}
	return nil
}

// sum16 accumulates data as big-endian 16-bit words into a running
// 32-bit accumulator. An odd trailing byte is treated as the high byte
// of a final word with zero low byte, per spec.md §4.F.
func sum16(data []byte, sum uint32) uint32 {
	i := 0
	for ; i+1 < len(data); i += 2 {
		sum += uint32(data[i])<<8 | uint32(data[i+1])
	}
	if i < len(data) {
		sum += uint32(data[i]) << 8
	}
	return sum
}

// foldAndComplement folds carries out of the high 16 bits back into
// the low 16 bits until none remain, then returns the one's complement
// of the result.
func foldAndComplement(sum uint32) uint16 {
	for sum>>16 != 0 {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}
	return ^uint16(sum)
}
