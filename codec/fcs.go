package codec

import "encoding/binary"

// FCSByteLen is the width of the Ethernet trailing FCS slot described
// in spec.md §6. This codec never computes a CRC; AppendFCS and
// SplitFCS only move the 4 bytes a driver supplies or strips.
const FCSByteLen = 4

// AppendFCS returns frame with a big-endian FCS word appended. Used by
// a MAC driver that owns a software CRC instead of hardware appending
// it; pass 0 for drivers that let hardware handle the trailer.
func AppendFCS(frame []byte, fcs uint32) []byte {
	out := make([]byte, len(frame)+FCSByteLen)
	copy(out, frame)
	binary.BigEndian.PutUint32(out[len(frame):], fcs)
	return out
}

// SplitFCS splits the trailing FCS word off a received buffer,
// returning the core frame bytes and the FCS value. ErrBufferTooShort
// is returned if buf is shorter than FCSByteLen.
func SplitFCS(buf []byte) (frame []byte, fcs uint32, err error) {
	if len(buf) < FCSByteLen {
		return nil, 0, ErrBufferTooShort
	}
	n := len(buf) - FCSByteLen
	return buf[:n], binary.BigEndian.Uint32(buf[n:]), nil
}
