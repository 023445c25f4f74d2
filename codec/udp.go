package codec

import "encoding/binary"

// UDPHeaderByteLen is the fixed wire length of UDPHeader.
const UDPHeaderByteLen = 8

// UDPHeader is the 8-byte UDP header per RFC 768.
type UDPHeader struct {
	SrcPort  uint16
	DstPort  uint16
	Length   uint16 // header + data, in bytes
	Checksum uint16
}

// ToBEBytes packs the header into network byte order.
func (h UDPHeader) ToBEBytes() [UDPHeaderByteLen]byte {
	var b [UDPHeaderByteLen]byte
	binary.BigEndian.PutUint16(b[0:2], h.SrcPort)
	binary.BigEndian.PutUint16(b[2:4], h.DstPort)
	binary.BigEndian.PutUint16(b[4:6], h.Length)
	binary.BigEndian.PutUint16(b[6:8], h.Checksum)
	return b
}

// ReadUDPHeader parses the 8-byte header from the head of buf.
func ReadUDPHeader(buf []byte) (UDPHeader, error) {
	if len(buf) < UDPHeaderByteLen {
		return UDPHeader{}, ErrBufferTooShort
	}
	var h UDPHeader
	h.SrcPort = binary.BigEndian.Uint16(buf[0:2])
	h.DstPort = binary.BigEndian.Uint16(buf[2:4])
	h.Length = binary.BigEndian.Uint16(buf[4:6])
	h.Checksum = binary.BigEndian.Uint16(buf[6:8])
	return h, nil
}

// UDPFrame is a UDP datagram carrying a fixed-shape body.
type UDPFrame[B Body[B]] struct {
	Header UDPHeader
	Data   B
}

// ByteLen is UDPHeaderByteLen + the body's byte length.
func (f UDPFrame[B]) ByteLen() int {
	return UDPHeaderByteLen + f.Data.ByteLen()
}

// WriteTo serializes header then body into buf[:f.ByteLen()].
func (f UDPFrame[B]) WriteTo(buf []byte) error {
	n := f.ByteLen()
	if len(buf) < n {
		return ErrBufferTooShort
	}
	h := f.Header.ToBEBytes()
	copy(buf[0:UDPHeaderByteLen], h[:])
	return f.Data.WriteTo(buf[UDPHeaderByteLen:n])
}

// ReadBytes parses a UDPFrame from the head of buf.
// ErrLengthFieldInconsistent is returned when Header.Length does not
// equal 8 plus the body's compile-time-known byte length.
func (f UDPFrame[B]) ReadBytes(buf []byte) (UDPFrame[B], error) {
	var zero B
	n := UDPHeaderByteLen + zero.ByteLen()
	if len(buf) < n {
		return UDPFrame[B]{}, ErrBufferTooShort
	}
	if len(buf) > n {
		return UDPFrame[B]{}, ErrBufferTooLong
	}
	header, err := ReadUDPHeader(buf[:UDPHeaderByteLen])
	if err != nil {
		return UDPFrame[B]{}, err
	}
	if int(header.Length) != n {
		return UDPFrame[B]{}, ErrLengthFieldInconsistent
	}
	data, err := zero.ReadBytes(buf[UDPHeaderByteLen:n])
	if err != nil {
		return UDPFrame[B]{}, err
	}
	return UDPFrame[B]{Header: header, Data: data}, nil
}

// NewUDPFrame builds a UDPFrame with Length set correctly and Checksum
// left at 0 (the caller computes it via CalcUDPChecksum once the
// enclosing IPv4 addresses are known).
func NewUDPFrame[B Body[B]](header UDPHeader, data B) UDPFrame[B] {
	header.Length = uint16(UDPHeaderByteLen + data.ByteLen())
	return UDPFrame[B]{Header: header, Data: data}
}
