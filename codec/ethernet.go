package codec

import (
	"encoding/binary"

	"github.com/catnip-embedded/netstack/addr"
)

// EthernetHeaderByteLen is the fixed wire length of EthernetHeader.
const EthernetHeaderByteLen = 14

// EthernetHeader is the 14-byte Ethernet II header: destination MAC,
// source MAC, EtherType.
type EthernetHeader struct {
	DstMac    addr.MacAddr
	SrcMac    addr.MacAddr
	EtherType addr.EtherType
}

// ToBEBytes packs the header into network byte order.
func (h EthernetHeader) ToBEBytes() [EthernetHeaderByteLen]byte {
	var b [EthernetHeaderByteLen]byte
	copy(b[0:6], h.DstMac[:])
	copy(b[6:12], h.SrcMac[:])
	binary.BigEndian.PutUint16(b[12:14], uint16(h.EtherType))
	return b
}

// ReadEthernetHeader parses the 14-byte header from the head of buf.
func ReadEthernetHeader(buf []byte) (EthernetHeader, error) {
	if len(buf) < EthernetHeaderByteLen {
		return EthernetHeader{}, ErrBufferTooShort
	}
	var h EthernetHeader
	copy(h.DstMac[:], buf[0:6])
	copy(h.SrcMac[:], buf[6:12])
	h.EtherType = addr.EtherType(binary.BigEndian.Uint16(buf[12:14]))
	return h, nil
}

// EthernetFrame is an Ethernet II frame carrying a fixed-shape body.
// The header and body are the whole of what this codec serializes.
// spec.md §6 describes an "optional 4-byte trailing FCS slot"; §9
// leaves its computation undeclared ("real hardware normally appends
// the CRC, and software-side CRC is not a declared responsibility of
// this core"). So FCS is a driver-level concern, not part of the core
// frame shape: see AppendFCS and SplitFCS for the caller who needs to
// populate or strip a trailing FCS word around this frame's bytes.
type EthernetFrame[B Body[B]] struct {
	Header EthernetHeader
	Data   B
}

// ByteLen is EthernetHeaderByteLen + the body's byte length.
func (f EthernetFrame[B]) ByteLen() int {
	return EthernetHeaderByteLen + f.Data.ByteLen()
}

// WriteTo serializes header then body into buf[:f.ByteLen()].
func (f EthernetFrame[B]) WriteTo(buf []byte) error {
	n := f.ByteLen()
	if len(buf) < n {
		return ErrBufferTooShort
	}
	h := f.Header.ToBEBytes()
	copy(buf[0:EthernetHeaderByteLen], h[:])
	return f.Data.WriteTo(buf[EthernetHeaderByteLen:n])
}

// ReadBytes parses an EthernetFrame from the head of buf. buf must be
// exactly f.ByteLen() bytes; per spec.md §7 a short buffer is
// ErrBufferTooShort and a long one is ErrBufferTooLong for fixed
// shapes. Callers whose driver hands them a trailing FCS word strip it
// first (see SplitFCS).
func (f EthernetFrame[B]) ReadBytes(buf []byte) (EthernetFrame[B], error) {
	var zero B
	n := EthernetHeaderByteLen + zero.ByteLen()
	if len(buf) < n {
		return EthernetFrame[B]{}, ErrBufferTooShort
	}
	if len(buf) > n {
		return EthernetFrame[B]{}, ErrBufferTooLong
	}
	header, err := ReadEthernetHeader(buf[:EthernetHeaderByteLen])
	if err != nil {
		return EthernetFrame[B]{}, err
	}
	data, err := zero.ReadBytes(buf[EthernetHeaderByteLen:n])
	if err != nil {
		return EthernetFrame[B]{}, err
	}
	return EthernetFrame[B]{Header: header, Data: data}, nil
}

// ToBEBytes is a convenience wrapper around WriteTo for callers that
// want an owned byte slice instead of writing into a caller-supplied
// buffer (e.g. tests, or handing the result to a MAC driver whose API
// takes []byte). It allocates exactly once; the codec's own WriteTo
// path never does.
func (f EthernetFrame[B]) ToBEBytes() []byte {
	buf := make([]byte, f.ByteLen())
	_ = f.WriteTo(buf) // buf is sized exactly to ByteLen(), cannot fail
	return buf
}
