// Package arp builds and parses Address Resolution Protocol request
// and reply payloads, per spec.md §4.G. An ArpPayload rides as the
// body of an EthernetFrame with EtherType set to addr.EtherTypeARP;
// the codec is field-by-field big-endian, mirroring the teacher's
// sendARP defaults (internal/layers/network/interface.go).
package arp

import (
	"encoding/binary"
	"fmt"

	"github.com/catnip-embedded/netstack/addr"
	"github.com/catnip-embedded/netstack/codec"
)

// ArpOperation is the ARP operation field.
type ArpOperation uint16

const (
	// ArpOperationRequest asks for the MAC address owning a target IP.
	ArpOperationRequest ArpOperation = 1
	// ArpOperationReply answers a request.
	ArpOperationReply ArpOperation = 2
)

// String renders the known operations by name and anything else as an
// unknown(N) escape.
func (o ArpOperation) String() string {
	switch o {
	case ArpOperationRequest:
		return "Request"
	case ArpOperationReply:
		return "Reply"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(o))
	}
}

// ArpPayloadByteLen is the fixed wire length of ArpPayload: 28 bytes,
// per spec.md §4.G (unpadded — see DESIGN.md for why this stack
// departs from original_source/src/arp.rs's 46-byte padded form).
const ArpPayloadByteLen = 28

// ArpPayload is an ARP request or reply for Ethernet/IPv4, RFC 826.
type ArpPayload struct {
	HwAddressType   uint16 // 1 for Ethernet
	ProtoType       addr.EtherType
	HwAddressSize   uint8 // 6 for standard MAC
	ProtoAddresSize uint8 // 4 for IPv4
	Operation       ArpOperation
	SenderMAC       addr.MacAddr
	SenderIP        addr.IpV4Addr
	TargetMAC       addr.MacAddr
	TargetIP        addr.IpV4Addr
}

// ByteLen returns ArpPayloadByteLen.
func (ArpPayload) ByteLen() int { return ArpPayloadByteLen }

// WriteTo serializes the payload field-by-field, big-endian.
func (p ArpPayload) WriteTo(buf []byte) error {
	if len(buf) < ArpPayloadByteLen {
		return codec.ErrBufferTooShort
	}
	binary.BigEndian.PutUint16(buf[0:2], p.HwAddressType)
	binary.BigEndian.PutUint16(buf[2:4], uint16(p.ProtoType))
	buf[4] = p.HwAddressSize
	buf[5] = p.ProtoAddresSize
	binary.BigEndian.PutUint16(buf[6:8], uint16(p.Operation))
	copy(buf[8:14], p.SenderMAC[:])
	copy(buf[14:18], p.SenderIP[:])
	copy(buf[18:24], p.TargetMAC[:])
	copy(buf[24:28], p.TargetIP[:])
	return nil
}

// ReadBytes parses an ArpPayload from the head of buf.
func (ArpPayload) ReadBytes(buf []byte) (ArpPayload, error) {
	if len(buf) < ArpPayloadByteLen {
		return ArpPayload{}, codec.ErrBufferTooShort
	}
	var p ArpPayload
	p.HwAddressType = binary.BigEndian.Uint16(buf[0:2])
	p.ProtoType = addr.EtherType(binary.BigEndian.Uint16(buf[2:4]))
	p.HwAddressSize = buf[4]
	p.ProtoAddresSize = buf[5]
	p.Operation = ArpOperation(binary.BigEndian.Uint16(buf[6:8]))
	copy(p.SenderMAC[:], buf[8:14])
	copy(p.SenderIP[:], buf[14:18])
	copy(p.TargetMAC[:], buf[18:24])
	copy(p.TargetIP[:], buf[24:28])
	return p, nil
}

// NewARPRequest builds a request asking who owns targetIP, with the
// target MAC left zeroed since it is unknown by definition.
func NewARPRequest(senderMAC addr.MacAddr, senderIP addr.IpV4Addr, targetIP addr.IpV4Addr) ArpPayload {
	return newEthernetIPv4(ArpOperationRequest, senderMAC, senderIP, addr.MacAny, targetIP)
}

// NewARPReply builds a reply to requesterMAC/requesterIP, asserting
// that senderMAC owns senderIP.
func NewARPReply(
	senderMAC addr.MacAddr,
	senderIP addr.IpV4Addr,
	requesterMAC addr.MacAddr,
	requesterIP addr.IpV4Addr,
) ArpPayload {
	return newEthernetIPv4(ArpOperationReply, senderMAC, senderIP, requesterMAC, requesterIP)
}

func newEthernetIPv4(
	op ArpOperation,
	senderMAC addr.MacAddr,
	senderIP addr.IpV4Addr,
	targetMAC addr.MacAddr,
	targetIP addr.IpV4Addr,
) ArpPayload {
	return ArpPayload{
		HwAddressType:   1,
		ProtoType:       addr.EtherTypeIPv4,
		HwAddressSize:   6,
		ProtoAddresSize: 4,
		Operation:       op,
		SenderMAC:       senderMAC,
		SenderIP:        senderIP,
		TargetMAC:       targetMAC,
		TargetIP:        targetIP,
	}
}

// NewRequestFrame builds the full Ethernet frame for an ARP request:
// broadcast destination MAC, EtherType ARP.
func NewRequestFrame(
	senderMAC addr.MacAddr,
	senderIP addr.IpV4Addr,
	targetIP addr.IpV4Addr,
) codec.EthernetFrame[ArpPayload] {
	return codec.EthernetFrame[ArpPayload]{
		Header: codec.EthernetHeader{
			DstMac:    addr.MacBroadcast,
			SrcMac:    senderMAC,
			EtherType: addr.EtherTypeARP,
		},
		Data: NewARPRequest(senderMAC, senderIP, targetIP),
	}
}

// NewReplyFrame builds the full Ethernet frame for an ARP reply,
// addressed directly to the requester.
func NewReplyFrame(
	senderMAC addr.MacAddr,
	senderIP addr.IpV4Addr,
	requesterMAC addr.MacAddr,
	requesterIP addr.IpV4Addr,
) codec.EthernetFrame[ArpPayload] {
	return codec.EthernetFrame[ArpPayload]{
		Header: codec.EthernetHeader{
			DstMac:    requesterMAC,
			SrcMac:    senderMAC,
			EtherType: addr.EtherTypeARP,
		},
		Data: NewARPReply(senderMAC, senderIP, requesterMAC, requesterIP),
	}
}
