// Package dhcp builds and parses a DHCP INFORM message, per spec.md
// §4.H. INFORM is the only message kind this stack ever produces;
// DISCOVER/OFFER/REQUEST/ACK are an explicit non-goal. The fixed-length
// payload shape is grounded on original_source/src/dhcp.rs's
// DhcpFixedPayload: BOOTP fields, a 16-byte chaddr slot (6 MAC bytes
// plus 10 bytes padding), 64-byte sname, 128-byte file, the magic
// cookie, a single DHCP-message-type option, and a trailing end/pad
// word.
package dhcp

import (
	"encoding/binary"
	"fmt"

	"github.com/catnip-embedded/netstack/addr"
	"github.com/catnip-embedded/netstack/bitfields"
	"github.com/catnip-embedded/netstack/codec"
)

// Well-known UDP ports for DHCP per RFC 2131.
const (
	ServerPort uint16 = 67
	ClientPort uint16 = 68
)

// magicCookie identifies the fixed payload as DHCP, per RFC 2131 §3.
const magicCookie uint32 = 0x63825363

// endOption is written big-endian into the payload's last 4-byte word,
// so the options section ends with three pad bytes and then the end
// option (255). ReadBytes does not inspect this word.
const endOption uint32 = 0xFF

// DHCPOperation is the legacy BOOTP op code.
type DHCPOperation uint8

const (
	// DHCPOperationRequest marks anything originating from the client.
	DHCPOperationRequest DHCPOperation = 1
	// DHCPOperationReply marks anything originating from the server.
	DHCPOperationReply DHCPOperation = 2
)

func (o DHCPOperation) String() string {
	switch o {
	case DHCPOperationRequest:
		return "Request"
	case DHCPOperationReply:
		return "Reply"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(o))
	}
}

// DHCPMessageKind is the value of DHCP option 53, the message-type
// option. This stack only ever builds MessageKindInform; the rest of
// the catalog is named so a receiver can report what it decoded.
type DHCPMessageKind uint8

const (
	MessageKindDiscover         DHCPMessageKind = 1
	MessageKindOffer            DHCPMessageKind = 2
	MessageKindRequest          DHCPMessageKind = 3
	MessageKindDecline          DHCPMessageKind = 4
	MessageKindAck              DHCPMessageKind = 5
	MessageKindNak              DHCPMessageKind = 6
	MessageKindRelease          DHCPMessageKind = 7
	MessageKindInform           DHCPMessageKind = 8
	MessageKindForceRenew       DHCPMessageKind = 9
	MessageKindLeaseQuery       DHCPMessageKind = 10
	MessageKindLeaseUnassigned  DHCPMessageKind = 11
	MessageKindLeaseUnknown     DHCPMessageKind = 12
	MessageKindLeaseActive      DHCPMessageKind = 13
	MessageKindBulkLeaseQuery   DHCPMessageKind = 14
	MessageKindLeaseQueryDone   DHCPMessageKind = 15
	MessageKindActiveLeaseQuery DHCPMessageKind = 16
	MessageKindLeaseQueryStatus DHCPMessageKind = 17
	MessageKindTls              DHCPMessageKind = 18
)

func (k DHCPMessageKind) String() string {
	switch k {
	case MessageKindDiscover:
		return "Discover"
	case MessageKindOffer:
		return "Offer"
	case MessageKindRequest:
		return "Request"
	case MessageKindDecline:
		return "Decline"
	case MessageKindAck:
		return "Ack"
	case MessageKindNak:
		return "Nak"
	case MessageKindRelease:
		return "Release"
	case MessageKindInform:
		return "Inform"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// DHCPOptionKind is an option-type byte in the variable-length options
// section of a DHCP message. This stack only ever emits
// OptionKindDhcpMessageType, OptionKindPad and OptionKindEnd, but
// the fuller catalog lets a receiver name what it parsed.
type DHCPOptionKind uint8

const (
	OptionKindPad                   DHCPOptionKind = 0
	OptionKindSubnetMask            DHCPOptionKind = 1
	OptionKindRouter                DHCPOptionKind = 3
	OptionKindDomainNameServers     DHCPOptionKind = 6
	OptionKindHostName              DHCPOptionKind = 12
	OptionKindDomainName            DHCPOptionKind = 15
	OptionKindRequestedIpAddress    DHCPOptionKind = 50
	OptionKindIpAddressLeaseTime    DHCPOptionKind = 51
	OptionKindDhcpMessageType       DHCPOptionKind = 53
	OptionKindServerIdentifier      DHCPOptionKind = 54
	OptionKindParameterRequestList  DHCPOptionKind = 55
	OptionKindRenewalTime           DHCPOptionKind = 58
	OptionKindRebindingTime         DHCPOptionKind = 59
	OptionKindClientId              DHCPOptionKind = 61
	OptionKindEnd                   DHCPOptionKind = 255
)

func (k DHCPOptionKind) String() string {
	switch k {
	case OptionKindPad:
		return "Pad"
	case OptionKindDhcpMessageType:
		return "DhcpMessageType"
	case OptionKindParameterRequestList:
		return "ParameterRequestList"
	case OptionKindEnd:
		return "End"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// DHCPInformPayloadByteLen is the fixed wire length of
// DHCPInformPayload: the 240-byte BOOTP fixed section plus a 4-byte
// message-type option plus a 4-byte end/pad word.
const DHCPInformPayloadByteLen = 248

// DHCPInformPayload is the fixed-length DHCP INFORM message: BOOTP
// header fields, the magic cookie, the message-type option, and a
// trailing end-of-options word. No variable-length options beyond the
// message type are represented; spec.md §4.H names an "optional
// parameter-request list" that a compile-time-sized payload cannot
// accommodate without a second fixed shape, so this stack omits it.
// The message-type option (kind 53, length 1) is not a struct field:
// WriteTo/ReadBytes always place OptionKindDhcpMessageType and length
// 1 at their fixed offset, since this stack never emits another option
// kind there.
type DHCPInformPayload struct {
	Op          DHCPOperation
	HType       uint8 // 1 for Ethernet
	HLen        uint8 // 6 for standard MAC
	Hops        uint8 // always 0
	Xid         uint32
	Secs        uint16
	Flags       uint16 // bit 15 is the broadcast flag
	CIAddr      addr.IpV4Addr
	YIAddr      addr.IpV4Addr
	SIAddr      addr.IpV4Addr
	GIAddr      addr.IpV4Addr
	CHAddr      addr.MacAddr // client hardware address; remaining 10 bytes of the 16-byte field are zero padding
	Cookie      uint32
	MessageKind DHCPMessageKind
}

const broadcastFlag uint16 = 1 << 15

// ByteLen returns DHCPInformPayloadByteLen.
func (DHCPInformPayload) ByteLen() int { return DHCPInformPayloadByteLen }

// WriteTo serializes the payload field-by-field, big-endian, zero
// padding everywhere the fixed shape calls for it.
func (p DHCPInformPayload) WriteTo(buf []byte) error {
	if len(buf) < DHCPInformPayloadByteLen {
		return codec.ErrBufferTooShort
	}
	for i := range buf[:DHCPInformPayloadByteLen] {
		buf[i] = 0
	}
	buf[0] = uint8(p.Op)
	buf[1] = p.HType
	buf[2] = p.HLen
	buf[3] = p.Hops
	binary.BigEndian.PutUint32(buf[4:8], p.Xid)
	binary.BigEndian.PutUint16(buf[8:10], p.Secs)
	binary.BigEndian.PutUint16(buf[10:12], p.Flags)
	copy(buf[12:16], p.CIAddr[:])
	copy(buf[16:20], p.YIAddr[:])
	copy(buf[20:24], p.SIAddr[:])
	copy(buf[24:28], p.GIAddr[:])
	copy(buf[28:34], p.CHAddr[:]) // bytes 34:44 stay zero padding
	// bytes 44:236 (sname, file) stay zero
	binary.BigEndian.PutUint32(buf[236:240], magicCookie)
	buf[240] = uint8(OptionKindDhcpMessageType)
	buf[241] = 1
	buf[242] = uint8(p.MessageKind)
	buf[243] = 0
	binary.BigEndian.PutUint32(buf[244:248], endOption)
	return nil
}

// ReadBytes parses a DHCPInformPayload from the head of buf.
func (DHCPInformPayload) ReadBytes(buf []byte) (DHCPInformPayload, error) {
	if len(buf) < DHCPInformPayloadByteLen {
		return DHCPInformPayload{}, codec.ErrBufferTooShort
	}
	var p DHCPInformPayload
	p.Op = DHCPOperation(buf[0])
	p.HType = buf[1]
	p.HLen = buf[2]
	p.Hops = buf[3]
	p.Xid = binary.BigEndian.Uint32(buf[4:8])
	p.Secs = binary.BigEndian.Uint16(buf[8:10])
	p.Flags = binary.BigEndian.Uint16(buf[10:12])
	copy(p.CIAddr[:], buf[12:16])
	copy(p.YIAddr[:], buf[16:20])
	copy(p.SIAddr[:], buf[20:24])
	copy(p.GIAddr[:], buf[24:28])
	copy(p.CHAddr[:], buf[28:34])
	p.Cookie = binary.BigEndian.Uint32(buf[236:240])
	p.MessageKind = DHCPMessageKind(buf[242])
	return p, nil
}

// Broadcast reports whether the broadcast flag bit is set.
func (p DHCPInformPayload) Broadcast() bool {
	return p.Flags&broadcastFlag != 0
}

// InformParams are the fields spec.md §9's open questions say must be
// caller-supplied rather than guessed by this library: transaction ID,
// elapsed time, the broadcast flag, and the client's own address pair.
type InformParams struct {
	TransactionID  uint32
	SecondsElapsed uint16
	Broadcast      bool
	ClientIP       addr.IpV4Addr
	ClientMAC      addr.MacAddr
}

// BuildInform builds a DHCP INFORM payload: a BOOTREQUEST carrying
// option 53 = Inform, ciaddr set to the client's own (already
// configured) address, yiaddr/siaddr left at IpV4Any since no address
// is being assigned.
func BuildInform(params InformParams) DHCPInformPayload {
	var flags uint16
	if params.Broadcast {
		flags = broadcastFlag
	}
	return DHCPInformPayload{
		Op:          DHCPOperationRequest,
		HType:       1,
		HLen:        6,
		Hops:        0,
		Xid:         params.TransactionID,
		Secs:        params.SecondsElapsed,
		Flags:       flags,
		CIAddr:      params.ClientIP,
		YIAddr:      addr.IpV4Any,
		SIAddr:      addr.IpV4Any,
		GIAddr:      addr.IpV4Any,
		CHAddr:      params.ClientMAC,
		Cookie:      magicCookie,
		MessageKind: MessageKindInform,
	}
}

// NewInformDatagram builds the full Ethernet/IPv4/UDP frame for a DHCP
// INFORM broadcast: UDP src port 68, dst port 67; IPv4 TTL 10, dst
// broadcast; Ethernet dst broadcast. Checksums are left at 0 for the
// caller to compute, mirroring codec.NewIPv4UDPDatagram's contract.
func NewInformDatagram(
	params InformParams,
	srcMAC addr.MacAddr,
) codec.EthernetFrame[codec.IPv4Frame[codec.UDPFrame[DHCPInformPayload]]] {
	payload := BuildInform(params)

	udp := codec.NewUDPFrame(codec.UDPHeader{
		SrcPort: ClientPort,
		DstPort: ServerPort,
	}, payload)

	ipHeader := codec.IPv4Header{
		VersionAndHeaderLength: bitfields.StandardIPv4(),
		Fragmentation:          bitfields.NewFragmentation(),
		TimeToLive:             10,
		Protocol:               addr.IPProtocolUDP,
		SrcIP:                  params.ClientIP,
		DstIP:                  addr.IpV4Broadcast,
	}
	ipDatagram := codec.NewIPv4UDPDatagram(ipHeader, udp)

	ethHeader := codec.EthernetHeader{
		DstMac:    addr.MacBroadcast,
		SrcMac:    srcMAC,
		EtherType: addr.EtherTypeIPv4,
	}
	return codec.NewEthernetUDPDatagram(ethHeader, ipDatagram)
}
