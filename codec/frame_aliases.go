package codec

// NewIPv4UDPDatagram and NewEthernetUDPDatagram build the two concrete
// nested shapes spec.md §3 names directly: Frame<IpV4, Frame<Udp,
// ByteArray<N>>> and Frame<Eth, Frame<IpV4, Frame<Udp, ByteArray<N>>>>.
// spec.md §9's design notes call for pre-generating the concrete
// shapes actually used when the host language lacks const-generic
// array lengths (Go does); these constructors are that pre-generation,
// expressed as thin wrappers around the generic Frame types so the
// nesting itself stays fully generic over the innermost body B.

// NewIPv4UDPDatagram wraps a UDP frame in an IPv4 frame, setting
// TotalLength correctly. Checksums are left at 0 for the caller to
// compute with CalcUDPChecksum then CalcIPChecksum.
func NewIPv4UDPDatagram[B Body[B]](ipHeader IPv4Header, udp UDPFrame[B]) IPv4Frame[UDPFrame[B]] {
	return NewIPv4Frame(ipHeader, udp)
}

// NewEthernetUDPDatagram wraps an IPv4-over-UDP datagram in an
// Ethernet frame (see spec.md §6 and the EthernetFrame doc comment
// for how the trailing FCS slot is handled outside this codec).
func NewEthernetUDPDatagram[B Body[B]](ethHeader EthernetHeader, datagram IPv4Frame[UDPFrame[B]]) EthernetFrame[IPv4Frame[UDPFrame[B]]] {
	return EthernetFrame[IPv4Frame[UDPFrame[B]]]{Header: ethHeader, Data: datagram}
}
