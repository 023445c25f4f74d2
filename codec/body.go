// Package codec implements the compile-time-sized frame algebra of
// spec.md §4.B, §4.D and §4.E: a fixed-size payload container, the
// Ethernet/IPv4/UDP header records, and the generic Frame<Header,Body>
// composition that nests them. Every type here is a plain value and no
// operation can trap arithmetically, per spec.md §7 and §9. WriteTo,
// ReadBytes, the header codecs and CalcIPChecksum do not allocate;
// EthernetFrame.ToBEBytes, CalcUDPChecksum and AppendFCS each allocate
// one byte slice.
//
// Go has no const-generic array-length parameters, so the nested
// "Frame<H, Frame<H2, B>>" algebra from the source specification is
// approximated with Go's ordinary (type-only) generics plus a small,
// fixed catalog of payload sizes (see payload.go) — the same
// workaround spec.md §9's design notes call out for "a host language
// [that] lacks" generic const expressions: pre-generate the concrete
// shapes actually needed.
package codec

// Body is the constraint every frame payload must satisfy: a type
// whose wire length is fixed by the type itself (never by instance
// data), so a frame nesting it can compute its own total length
// without having decoded anything yet. The self-referential type
// parameter (F-bounded polymorphism) lets ReadBytes return a concrete
// B instead of an interface value, so EthernetFrame[B]/IPv4Frame[B]/
// UDPFrame[B] can nest arbitrarily deep while staying comparable with
// ==.
type Body[B any] interface {
	// ByteLen is the fixed wire length of this type, valid even on the
	// zero value.
	ByteLen() int
	// WriteTo serializes into buf[:ByteLen()] in network byte order.
	// buf must have length >= ByteLen().
	WriteTo(buf []byte) error
	// ReadBytes parses exactly ByteLen() bytes from the head of buf; a
	// shorter buf is ErrBufferTooShort. Payload, ARP and DHCP bodies
	// ignore any bytes past ByteLen(), while EthernetFrame, IPv4Frame and
	// UDPFrame reject a longer buf with ErrBufferTooLong.
	ReadBytes(buf []byte) (B, error)
}
