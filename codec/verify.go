package codec

import (
	"github.com/hashicorp/go-multierror"
)

// VerifyDatagram checks both the IPv4 header checksum and the UDP
// checksum of a datagram, aggregating failures instead of stopping at
// the first: a corrupt datagram commonly has both fields wrong at
// once, and a caller diagnosing wire corruption wants to see both.
func VerifyDatagram[B Body[B]](ipv4Header IPv4Header, udp UDPFrame[B]) error {
	var result error
	if err := VerifyIPChecksum(ipv4Header); err != nil {
		result = multierror.Append(result, err)
	}
	if err := VerifyUDPChecksum(ipv4Header, udp); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}
