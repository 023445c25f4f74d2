package codec

import "errors"

// Decode errors. Decoding never partially mutates an output: on any of
// these, the caller's zero value is returned alongside the error.
var (
	// ErrBufferTooShort is returned when the input is shorter than the
	// declared compile-time length of the target shape.
	ErrBufferTooShort = errors.New("codec: buffer too short")
	// ErrBufferTooLong is returned when the input is longer than
	// expected for a fixed shape where trailing bytes are disallowed.
	ErrBufferTooLong = errors.New("codec: buffer too long")
	// ErrUnsupportedIHL is returned when an IPv4 header's IHL is not 5
	// (i.e. it carries options, which this stack does not parse).
	ErrUnsupportedIHL = errors.New("codec: unsupported IPv4 IHL")
	// ErrChecksumMismatch is returned only when the caller explicitly
	// requests checksum verification; plain decoding never checks it.
	ErrChecksumMismatch = errors.New("codec: checksum mismatch")
	// ErrLengthFieldInconsistent is returned when an IPv4 total_length
	// or UDP length field disagrees with the compile-time shape being
	// parsed.
	ErrLengthFieldInconsistent = errors.New("codec: length field inconsistent with frame shape")
)
