// Package driver names the external collaborator seam spec.md leaves
// unspecified: the MAC/DMA driver the codec hands its serialized
// frames to. The core codec never imports this package; nothing here
// runs on the bare-metal target. It exists so the diagnostic CLI has
// somewhere concrete to send the byte arrays the codec produces,
// grounded on the teacher's physical.FullDuplexUnreliablePort and
// link.EthernetCard seams, which play the same role for the
// simulator's own upper layers.
package driver

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// FrameSink accepts a fully serialized, checksum-populated frame and
// hands it to whatever medium is on the other side. Implementations
// own their own buffers; SendFrame must not retain frame past return.
type FrameSink interface {
	SendFrame(frame []byte) error
}

// LoggingFrameSink logs every frame it is given instead of sending it
// anywhere, for use by cmd/frametool when no real driver or socket is
// configured. Modeled on the teacher's practice of decorating a
// stateful collaborator with a logrus.FieldLogger field rather than
// calling the package-level logger directly.
type LoggingFrameSink struct {
	log   logrus.FieldLogger
	count int
}

// NewLoggingFrameSink builds a LoggingFrameSink writing through log.
// If log is nil, logrus.StandardLogger() is used.
func NewLoggingFrameSink(log logrus.FieldLogger) *LoggingFrameSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggingFrameSink{log: log}
}

// SendFrame logs the frame's length and a truncated hex preview, then
// returns nil. It never fails.
func (s *LoggingFrameSink) SendFrame(frame []byte) error {
	s.count++
	preview := frame
	truncated := false
	if len(preview) > 32 {
		preview = preview[:32]
		truncated = true
	}
	s.log.
		WithField("frame_bytes", len(frame)).
		WithField("frame_seq", s.count).
		WithField("frame_preview", fmt.Sprintf("%x", preview)).
		WithField("truncated", truncated).
		Info("frame sent")
	return nil
}

// FramesSent reports how many frames have been handed to SendFrame.
func (s *LoggingFrameSink) FramesSent() int {
	return s.count
}
