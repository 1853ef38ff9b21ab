package receiver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"nmea0183/internal/nmea"
	"nmea0183/internal/stream"
)

// Stats counts frames by outcome and decoded sentences by kind
type Stats struct {
	Frames         uint64
	Decoded        uint64
	Dropped        uint64
	ChecksumFailed uint64
	Ignored        uint64
	Overflows      uint64
	ByKind         map[nmea.Kind]uint64
}

// Option configures a Receiver
type Option func(*Receiver)

// WithCapacity sets the framer buffer capacity
func WithCapacity(capacity int) Option {
	return func(r *Receiver) { r.capacity = capacity }
}

// WithLogger sets the logger used for per-frame debug output
func WithLogger(logger *logrus.Logger) Option {
	return func(r *Receiver) { r.logger = logger }
}

// Receiver turns a byte stream into Handler callbacks. Bytes are framed,
// validated, decoded and delivered synchronously on the caller's goroutine.
// It is not safe for concurrent use; use one Receiver per stream.
type Receiver struct {
	handler  Handler
	logger   *logrus.Logger
	capacity int
	framer   *stream.Framer
	stats    Stats
}

// New creates a Receiver delivering to handler. A nil handler discards everything.
func New(handler Handler, opts ...Option) *Receiver {
	if handler == nil {
		handler = NopHandler{}
	}
	r := &Receiver{
		handler:  handler,
		capacity: stream.DefaultCapacity,
		stats:    Stats{ByKind: make(map[nmea.Kind]uint64)},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logrus.New()
		r.logger.SetLevel(logrus.PanicLevel)
	}
	r.framer = stream.NewFramer(r.capacity, r.handleFrame, r.logger)
	return r
}

// Receive processes an arbitrary chunk of the stream
func (r *Receiver) Receive(p []byte) {
	_, _ = r.framer.Write(p)
}

// ReceiveByte processes a single byte
func (r *Receiver) ReceiveByte(b byte) {
	r.framer.Append(b)
}

// Write implements io.Writer so a Receiver can be the target of io.Copy
func (r *Receiver) Write(p []byte) (int, error) {
	return r.framer.Write(p)
}

// Reset discards any partial frame. Counters are kept.
func (r *Receiver) Reset() {
	r.framer.Reset()
}

// Stats returns a snapshot of the counters
func (r *Receiver) Stats() Stats {
	s := r.stats
	s.Overflows = r.framer.Overflows()
	s.ByKind = make(map[nmea.Kind]uint64, len(r.stats.ByKind))
	for k, v := range r.stats.ByKind {
		s.ByKind[k] = v
	}
	return s
}

func (r *Receiver) handleFrame(frame []byte) {
	res := Dispatch(frame)
	r.stats.Frames++

	switch res.Outcome {
	case Decoded:
		r.stats.Decoded++
		r.stats.ByKind[res.Sentence.Kind()]++
		r.logger.WithFields(logrus.Fields{
			"id":     res.Sentence.ID(),
			"length": len(frame),
		}).Debug("Decoded sentence")
	case Dropped:
		r.stats.Dropped++
		r.logger.WithFields(logrus.Fields{
			"reason": res.Reason,
			"frame":  fmt.Sprintf("%q", frame),
		}).Debug("Dropped malformed frame")
	case ChecksumFailed:
		r.stats.ChecksumFailed++
		r.logger.WithFields(logrus.Fields{
			"expected": nmea.FormatChecksum(res.Expected),
			"actual":   nmea.FormatChecksum(res.Actual),
			"frame":    fmt.Sprintf("%q", frame),
		}).Debug("Checksum mismatch")
	case Ignored:
		r.stats.Ignored++
		r.logger.WithError(res.Err).WithField("frame", fmt.Sprintf("%q", frame)).Debug("Ignored sentence")
	}

	deliver(r.handler, res)
}
