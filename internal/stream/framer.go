package stream

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultCapacity is the default frame buffer size. Real devices regularly
	// exceed the nominal 82 byte sentence limit, so this leaves ample room.
	DefaultCapacity = 1024

	startByte = '$'
	endByte   = '\n'
)

// State is the framer state
type State int

const (
	// Idle means no frame is in progress; bytes other than '$' are discarded
	Idle State = iota
	// Payload means a frame is being accumulated
	Payload
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Payload:
		return "Payload"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EmitFunc receives a complete frame, '$' through '\n' inclusive. The slice
// is only valid for the duration of the call.
type EmitFunc func(frame []byte)

// Framer reconstructs raw NMEA sentence frames from an arbitrarily chunked
// byte stream. It is not safe for concurrent use.
type Framer struct {
	logger    *logrus.Logger
	emit      EmitFunc
	buffer    []byte
	state     State
	overflows uint64
}

// NewFramer creates a framer with a fixed buffer capacity. A capacity below 1
// selects DefaultCapacity. A nil logger discards framer diagnostics.
func NewFramer(capacity int, emit EmitFunc, logger *logrus.Logger) *Framer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	if emit == nil {
		emit = func([]byte) {}
	}
	return &Framer{
		logger: logger,
		emit:   emit,
		buffer: make([]byte, 0, capacity),
		state:  Idle,
	}
}

// Append processes a single byte
func (f *Framer) Append(b byte) {
	if f.state == Payload && len(f.buffer) == cap(f.buffer) {
		f.overflows++
		f.logger.WithFields(logrus.Fields{
			"capacity":  cap(f.buffer),
			"overflows": f.overflows,
		}).Debug("Frame exceeds buffer capacity, discarding")
		f.Reset()
	}

	switch f.state {
	case Idle:
		if b == startByte {
			f.buffer = append(f.buffer, b)
			f.state = Payload
		}
	case Payload:
		switch b {
		case startByte:
			// Resynchronize on the new start marker
			if len(f.buffer) > 1 {
				f.logger.WithField("discarded", len(f.buffer)).Debug("Start marker inside frame, resynchronizing")
			}
			f.buffer = append(f.buffer[:0], b)
		case endByte:
			f.buffer = append(f.buffer, b)
			f.emit(f.buffer)
			f.Reset()
		default:
			f.buffer = append(f.buffer, b)
		}
	}
}

// Write processes p in order. It never fails and always consumes all of p.
func (f *Framer) Write(p []byte) (int, error) {
	for _, b := range p {
		f.Append(b)
	}
	return len(p), nil
}

// Reset discards any partial frame and returns to Idle
func (f *Framer) Reset() {
	f.buffer = f.buffer[:0]
	f.state = Idle
}

// State returns the current state
func (f *Framer) State() State { return f.state }

// Len returns the number of buffered bytes of the frame in progress
func (f *Framer) Len() int { return len(f.buffer) }

// Cap returns the buffer capacity
func (f *Framer) Cap() int { return cap(f.buffer) }

// Available returns how many more bytes fit before the buffer-full guard trips
func (f *Framer) Available() int { return cap(f.buffer) - len(f.buffer) }

// Overflows returns the number of frames discarded by the buffer-full guard
func (f *Framer) Overflows() uint64 { return f.overflows }
