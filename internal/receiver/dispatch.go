package receiver

import (
	"fmt"
	"strings"

	"nmea0183/internal/nmea"
)

// Outcome classifies what happened to a frame
type Outcome int

const (
	// Decoded means the frame was valid and decoded into a sentence
	Decoded Outcome = iota
	// Dropped means the frame was structurally malformed
	Dropped
	// ChecksumFailed means the stated checksum did not match the payload
	ChecksumFailed
	// Ignored means the frame was valid but its type is unsupported or a
	// field could not be decoded
	Ignored
)

func (o Outcome) String() string {
	switch o {
	case Decoded:
		return "Decoded"
	case Dropped:
		return "Dropped"
	case ChecksumFailed:
		return "ChecksumFailed"
	case Ignored:
		return "Ignored"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Drop reasons
const (
	ReasonTooShort         = "Insufficient number of bytes"
	ReasonNoStart          = "Invalid start of message"
	ReasonNoCR             = "Invalid end of message delimiter (no CR)"
	ReasonNoLF             = "Invalid end of message delimiter (no LF)"
	ReasonNoChecksumMarker = "Invalid checksum delimiter"
	ReasonChecksumDigits   = "Invalid checksum digits"

	reasonSeparator = "; "
)

// Result is the outcome of dispatching one frame
type Result struct {
	Outcome  Outcome
	Sentence nmea.Sentence // set when Outcome is Decoded
	Raw      []byte        // copy of the frame
	Reason   string        // set when Outcome is Dropped

	// Expected is the checksum computed over the payload, Actual the one
	// stated in the frame. Both are set once the checksum has been read.
	Expected uint8
	Actual   uint8

	// Err is the decode error when Outcome is Ignored
	Err error
}

// Dispatch validates a raw frame, '$' through LF, and decodes it. The frame
// is not retained; Result.Raw is a copy.
func Dispatch(frame []byte) Result {
	res := Result{Raw: append([]byte(nil), frame...)}

	n := len(frame)
	crOffset := n - 2
	lfOffset := n - 1
	checksumOffset := n - 5
	payloadLen := checksumOffset - 1

	// The structural checks are independent and every failing one is reported
	var reasons []string
	if n <= 4 {
		reasons = append(reasons, ReasonTooShort)
	}
	if n < 1 || frame[0] != nmea.StartDelimiter {
		reasons = append(reasons, ReasonNoStart)
	}
	if crOffset < 0 || frame[crOffset] != nmea.CR {
		reasons = append(reasons, ReasonNoCR)
	}
	if lfOffset < 0 || frame[lfOffset] != nmea.LF {
		reasons = append(reasons, ReasonNoLF)
	}
	if checksumOffset < 1 || frame[checksumOffset] != nmea.ChecksumDelimiter {
		reasons = append(reasons, ReasonNoChecksumMarker)
	}
	if len(reasons) > 0 {
		res.Outcome = Dropped
		res.Reason = strings.Join(reasons, reasonSeparator)
		return res
	}

	actual, err := nmea.ParseChecksum(string(frame[checksumOffset+1 : crOffset]))
	if err != nil {
		res.Outcome = Dropped
		res.Reason = ReasonChecksumDigits
		res.Err = err
		return res
	}
	res.Actual = actual
	res.Expected = nmea.Checksum(frame, 1, payloadLen)
	if res.Expected != res.Actual {
		res.Outcome = ChecksumFailed
		return res
	}

	sentence, err := nmea.DecodePayload(string(frame[1 : 1+payloadLen]))
	if err != nil {
		res.Outcome = Ignored
		res.Err = err
		return res
	}
	res.Outcome = Decoded
	res.Sentence = sentence
	return res
}
