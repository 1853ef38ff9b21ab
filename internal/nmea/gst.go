package nmea

import "time"

// GST is the pseudorange error statistics sentence. Every statistic is
// optional on the wire; a nil field round-trips as an empty one.
type GST struct {
	Header
	Time          time.Duration
	TimePrecision int // fractional second digits, 2 or 3

	RMS             *float64 // RMS of the pseudorange residuals
	StdDevMajor     *float64 // error ellipse semi-major axis, meters
	StdDevMinor     *float64 // error ellipse semi-minor axis, meters
	Orientation     *float64 // error ellipse orientation, degrees from true north
	StdDevLatitude  *float64
	StdDevLongitude *float64
	StdDevAltitude  *float64
}

// NewGST returns an empty GST with the default talker
func NewGST() *GST {
	return &GST{Header: header(KindGST), TimePrecision: 2}
}

func (*GST) Kind() Kind  { return KindGST }
func (*GST) isSentence() {}

// Payload encodes the fields in wire order
func (s *GST) Payload() string {
	precision := s.TimePrecision
	if precision != 2 {
		precision = 3
	}
	return join(
		s.DataType,
		FormatTimeOfDay(s.Time, precision),
		optionalFixed(s.RMS, 2),
		optionalFixed(s.StdDevMajor, 2),
		optionalFixed(s.StdDevMinor, 2),
		optionalFixed(s.Orientation, 4),
		optionalFixed(s.StdDevLatitude, 2),
		optionalFixed(s.StdDevLongitude, 2),
		optionalFixed(s.StdDevAltitude, 2),
	)
}

func decodeGST(tokens []string) (Sentence, error) {
	p := newParser(KindGST, tokens, 2)
	s := &GST{Header: Header{DataType: identifier(p.String(0, "identifier"))}}
	var digits int
	s.Time, digits = p.TimeOfDay(1, "time")
	s.TimePrecision = 3
	if digits == 2 {
		s.TimePrecision = 2
	}
	s.RMS = p.OptionalFloat(2, "rms")
	s.StdDevMajor = p.OptionalFloat(3, "std dev major")
	s.StdDevMinor = p.OptionalFloat(4, "std dev minor")
	s.Orientation = p.OptionalFloat(5, "orientation")
	s.StdDevLatitude = p.OptionalFloat(6, "std dev latitude")
	s.StdDevLongitude = p.OptionalFloat(7, "std dev longitude")
	s.StdDevAltitude = p.OptionalFloat(8, "std dev altitude")
	if err := p.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
