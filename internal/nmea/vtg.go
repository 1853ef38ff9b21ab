package nmea

// VTG is the track made good and ground speed sentence
type VTG struct {
	Header
	TrueTrack     float64 // degrees true
	MagneticTrack float64 // degrees magnetic
	SpeedKnots    float64
	SpeedKPH      float64
	Mode          *string // optional FAA mode indicator, kept verbatim
}

// NewVTG returns an empty VTG with the default talker
func NewVTG() *VTG {
	return &VTG{Header: header(KindVTG)}
}

func (*VTG) Kind() Kind  { return KindVTG }
func (*VTG) isSentence() {}

// Payload encodes the fields in wire order, each value followed by its unit letter
func (s *VTG) Payload() string {
	fields := []string{
		s.DataType,
		shortest(s.TrueTrack), "T",
		shortest(s.MagneticTrack), "M",
		shortest(s.SpeedKnots), "N",
		shortest(s.SpeedKPH), "K",
	}
	if s.Mode != nil {
		fields = append(fields, *s.Mode)
	}
	return join(fields...)
}

func decodeVTG(tokens []string) (Sentence, error) {
	p := newParser(KindVTG, tokens, 8)
	s := &VTG{Header: Header{DataType: identifier(p.String(0, "identifier"))}}
	s.TrueTrack = p.Float(1, "true track")
	s.MagneticTrack = p.Float(3, "magnetic track")
	s.SpeedKnots = p.Float(5, "speed knots")
	s.SpeedKPH = p.Float(7, "speed kph")
	s.Mode = p.OptionalString(9)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
