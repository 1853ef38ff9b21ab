package nmea

// HDT is the true heading sentence
type HDT struct {
	Header
	HeadingTrue float64 // degrees
}

// NewHDT returns an empty HDT with the default talker
func NewHDT() *HDT {
	return &HDT{Header: header(KindHDT)}
}

func (*HDT) Kind() Kind  { return KindHDT }
func (*HDT) isSentence() {}

// Payload encodes the fields in wire order. The heading keeps every
// significant digit so "75.5664" re-encodes unchanged.
func (s *HDT) Payload() string {
	return join(s.DataType, shortest(s.HeadingTrue), "T")
}

func decodeHDT(tokens []string) (Sentence, error) {
	p := newParser(KindHDT, tokens, 2)
	s := &HDT{Header: Header{DataType: identifier(p.String(0, "identifier"))}}
	s.HeadingTrue = p.Float(1, "heading")
	if err := p.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
