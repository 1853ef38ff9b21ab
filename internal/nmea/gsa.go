package nmea

import "strconv"

// PRNSlots is the fixed number of satellite slots in a GSA sentence
const PRNSlots = 12

// GSA is the DOP and active satellites sentence
type GSA struct {
	Header
	Selection FixSelection
	Fix       FixType
	PRN       [PRNSlots]string // satellites used in the fix, unused slots empty
	PDOP      float64
	HDOP      float64
	VDOP      float64
}

// NewGSA returns an empty GSA with the default talker
func NewGSA() *GSA {
	return &GSA{Header: header(KindGSA), Fix: FixNone, PDOP: 99, HDOP: 99, VDOP: 99}
}

func (*GSA) Kind() Kind  { return KindGSA }
func (*GSA) isSentence() {}

// Payload encodes the fields in wire order
func (s *GSA) Payload() string {
	fields := make([]string, 0, 3+PRNSlots+3)
	fields = append(fields, s.DataType, s.Selection.Code(), strconv.Itoa(int(s.Fix)))
	fields = append(fields, s.PRN[:]...)
	fields = append(fields, decimal(s.PDOP, 1, 2), decimal(s.HDOP, 1, 2), decimal(s.VDOP, 1, 2))
	return join(fields...)
}

func decodeGSA(tokens []string) (Sentence, error) {
	p := newParser(KindGSA, tokens, 3+PRNSlots+3)
	s := &GSA{Header: Header{DataType: identifier(p.String(0, "identifier"))}}
	s.Selection = FixSelection(p.Enum(1, "selection mode", parseFixSelection))
	s.Fix = FixType(p.Enum(2, "fix type", parseFixType))
	for i := range s.PRN {
		s.PRN[i] = p.String(3+i, "prn")
	}
	s.PDOP = p.Float(15, "pdop")
	s.HDOP = p.Float(16, "hdop")
	s.VDOP = p.Float(17, "vdop")
	if err := p.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
