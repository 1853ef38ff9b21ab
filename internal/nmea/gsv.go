package nmea

import (
	"fmt"
	"strconv"
)

// MaxSatellitesPerGSV is the number of satellite blocks one GSV sentence can carry
const MaxSatellitesPerGSV = 4

const gsvBlockSize = 4

// Satellite is one GSV block. Nil values are empty on the wire.
type Satellite struct {
	PRN       string
	Elevation *int // degrees
	Azimuth   *int // degrees true
	SNR       *int // dB-Hz
}

// GSV is the satellites in view sentence
type GSV struct {
	Header
	NumSentences     int
	SentenceIndex    int
	SatellitesInView int
	Satellites       []Satellite
}

// NewGSV returns an empty GSV with the default talker
func NewGSV() *GSV {
	return &GSV{Header: header(KindGSV)}
}

func (*GSV) Kind() Kind  { return KindGSV }
func (*GSV) isSentence() {}

// Payload encodes the fields in wire order. At most MaxSatellitesPerGSV blocks are written.
func (s *GSV) Payload() string {
	fields := []string{
		s.DataType,
		strconv.Itoa(s.NumSentences),
		strconv.Itoa(s.SentenceIndex),
		fmt.Sprintf("%02d", s.SatellitesInView),
	}
	for i, sat := range s.Satellites {
		if i == MaxSatellitesPerGSV {
			break
		}
		fields = append(fields,
			sat.PRN,
			optionalInt(sat.Elevation, 2),
			optionalInt(sat.Azimuth, 3),
			optionalInt(sat.SNR, 0),
		)
	}
	return join(fields...)
}

func decodeGSV(tokens []string) (Sentence, error) {
	p := newParser(KindGSV, tokens, 4)
	s := &GSV{Header: Header{DataType: identifier(p.String(0, "identifier"))}}
	s.NumSentences = p.Int(1, "number of sentences")
	s.SentenceIndex = p.Int(2, "sentence index")
	s.SatellitesInView = p.Int(3, "satellites in view")

	// A block is read only when all four of its fields are present; anything
	// shorter at the end is a trailing field such as the NMEA 4.1 signal id.
	for i := 0; i < MaxSatellitesPerGSV; i++ {
		offset := 4 + i*gsvBlockSize
		if offset+gsvBlockSize > len(tokens) {
			break
		}
		s.Satellites = append(s.Satellites, Satellite{
			PRN:       p.String(offset, "prn"),
			Elevation: p.OptionalInt(offset+1, "elevation"),
			Azimuth:   p.OptionalInt(offset+2, "azimuth"),
			SNR:       p.OptionalInt(offset+3, "snr"),
		})
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
