package nmea

import (
	"strconv"
	"time"

	"nmea0183/internal/geo"
)

// GGA is the GPS fix data sentence
type GGA struct {
	Header
	Time        time.Duration // UTC time of day of the fix
	Latitude    geo.Latitude
	Longitude   geo.Longitude
	FixQuality  FixQuality
	Satellites  int
	HDOP        float64
	Altitude    float64 // meters above mean sea level
	GeoidHeight float64 // meters, geoid above WGS84 ellipsoid
	DGPSAge     string
	DGPSStation string
}

// NewGGA returns an empty GGA with the default talker
func NewGGA() *GGA {
	return &GGA{Header: header(KindGGA), HDOP: 99}
}

func (*GGA) Kind() Kind  { return KindGGA }
func (*GGA) isSentence() {}

// Payload encodes the fields in wire order
func (s *GGA) Payload() string {
	return join(
		s.DataType,
		FormatTimeOfDay(s.Time, 3),
		s.Latitude.Format(geo.DMM, geo.Compact),
		s.Longitude.Format(geo.DMM, geo.Compact),
		strconv.Itoa(int(s.FixQuality)),
		strconv.Itoa(s.Satellites),
		decimal(s.HDOP, 1, 2),
		fixed(s.Altitude, 1), "M",
		fixed(s.GeoidHeight, 1), "M",
		s.DGPSAge,
		s.DGPSStation,
	)
}

func decodeGGA(tokens []string) (Sentence, error) {
	p := newParser(KindGGA, tokens, 12)
	s := &GGA{Header: Header{DataType: identifier(p.String(0, "identifier"))}}
	s.Time, _ = p.TimeOfDay(1, "time")
	s.Latitude = p.Latitude(2, "latitude")
	s.Longitude = p.Longitude(4, "longitude")
	s.FixQuality = FixQuality(p.Enum(6, "fix quality", parseFixQuality))
	s.Satellites = p.Int(7, "satellites")
	s.HDOP = p.Float(8, "hdop")
	s.Altitude = p.Float(9, "altitude")
	s.GeoidHeight = p.Float(11, "geoid height")
	if v := p.OptionalString(13); v != nil {
		s.DGPSAge = *v
	}
	if v := p.OptionalString(14); v != nil {
		s.DGPSStation = *v
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
