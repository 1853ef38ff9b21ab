package nmea

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"nmea0183/internal/geo"
)

// RMC is the recommended minimum navigation sentence
type RMC struct {
	Header
	Time              time.Time // UTC date and time of the fix
	Status            Status
	Latitude          geo.Latitude
	Longitude         geo.Longitude
	Speed             float64  // knots over ground
	Track             float64  // degrees true
	MagneticVariation *float64 // signed, west negative, nil when absent
	Mode              *string  // optional trailing FAA mode, kept verbatim
}

// NewRMC returns an empty RMC with the default talker
func NewRMC() *RMC {
	return &RMC{Header: header(KindRMC), Status: StatusVoid}
}

func (*RMC) Kind() Kind  { return KindRMC }
func (*RMC) isSentence() {}

// Payload encodes the fields in wire order
func (s *RMC) Payload() string {
	utc := s.Time.UTC()
	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	variation, direction := "", ""
	if s.MagneticVariation != nil {
		variation = fixed(math.Abs(*s.MagneticVariation), 1)
		direction = "E"
		if *s.MagneticVariation < 0 {
			direction = "W"
		}
	}

	fields := []string{
		s.DataType,
		FormatTimeOfDay(utc.Sub(midnight), 3),
		s.Status.Code(),
		s.Latitude.Format(geo.DMM, geo.Compact),
		s.Longitude.Format(geo.DMM, geo.Compact),
		decimal(s.Speed, 1, 2),
		decimal(s.Track, 1, 2),
		utc.Format("020106"),
		variation,
		direction,
	}
	if s.Mode != nil {
		fields = append(fields, *s.Mode)
	}
	return join(fields...)
}

func decodeRMC(tokens []string) (Sentence, error) {
	p := newParser(KindRMC, tokens, 12)
	s := &RMC{Header: Header{DataType: identifier(p.String(0, "identifier"))}}
	tod, _ := p.TimeOfDay(1, "time")
	s.Status = Status(p.Enum(2, "status", parseStatus))
	s.Latitude = p.Latitude(3, "latitude")
	s.Longitude = p.Longitude(5, "longitude")
	s.Speed = p.Float(7, "speed")
	s.Track = p.Float(8, "track")
	date := p.String(9, "date")
	if p.Err() == nil {
		day, err := parseDate(date)
		if err != nil {
			p.fail(9, "date", date, err)
		}
		s.Time = day.Add(tod)
	}
	if v := p.OptionalFloat(10, "magnetic variation"); v != nil {
		if strings.EqualFold(strings.TrimSpace(p.String(11, "variation direction")), "W") {
			*v = -*v
		}
		s.MagneticVariation = v
	}
	s.Mode = p.OptionalString(12)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// parseDate reads ddmmyy. Two digit years below 80 are 20yy, the rest 19yy.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != 6 || !allDigits(s) {
		return time.Time{}, fmt.Errorf("date %q: want ddmmyy", s)
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[2:4])
	year, _ := strconv.Atoi(s[4:6])
	if year < 80 {
		year += 2000
	} else {
		year += 1900
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("date %q out of range", s)
	}
	return t, nil
}
