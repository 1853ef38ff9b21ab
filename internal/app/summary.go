package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"nmea0183/internal/geo"
	"nmea0183/internal/nmea"
)

// Describe renders a decoded sentence as a single human readable line
func Describe(s nmea.Sentence) string {
	switch v := s.(type) {
	case *nmea.GGA:
		return fmt.Sprintf("%s %s %s %s fix=%s sats=%d hdop=%s alt=%.1fm",
			v.ID(), clock(v.Time), position(v.Latitude), position(v.Longitude),
			v.FixQuality, v.Satellites, trim(v.HDOP), v.Altitude)
	case *nmea.GSA:
		return fmt.Sprintf("%s mode=%s fix=%s prn=[%s] pdop=%s hdop=%s vdop=%s",
			v.ID(), v.Selection, v.Fix, strings.Join(usedPRNs(v.PRN[:]), " "),
			trim(v.PDOP), trim(v.HDOP), trim(v.VDOP))
	case *nmea.GST:
		return fmt.Sprintf("%s %s rms=%s lat=%s lon=%s alt=%s",
			v.ID(), clock(v.Time), optional(v.RMS), optional(v.StdDevLatitude),
			optional(v.StdDevLongitude), optional(v.StdDevAltitude))
	case *nmea.GSV:
		sats := make([]string, 0, len(v.Satellites))
		for _, sat := range v.Satellites {
			sats = append(sats, satellite(sat))
		}
		return fmt.Sprintf("%s %d/%d in-view=%d %s",
			v.ID(), v.SentenceIndex, v.NumSentences, v.SatellitesInView, strings.Join(sats, " "))
	case *nmea.HDT:
		return fmt.Sprintf("%s heading=%s°T", v.ID(), trim(v.HeadingTrue))
	case *nmea.RMC:
		return fmt.Sprintf("%s %s %s %s %s speed=%skn track=%s°",
			v.ID(), v.Time.Format(time.RFC3339Nano), v.Status,
			position(v.Latitude), position(v.Longitude), trim(v.Speed), trim(v.Track))
	case *nmea.VTG:
		return fmt.Sprintf("%s track=%s°T speed=%skn/%skm/h",
			v.ID(), trim(v.TrueTrack), trim(v.SpeedKnots), trim(v.SpeedKPH))
	}
	return s.ID()
}

func clock(d time.Duration) string {
	return time.Time{}.Add(d).Format("15:04:05.000")
}

// position renders an angle as d° m' s.ssss" H
func position(a interface {
	Format(geo.Format, geo.Options) string
}) string {
	return a.Format(geo.DMS, geo.ShowUnits)
}

// trim rounds to four decimals and drops trailing zeros
func trim(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return trim(*v)
}

func usedPRNs(slots []string) []string {
	var used []string
	for _, prn := range slots {
		if prn != "" {
			used = append(used, prn)
		}
	}
	return used
}

func satellite(s nmea.Satellite) string {
	part := func(v *int) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprint(*v)
	}
	return fmt.Sprintf("%s(el=%s az=%s snr=%s)", s.PRN, part(s.Elevation), part(s.Azimuth), part(s.SNR))
}
