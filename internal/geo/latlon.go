package geo

import (
	"fmt"
	"math"
)

// Latitude is a signed angle in decimal degrees within [-90, 90].
// The zero value is the equator. Values can only be set through the checked
// constructors and setters.
type Latitude struct {
	degrees float64
}

// NewLatitude returns a latitude or an ErrOutOfRange error
func NewLatitude(degrees float64) (Latitude, error) {
	if err := latitudeAxis.check(degrees); err != nil {
		return Latitude{}, err
	}
	return Latitude{degrees: degrees}, nil
}

// LatitudeFromRadians returns a latitude from an angle within [-π/2, π/2]
func LatitudeFromRadians(radians float64) (Latitude, error) {
	var l Latitude
	if err := l.SetRadians(radians); err != nil {
		return Latitude{}, err
	}
	return l, nil
}

// MustLatitude is like NewLatitude but panics on an out of range value
func MustLatitude(degrees float64) Latitude {
	l, err := NewLatitude(degrees)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLatitude parses a textual latitude and checks its range
func ParseLatitude(s string, f Format, o Options) (Latitude, error) {
	degrees, err := ParseDegrees(s, f, o)
	if err != nil {
		return Latitude{}, err
	}
	return NewLatitude(degrees)
}

// Degrees returns the angle in decimal degrees
func (l Latitude) Degrees() float64 { return l.degrees }

// Radians returns the angle in radians
func (l Latitude) Radians() float64 { return l.degrees * math.Pi / 180 }

// SetDegrees assigns a new value, leaving the latitude unchanged on error
func (l *Latitude) SetDegrees(degrees float64) error {
	if err := latitudeAxis.check(degrees); err != nil {
		return err
	}
	l.degrees = degrees
	return nil
}

// SetRadians assigns a new value in radians, leaving the latitude unchanged on error
func (l *Latitude) SetRadians(radians float64) error {
	if err := latitudeAxis.checkRadians(radians); err != nil {
		return err
	}
	l.degrees = fromRadians(radians, latitudeAxis.limit)
	return nil
}

// DMM returns the degrees/minutes decomposition
func (l Latitude) DMM() DMMComponents { return NewDMM(l.degrees) }

// DMS returns the degrees/minutes/seconds decomposition
func (l Latitude) DMS() DMSComponents { return NewDMS(l.degrees) }

// Format renders the latitude, e.g. "6113.0833,N" for DMM/Compact
func (l Latitude) Format(f Format, o Options) string {
	return latitudeAxis.format(l.degrees, f, o)
}

func (l Latitude) String() string {
	return l.Format(DMM, ShowUnits)
}

// Longitude is a signed angle in decimal degrees within [-180, 180]
type Longitude struct {
	degrees float64
}

// NewLongitude returns a longitude or an ErrOutOfRange error
func NewLongitude(degrees float64) (Longitude, error) {
	if err := longitudeAxis.check(degrees); err != nil {
		return Longitude{}, err
	}
	return Longitude{degrees: degrees}, nil
}

// LongitudeFromRadians returns a longitude from an angle within [-π, π]
func LongitudeFromRadians(radians float64) (Longitude, error) {
	var l Longitude
	if err := l.SetRadians(radians); err != nil {
		return Longitude{}, err
	}
	return l, nil
}

// MustLongitude is like NewLongitude but panics on an out of range value
func MustLongitude(degrees float64) Longitude {
	l, err := NewLongitude(degrees)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLongitude parses a textual longitude and checks its range
func ParseLongitude(s string, f Format, o Options) (Longitude, error) {
	degrees, err := ParseDegrees(s, f, o)
	if err != nil {
		return Longitude{}, err
	}
	return NewLongitude(degrees)
}

// Degrees returns the angle in decimal degrees
func (l Longitude) Degrees() float64 { return l.degrees }

// Radians returns the angle in radians
func (l Longitude) Radians() float64 { return l.degrees * math.Pi / 180 }

// SetDegrees assigns a new value, leaving the longitude unchanged on error
func (l *Longitude) SetDegrees(degrees float64) error {
	if err := longitudeAxis.check(degrees); err != nil {
		return err
	}
	l.degrees = degrees
	return nil
}

// SetRadians assigns a new value in radians, leaving the longitude unchanged on error
func (l *Longitude) SetRadians(radians float64) error {
	if err := longitudeAxis.checkRadians(radians); err != nil {
		return err
	}
	l.degrees = fromRadians(radians, longitudeAxis.limit)
	return nil
}

// DMM returns the degrees/minutes decomposition
func (l Longitude) DMM() DMMComponents { return NewDMM(l.degrees) }

// DMS returns the degrees/minutes/seconds decomposition
func (l Longitude) DMS() DMSComponents { return NewDMS(l.degrees) }

// Format renders the longitude, e.g. "14954.0167,W" for DMM/Compact
func (l Longitude) Format(f Format, o Options) string {
	return longitudeAxis.format(l.degrees, f, o)
}

func (l Longitude) String() string {
	return l.Format(DMM, ShowUnits)
}

// fromRadians converts a range-checked radian value; the conversion itself
// can land one ulp past the limit.
func fromRadians(radians, limit float64) float64 {
	degrees := radians * 180 / math.Pi
	return math.Max(-limit, math.Min(limit, degrees))
}

var (
	_ fmt.Stringer = Latitude{}
	_ fmt.Stringer = Longitude{}
)
