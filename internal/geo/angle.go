package geo

import (
	"errors"
	"fmt"
	"math"
)

// Format selects the textual decomposition of an angle
type Format int

const (
	// DDD is decimal degrees
	DDD Format = iota
	// DMM is whole degrees and decimal minutes
	DMM
	// DMS is whole degrees, whole minutes and decimal seconds
	DMS
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case DDD:
		return "DDD"
	case DMM:
		return "DMM"
	case DMS:
		return "DMS"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Options selects the textual profile of an angle
type Options int

const (
	// Compact is the NMEA wire profile: fixed-width numerics and a hemisphere letter
	Compact Options = iota
	// ShowUnits is the human readable profile with degree, minute and second symbols
	ShowUnits
)

// DegreeSymbol is the unit symbol used by the ShowUnits profile
const DegreeSymbol = "°"

var (
	// ErrOutOfRange is returned when a latitude or longitude is assigned a value
	// outside its valid range. Values are never clamped.
	ErrOutOfRange = errors.New("angle out of range")

	// ErrFormat is returned when a textual angle cannot be parsed, for example
	// because of a wrong token count or an unknown hemisphere letter.
	ErrFormat = errors.New("invalid angle format")
)

// RangeError describes a rejected assignment
type RangeError struct {
	Kind  string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %v not in [%v, %v]", e.Kind, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// FormatError describes a rejected textual angle
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid angle %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

func formatError(input, reason string, args ...interface{}) error {
	return &FormatError{Input: input, Reason: fmt.Sprintf(reason, args...)}
}

// DMMComponents is an angle split into whole degrees and decimal minutes.
// Degrees and Minutes are never negative; Sign carries the direction.
type DMMComponents struct {
	Sign    int
	Degrees int
	Minutes float64
}

// DMSComponents is an angle split into whole degrees, whole minutes and decimal seconds
type DMSComponents struct {
	Sign    int
	Degrees int
	Minutes int
	Seconds float64
}

// NewDMM decomposes decimal degrees into DMM components
func NewDMM(degrees float64) DMMComponents {
	sign := 1
	if degrees < 0 {
		sign = -1
		degrees = -degrees
	}
	whole := math.Floor(degrees)
	return DMMComponents{
		Sign:    sign,
		Degrees: int(whole),
		Minutes: (degrees - whole) * 60,
	}
}

// Decimal reconstructs decimal degrees
func (c DMMComponents) Decimal() float64 {
	return float64(signOf(c.Sign)) * (float64(c.Degrees) + c.Minutes/60)
}

// NewDMS decomposes decimal degrees into DMS components
func NewDMS(degrees float64) DMSComponents {
	dmm := NewDMM(degrees)
	whole := math.Floor(dmm.Minutes)
	return DMSComponents{
		Sign:    dmm.Sign,
		Degrees: dmm.Degrees,
		Minutes: int(whole),
		Seconds: (dmm.Minutes - whole) * 60,
	}
}

// Decimal reconstructs decimal degrees
func (c DMSComponents) Decimal() float64 {
	minutes := float64(c.Minutes) + c.Seconds/60
	return float64(signOf(c.Sign)) * (float64(c.Degrees) + minutes/60)
}

func signOf(sign int) int {
	if sign < 0 {
		return -1
	}
	return 1
}
