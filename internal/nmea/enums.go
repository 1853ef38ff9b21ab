package nmea

import (
	"fmt"
	"strconv"
)

// FixQuality is the GGA fix indicator; the wire value is the ordinal
type FixQuality int

const (
	FixInvalid FixQuality = iota
	FixGPS
	FixDGPS
	FixPPS
	FixRTK
	FixFloatRTK
	FixEstimated
	FixManual
	FixSimulation
)

var fixQualityNames = [...]string{
	"Invalid", "GPS", "DGPS", "PPS", "RTK", "FloatRTK", "Estimated", "Manual", "Simulation",
}

func (q FixQuality) String() string {
	if q < 0 || int(q) >= len(fixQualityNames) {
		return fmt.Sprintf("FixQuality(%d)", int(q))
	}
	return fixQualityNames[q]
}

func parseFixQuality(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("fix quality %q is not a number", s)
	}
	if v < 0 || v >= len(fixQualityNames) {
		return 0, fmt.Errorf("fix quality %d out of range", v)
	}
	return v, nil
}

// FixSelection is the GSA 2D/3D selection mode
type FixSelection int

const (
	SelectionAuto FixSelection = iota
	SelectionManual
)

func (m FixSelection) String() string {
	switch m {
	case SelectionAuto:
		return "Auto"
	case SelectionManual:
		return "Manual"
	}
	return fmt.Sprintf("FixSelection(%d)", int(m))
}

// Code returns the wire letter
func (m FixSelection) Code() string {
	if m == SelectionManual {
		return "M"
	}
	return "A"
}

func parseFixSelection(s string) (int, error) {
	switch s {
	case "A", "a":
		return int(SelectionAuto), nil
	case "M", "m":
		return int(SelectionManual), nil
	}
	return 0, fmt.Errorf("unknown selection mode %q", s)
}

// FixType is the GSA fix dimension; the wire value is 1, 2 or 3
type FixType int

const (
	FixNone FixType = 1
	Fix2D   FixType = 2
	Fix3D   FixType = 3
)

func (t FixType) String() string {
	switch t {
	case FixNone:
		return "NoFix"
	case Fix2D:
		return "2D"
	case Fix3D:
		return "3D"
	}
	return fmt.Sprintf("FixType(%d)", int(t))
}

func parseFixType(s string) (int, error) {
	switch s {
	case "1":
		return int(FixNone), nil
	case "2":
		return int(Fix2D), nil
	case "3":
		return int(Fix3D), nil
	}
	return 0, fmt.Errorf("unknown fix type %q", s)
}

// Status is the RMC data validity flag
type Status int

const (
	StatusVoid Status = iota
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusVoid:
		return "Void"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Code returns the wire letter
func (s Status) Code() string {
	if s == StatusActive {
		return "A"
	}
	return "V"
}

func parseStatus(s string) (int, error) {
	switch s {
	case "A", "a":
		return int(StatusActive), nil
	case "V", "v":
		return int(StatusVoid), nil
	}
	return 0, fmt.Errorf("unknown status %q", s)
}
