package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// axis carries what differs between latitudes and longitudes
type axis struct {
	name     string
	limit    float64
	positive byte
	negative byte
	width    int // zero-padded width of the degrees field in compact form
}

var (
	latitudeAxis  = axis{name: "latitude", limit: 90, positive: 'N', negative: 'S', width: 2}
	longitudeAxis = axis{name: "longitude", limit: 180, positive: 'E', negative: 'W', width: 3}
)

func (a axis) check(degrees float64) error {
	if math.IsNaN(degrees) || degrees < -a.limit || degrees > a.limit {
		return &RangeError{Kind: a.name, Value: degrees, Min: -a.limit, Max: a.limit}
	}
	return nil
}

func (a axis) checkRadians(radians float64) error {
	limit := a.limit * math.Pi / 180
	if math.IsNaN(radians) || radians < -limit || radians > limit {
		return &RangeError{Kind: a.name + " radians", Value: radians, Min: -limit, Max: limit}
	}
	return nil
}

func (a axis) letter(sign int) byte {
	if sign < 0 {
		return a.negative
	}
	return a.positive
}

// format renders degrees in the requested decomposition and profile
func (a axis) format(degrees float64, f Format, o Options) string {
	switch f {
	case DMM:
		if o == Compact {
			dmm := roundDMM(NewDMM(degrees), 4)
			return fmt.Sprintf("%0*d%07.4f,%c", a.width, dmm.Degrees, dmm.Minutes, a.letter(dmm.Sign))
		}
		dmm := roundDMM(NewDMM(degrees), 6)
		deg := strconv.Itoa(dmm.Degrees)
		if dmm.Sign < 0 {
			deg = "-" + deg
		}
		return fmt.Sprintf("%s%s %s'", deg, DegreeSymbol, trimFloat(dmm.Minutes))
	case DMS:
		dms := roundDMS(NewDMS(degrees), 4)
		if o == Compact {
			return fmt.Sprintf("%0*d%02d%07.4f,%c", a.width, dms.Degrees, dms.Minutes, dms.Seconds, a.letter(dms.Sign))
		}
		return fmt.Sprintf("%d%s %d' %s\" %c", dms.Degrees, DegreeSymbol, dms.Minutes, trimFloat(dms.Seconds), a.letter(dms.Sign))
	default:
		s := strconv.FormatFloat(degrees, 'f', 7, 64)
		if o == ShowUnits {
			s += DegreeSymbol
		}
		return s
	}
}

// roundDMM rounds the minutes to the given number of decimals and carries a
// 60 minute overflow into the degrees.
func roundDMM(c DMMComponents, decimals int) DMMComponents {
	scale := math.Pow(10, float64(decimals))
	c.Minutes = math.Round(c.Minutes*scale) / scale
	if c.Minutes >= 60 {
		c.Minutes -= 60
		c.Degrees++
	}
	return c
}

func roundDMS(c DMSComponents, decimals int) DMSComponents {
	scale := math.Pow(10, float64(decimals))
	c.Seconds = math.Round(c.Seconds*scale) / scale
	if c.Seconds >= 60 {
		c.Seconds -= 60
		c.Minutes++
	}
	if c.Minutes >= 60 {
		c.Minutes -= 60
		c.Degrees++
	}
	return c
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isDelimiter(r rune) bool {
	switch r {
	case ',', ' ', '\'', '"', '°':
		return true
	}
	return false
}

// splitKeepEmpty splits on every delimiter, keeping empty tokens
func splitKeepEmpty(s string) []string {
	var tokens []string
	start := 0
	for i, r := range s {
		if isDelimiter(r) {
			tokens = append(tokens, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(tokens, s[start:])
}

// hemisphereSign maps N/E to +1 and S/W to -1, case-insensitively
func hemisphereSign(input, token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, formatError(input, "missing hemisphere letter")
	}
	switch token[0] {
	case 'N', 'n', 'E', 'e':
		return 1, nil
	case 'S', 's', 'W', 'w':
		return -1, nil
	}
	return 0, formatError(input, "unknown hemisphere %q", token[:1])
}

func parseNumber(input, token string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, formatError(input, "bad number %q", token)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, formatError(input, "non-finite number %q", token)
	}
	return v, nil
}

func parseWhole(input, token string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, formatError(input, "bad whole number %q", token)
	}
	return v, nil
}

func checkSexagesimal(input string, minutes float64, what string) error {
	if minutes < 0 || minutes >= 60 {
		return formatError(input, "%s %v not in [0, 60)", what, minutes)
	}
	return nil
}

// ParseDegrees converts a textual angle to signed decimal degrees. It does not
// apply latitude or longitude range checks.
func ParseDegrees(s string, f Format, o Options) (float64, error) {
	switch f {
	case DMM:
		c, err := ParseDMM(s, o)
		if err != nil {
			return 0, err
		}
		return c.Decimal(), nil
	case DMS:
		c, err := ParseDMS(s, o)
		if err != nil {
			return 0, err
		}
		return c.Decimal(), nil
	case DDD:
		return parseNumber(s, strings.TrimSuffix(strings.TrimSpace(s), DegreeSymbol))
	}
	return 0, formatError(s, "unsupported format %v", f)
}

// ParseDMM parses the compact form ("ddmm.mmmm,N") or the ShowUnits form
// ("-61° 13.083336'") into DMM components.
func ParseDMM(s string, o Options) (DMMComponents, error) {
	if o == Compact {
		tokens := splitKeepEmpty(s)
		if len(tokens) != 2 {
			return DMMComponents{}, formatError(s, "want 2 tokens, got %d", len(tokens))
		}
		sign, err := hemisphereSign(s, tokens[1])
		if err != nil {
			return DMMComponents{}, err
		}
		number, err := parseNumber(s, tokens[0])
		if err != nil {
			return DMMComponents{}, err
		}
		if number < 0 {
			return DMMComponents{}, formatError(s, "negative value with hemisphere letter")
		}
		degrees := math.Floor(number / 100)
		minutes := number - degrees*100
		if err := checkSexagesimal(s, minutes, "minutes"); err != nil {
			return DMMComponents{}, err
		}
		return DMMComponents{Sign: sign, Degrees: int(degrees), Minutes: minutes}, nil
	}

	tokens := strings.FieldsFunc(s, isDelimiter)
	if len(tokens) != 2 {
		return DMMComponents{}, formatError(s, "want 2 tokens, got %d", len(tokens))
	}
	degrees, err := parseWhole(s, tokens[0])
	if err != nil {
		return DMMComponents{}, err
	}
	sign := 1
	if strings.HasPrefix(strings.TrimSpace(tokens[0]), "-") {
		sign = -1
		degrees = -degrees
	}
	minutes, err := parseNumber(s, tokens[1])
	if err != nil {
		return DMMComponents{}, err
	}
	if err := checkSexagesimal(s, minutes, "minutes"); err != nil {
		return DMMComponents{}, err
	}
	return DMMComponents{Sign: sign, Degrees: degrees, Minutes: minutes}, nil
}

// ParseDMS parses the compact form ("ddmmss.ssss,N") or the ShowUnits form
// ("61° 13' 5.0002\" N" or "-61° 13' 5.0002\"") into DMS components.
func ParseDMS(s string, o Options) (DMSComponents, error) {
	if o == Compact {
		tokens := splitKeepEmpty(s)
		if len(tokens) != 2 {
			return DMSComponents{}, formatError(s, "want 2 tokens, got %d", len(tokens))
		}
		sign, err := hemisphereSign(s, tokens[1])
		if err != nil {
			return DMSComponents{}, err
		}
		number, err := parseNumber(s, tokens[0])
		if err != nil {
			return DMSComponents{}, err
		}
		if number < 0 {
			return DMSComponents{}, formatError(s, "negative value with hemisphere letter")
		}
		degrees := math.Floor(number / 10000)
		rest := number - degrees*10000
		minutes := math.Floor(rest / 100)
		seconds := rest - minutes*100
		if err := checkSexagesimal(s, minutes, "minutes"); err != nil {
			return DMSComponents{}, err
		}
		if err := checkSexagesimal(s, seconds, "seconds"); err != nil {
			return DMSComponents{}, err
		}
		return DMSComponents{Sign: sign, Degrees: int(degrees), Minutes: int(minutes), Seconds: seconds}, nil
	}

	tokens := strings.FieldsFunc(s, isDelimiter)
	if len(tokens) != 3 && len(tokens) != 4 {
		return DMSComponents{}, formatError(s, "want 3 or 4 tokens, got %d", len(tokens))
	}
	degrees, err := parseWhole(s, tokens[0])
	if err != nil {
		return DMSComponents{}, err
	}
	minutes, err := parseWhole(s, tokens[1])
	if err != nil {
		return DMSComponents{}, err
	}
	seconds, err := parseNumber(s, tokens[2])
	if err != nil {
		return DMSComponents{}, err
	}

	sign := 1
	if len(tokens) == 4 {
		if degrees < 0 {
			return DMSComponents{}, formatError(s, "signed degrees with hemisphere letter")
		}
		if sign, err = hemisphereSign(s, tokens[3]); err != nil {
			return DMSComponents{}, err
		}
	} else if strings.HasPrefix(strings.TrimSpace(tokens[0]), "-") {
		sign = -1
		degrees = -degrees
	}

	if err := checkSexagesimal(s, float64(minutes), "minutes"); err != nil {
		return DMSComponents{}, err
	}
	if err := checkSexagesimal(s, seconds, "seconds"); err != nil {
		return DMSComponents{}, err
	}
	return DMSComponents{Sign: sign, Degrees: degrees, Minutes: minutes, Seconds: seconds}, nil
}
