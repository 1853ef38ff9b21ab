package nmea

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"nmea0183/internal/geo"
)

// parser reads positional fields and keeps the first error, so decoders can
// read every field and check Err once at the end.
type parser struct {
	kind   Kind
	tokens []string
	err    error
}

func newParser(kind Kind, tokens []string, required int) *parser {
	p := &parser{kind: kind, tokens: tokens}
	if len(tokens) < required {
		p.err = fmt.Errorf("%s: %w: need %d, got %d", kind, ErrTooShort, required, len(tokens))
	}
	return p
}

// Err returns the first error encountered
func (p *parser) Err() error { return p.err }

func (p *parser) fail(i int, name, value string, err error) {
	if p.err == nil {
		p.err = &FieldError{Kind: p.kind, Index: i, Name: name, Value: value, Err: err}
	}
}

// has reports whether index i exists and no error occurred so far
func (p *parser) has(i int) bool {
	return p.err == nil && i < len(p.tokens)
}

func (p *parser) String(i int, name string) string {
	if p.err != nil {
		return ""
	}
	if i >= len(p.tokens) {
		p.err = fmt.Errorf("%s: %w: missing %s at %d", p.kind, ErrTooShort, name, i)
		return ""
	}
	return p.tokens[i]
}

// OptionalString returns nil when the field is beyond the end of the sentence
func (p *parser) OptionalString(i int) *string {
	if !p.has(i) {
		return nil
	}
	s := p.tokens[i]
	return &s
}

func (p *parser) Float(i int, name string) float64 {
	s := strings.TrimSpace(p.String(i, name))
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(i, name, s, err)
		return 0
	}
	return v
}

// OptionalFloat returns nil for an empty or missing field
func (p *parser) OptionalFloat(i int, name string) *float64 {
	if !p.has(i) || strings.TrimSpace(p.tokens[i]) == "" {
		return nil
	}
	v := p.Float(i, name)
	if p.err != nil {
		return nil
	}
	return &v
}

func (p *parser) Int(i int, name string) int {
	s := strings.TrimSpace(p.String(i, name))
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		p.fail(i, name, s, err)
		return 0
	}
	return v
}

// OptionalInt returns nil for an empty or missing field
func (p *parser) OptionalInt(i int, name string) *int {
	if !p.has(i) || strings.TrimSpace(p.tokens[i]) == "" {
		return nil
	}
	v := p.Int(i, name)
	if p.err != nil {
		return nil
	}
	return &v
}

// TimeOfDay parses hhmmss[.f...] and returns the number of fractional digits seen
func (p *parser) TimeOfDay(i int, name string) (time.Duration, int) {
	s := strings.TrimSpace(p.String(i, name))
	if p.err != nil {
		return 0, 0
	}
	d, digits, err := ParseTimeOfDay(s)
	if err != nil {
		p.fail(i, name, s, err)
	}
	return d, digits
}

// Latitude reads a value/hemisphere pair starting at i
func (p *parser) Latitude(i int, name string) geo.Latitude {
	value, hemisphere := p.String(i, name), p.String(i+1, name)
	if p.err != nil {
		return geo.Latitude{}
	}
	s := value + string(FieldDelimiter) + hemisphere
	lat, err := geo.ParseLatitude(s, geo.DMM, geo.Compact)
	if err != nil {
		p.fail(i, name, s, err)
	}
	return lat
}

// Longitude reads a value/hemisphere pair starting at i
func (p *parser) Longitude(i int, name string) geo.Longitude {
	value, hemisphere := p.String(i, name), p.String(i+1, name)
	if p.err != nil {
		return geo.Longitude{}
	}
	s := value + string(FieldDelimiter) + hemisphere
	lon, err := geo.ParseLongitude(s, geo.DMM, geo.Compact)
	if err != nil {
		p.fail(i, name, s, err)
	}
	return lon
}

// Enum parses a field with a type specific lookup
func (p *parser) Enum(i int, name string, parse func(string) (int, error)) int {
	s := strings.TrimSpace(p.String(i, name))
	if p.err != nil {
		return 0
	}
	v, err := parse(s)
	if err != nil {
		p.fail(i, name, s, err)
	}
	return v
}

var errTimeFormat = errors.New("want hhmmss[.fff]")

// ParseTimeOfDay parses "hhmmss" with an optional fraction of 1 to 9 digits.
// It returns the offset from midnight and the number of fractional digits.
func ParseTimeOfDay(s string) (time.Duration, int, error) {
	if len(s) < 6 || !allDigits(s[:6]) {
		return 0, 0, errTimeFormat
	}
	hh, _ := strconv.Atoi(s[0:2])
	mm, _ := strconv.Atoi(s[2:4])
	ss, _ := strconv.Atoi(s[4:6])
	if hh > 23 || mm > 59 || ss > 59 {
		return 0, 0, fmt.Errorf("time %s out of range", s)
	}
	d := time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute + time.Duration(ss)*time.Second

	rest := s[6:]
	if rest == "" {
		return d, 0, nil
	}
	frac := strings.TrimPrefix(rest, ".")
	if len(frac) == len(rest) || frac == "" || len(frac) > 9 || !allDigits(frac) {
		return 0, 0, errTimeFormat
	}
	ns, _ := strconv.Atoi(frac)
	d += time.Duration(ns) * time.Duration(math.Pow10(9-len(frac)))
	return d, len(frac), nil
}

// FormatTimeOfDay renders an offset from midnight as hhmmss with the given
// number of fractional digits, truncating.
func FormatTimeOfDay(d time.Duration, digits int) string {
	if d < 0 {
		d = 0
	}
	d %= 24 * time.Hour
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	s := int((d % time.Minute) / time.Second)
	if digits <= 0 {
		return fmt.Sprintf("%02d%02d%02d", h, m, s)
	}
	if digits > 9 {
		digits = 9
	}
	frac := int64((d % time.Second) / time.Duration(math.Pow10(9-digits)))
	return fmt.Sprintf("%02d%02d%02d.%0*d", h, m, s, digits, frac)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// decimal formats v with between least and most decimals ("0.0#" is 1, 2)
func decimal(v float64, least, most int) string {
	s := strconv.FormatFloat(v, 'f', most, 64)
	if most <= least {
		return s
	}
	cut := len(s)
	for dropped := 0; dropped < most-least && s[cut-1] == '0'; dropped++ {
		cut--
	}
	return s[:cut]
}

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// shortest formats v with the fewest digits that parse back to the same value
func shortest(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalFixed(v *float64, decimals int) string {
	if v == nil {
		return ""
	}
	return fixed(*v, decimals)
}

// optionalInt zero-pads to width; a nil value is an empty field
func optionalInt(v *int, width int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%0*d", width, *v)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func join(fields ...string) string {
	return strings.Join(fields, string(FieldDelimiter))
}
