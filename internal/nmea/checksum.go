package nmea

import (
	"encoding/hex"
	"fmt"
)

// Checksum XOR-folds b[start:start+length]. The range is clipped to the end of
// b; an empty or out of range window yields 0.
func Checksum(b []byte, start, length int) uint8 {
	if start < 0 || start >= len(b) || length <= 0 {
		return 0
	}
	if n := len(b) - start; length > n {
		length = n
	}

	var sum uint8
	for _, c := range b[start : start+length] {
		sum ^= c
	}
	return sum
}

// ChecksumString returns the checksum of a payload (the text between '$' and '*')
func ChecksumString(payload string) uint8 {
	var sum uint8
	for i := 0; i < len(payload); i++ {
		sum ^= payload[i]
	}
	return sum
}

// FormatChecksum renders a checksum as two uppercase hex digits
func FormatChecksum(sum uint8) string {
	return fmt.Sprintf("%02X", sum)
}

// ParseChecksum parses two hex digits in either case
func ParseChecksum(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("checksum %q: want 2 hex digits", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("checksum %q: %w", s, err)
	}
	return b[0], nil
}
