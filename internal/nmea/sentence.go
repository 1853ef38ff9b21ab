package nmea

import (
	"fmt"
	"strings"
)

// Kind is the talker independent sentence type, the last three characters
// of the identifier field
type Kind string

// Supported sentence kinds
const (
	KindGGA Kind = "GGA"
	KindGSA Kind = "GSA"
	KindGST Kind = "GST"
	KindGSV Kind = "GSV"
	KindHDT Kind = "HDT"
	KindRMC Kind = "RMC"
	KindVTG Kind = "VTG"
)

// Sentence is one decoded message. The set of implementations is closed:
// *GGA, *GSA, *GST, *GSV, *HDT, *RMC and *VTG.
type Sentence interface {
	// Kind returns the sentence type
	Kind() Kind
	// ID returns the full identifier, e.g. "GPGGA"
	ID() string
	// Payload returns the comma separated fields without '$' and checksum
	Payload() string

	isSentence()
}

// Header is embedded by every sentence
type Header struct {
	// DataType is the identifier field, talker included
	DataType string
}

// ID returns the full identifier
func (h Header) ID() string { return h.DataType }

// Talker returns the identifier minus its type suffix, e.g. "GP"
func (h Header) Talker() string {
	if len(h.DataType) <= 3 {
		return ""
	}
	return h.DataType[:len(h.DataType)-3]
}

func header(kind Kind) Header {
	return Header{DataType: DefaultTalker + string(kind)}
}

// Decoder builds a sentence from its payload tokens. tokens[0] is the identifier.
type Decoder func(tokens []string) (Sentence, error)

// decoders maps a type key to its decoder. It is never modified after init.
var decoders = map[Kind]Decoder{
	KindGGA: decodeGGA,
	KindGSA: decodeGSA,
	KindGST: decodeGST,
	KindGSV: decodeGSV,
	KindHDT: decodeHDT,
	KindRMC: decodeRMC,
	KindVTG: decodeVTG,
}

// Kinds returns the supported sentence kinds
func Kinds() []Kind {
	return []Kind{KindGGA, KindGSA, KindGST, KindGSV, KindHDT, KindRMC, KindVTG}
}

// KeyOf returns the dispatch key of an identifier: its last three characters,
// upper-cased. Shorter identifiers are used whole.
func KeyOf(identifier string) Kind {
	start := len(identifier) - 3
	if start < 0 {
		start = 0
	}
	return Kind(strings.ToUpper(identifier[start:]))
}

// Lookup returns the decoder registered for a type key
func Lookup(key Kind) (Decoder, bool) {
	d, ok := decoders[key]
	return d, ok
}

// Tokenize splits a payload on ','
func Tokenize(payload string) []string {
	return strings.Split(payload, string(FieldDelimiter))
}

// Decode routes tokens to the decoder for their type key
func Decode(tokens []string) (Sentence, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("decode: %w: no identifier", ErrTooShort)
	}
	key := KeyOf(tokens[0])
	decode, ok := Lookup(key)
	if !ok {
		return nil, fmt.Errorf("decode %q: %w", tokens[0], ErrUnsupported)
	}
	return decode(tokens)
}

// DecodePayload tokenizes and decodes a payload string
func DecodePayload(payload string) (Sentence, error) {
	return Decode(Tokenize(payload))
}

// Encode renders the full sentence text: "$" payload "*" checksum CR LF
func Encode(s Sentence) string {
	return Frame(s.Payload())
}

// Frame wraps a payload with the start delimiter, checksum and terminator
func Frame(payload string) string {
	return string(StartDelimiter) + payload + string(ChecksumDelimiter) +
		FormatChecksum(ChecksumString(payload)) + Terminator
}

// identifier strips a stray '$' some encoders leave on the first token
func identifier(token string) string {
	return strings.TrimPrefix(token, string(StartDelimiter))
}
