package nmea

// Sentence delimiters
const (
	StartDelimiter    = '$'
	ChecksumDelimiter = '*'
	FieldDelimiter    = ','
	CR                = '\r'
	LF                = '\n'
)

// Terminator ends every sentence on the wire
const Terminator = "\r\n"

// FrameOverhead is the number of bytes a frame adds around its payload: "$" + "*XX" + CR LF
const FrameOverhead = 6

// MaxSentenceLength is the nominal NMEA-0183 limit; many devices exceed it
const MaxSentenceLength = 82

// Default talker used by the New* constructors
const DefaultTalker = "GP"
