package receiver

//go:generate go tool mockgen -source=handler.go -destination=mock_handler_test.go -package=receiver

import "nmea0183/internal/nmea"

// Handler receives the outcome of every frame. Raw slices are copies and may
// be retained.
type Handler interface {
	OnGGA(s *nmea.GGA)
	OnGSA(s *nmea.GSA)
	OnGST(s *nmea.GST)
	OnGSV(s *nmea.GSV)
	OnHDT(s *nmea.HDT)
	OnRMC(s *nmea.RMC)
	OnVTG(s *nmea.VTG)

	OnDropped(raw []byte, reason string)
	OnChecksumFailed(raw []byte, expected, actual uint8)
	OnIgnored(raw []byte)
}

// NopHandler implements Handler with methods that do nothing. Embed it to
// handle only some of the callbacks.
type NopHandler struct{}

func (NopHandler) OnGGA(*nmea.GGA)                       {}
func (NopHandler) OnGSA(*nmea.GSA)                       {}
func (NopHandler) OnGST(*nmea.GST)                       {}
func (NopHandler) OnGSV(*nmea.GSV)                       {}
func (NopHandler) OnHDT(*nmea.HDT)                       {}
func (NopHandler) OnRMC(*nmea.RMC)                       {}
func (NopHandler) OnVTG(*nmea.VTG)                       {}
func (NopHandler) OnDropped([]byte, string)              {}
func (NopHandler) OnChecksumFailed([]byte, uint8, uint8) {}
func (NopHandler) OnIgnored([]byte)                      {}

// SentenceHandler routes every decoded sentence to one function and ignores
// rejected frames.
type SentenceHandler func(s nmea.Sentence)

func (f SentenceHandler) OnGGA(s *nmea.GGA)                     { f(s) }
func (f SentenceHandler) OnGSA(s *nmea.GSA)                     { f(s) }
func (f SentenceHandler) OnGST(s *nmea.GST)                     { f(s) }
func (f SentenceHandler) OnGSV(s *nmea.GSV)                     { f(s) }
func (f SentenceHandler) OnHDT(s *nmea.HDT)                     { f(s) }
func (f SentenceHandler) OnRMC(s *nmea.RMC)                     { f(s) }
func (f SentenceHandler) OnVTG(s *nmea.VTG)                     { f(s) }
func (f SentenceHandler) OnDropped([]byte, string)              {}
func (f SentenceHandler) OnChecksumFailed([]byte, uint8, uint8) {}
func (f SentenceHandler) OnIgnored([]byte)                      {}

// deliver calls the Handler method matching the result
func deliver(h Handler, res Result) {
	switch res.Outcome {
	case Dropped:
		h.OnDropped(res.Raw, res.Reason)
	case ChecksumFailed:
		h.OnChecksumFailed(res.Raw, res.Expected, res.Actual)
	case Ignored:
		h.OnIgnored(res.Raw)
	case Decoded:
		switch s := res.Sentence.(type) {
		case *nmea.GGA:
			h.OnGGA(s)
		case *nmea.GSA:
			h.OnGSA(s)
		case *nmea.GST:
			h.OnGST(s)
		case *nmea.GSV:
			h.OnGSV(s)
		case *nmea.HDT:
			h.OnHDT(s)
		case *nmea.RMC:
			h.OnRMC(s)
		case *nmea.VTG:
			h.OnVTG(s)
		}
	}
}
