// Package transport opens the byte streams NMEA sentences arrive on.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"go.bug.st/serial"
)

// Source is an open byte stream carrying NMEA sentences
type Source interface {
	io.ReadCloser
}

// Dialer opens a Source. Dial may block and should respect ctx.
type Dialer interface {
	Dial(ctx context.Context) (Source, error)
}

// Kind selects a Dialer
type Kind string

const (
	KindSerial Kind = "serial"
	KindFile   Kind = "file"
	KindTCP    Kind = "tcp"
	KindStdin  Kind = "stdin"
)

// DefaultBaudRate is the NMEA-0183 standard rate
const DefaultBaudRate = 4800

// Config describes where to read sentences from
type Config struct {
	Kind        Kind
	Device      string // serial port, e.g. /dev/ttyUSB0
	BaudRate    int
	Path        string // file path for KindFile
	Address     string // host:port for KindTCP
	DialTimeout time.Duration
}

// NewDialer returns the Dialer for cfg.Kind
func NewDialer(cfg Config) (Dialer, error) {
	switch Kind(strings.ToLower(string(cfg.Kind))) {
	case KindSerial:
		return SerialDialer{PortName: cfg.Device, Mode: &serial.Mode{BaudRate: cfg.BaudRate}}, nil
	case KindFile:
		return FileDialer{Path: cfg.Path}, nil
	case KindTCP:
		return TCPDialer{Address: cfg.Address, Timeout: cfg.DialTimeout}, nil
	case KindStdin:
		return StdinDialer{Reader: os.Stdin}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
}

// Open picks the Dialer for cfg and dials it
func Open(ctx context.Context, cfg Config) (Source, error) {
	d, err := NewDialer(cfg)
	if err != nil {
		return nil, err
	}
	return d.Dial(ctx)
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return ctx.Err()
}

// SerialDialer opens a serial port
type SerialDialer struct {
	PortName string
	Mode     *serial.Mode // nil selects 4800 8N1
}

func (d SerialDialer) Dial(ctx context.Context) (Source, error) {
	if d.PortName == "" {
		return nil, ErrPortRequired
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	mode := d.Mode
	if mode == nil {
		mode = &serial.Mode{}
	}
	if mode.BaudRate == 0 {
		m := *mode
		m.BaudRate = DefaultBaudRate
		mode = &m
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", d.PortName, err)
	}
	if err := ctx.Err(); err != nil {
		_ = port.Close()
		return nil, err
	}
	return port, nil
}

// FileDialer opens a recorded capture file
type FileDialer struct {
	Path string
}

func (d FileDialer) Dial(ctx context.Context) (Source, error) {
	if d.Path == "" {
		return nil, ErrPathRequired
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("open capture file: %w", err)
	}
	return f, nil
}

// TCPDialer connects to a network NMEA feed, e.g. a gpsd raw port or a
// serial-to-ethernet bridge
type TCPDialer struct {
	Address string
	Timeout time.Duration
}

func (d TCPDialer) Dial(ctx context.Context) (Source, error) {
	if d.Address == "" {
		return nil, ErrAddressRequired
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	dialer := net.Dialer{Timeout: d.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", d.Address)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("dial %s: %w", d.Address, err)
	}
	return conn, nil
}

// StdinDialer wraps an already open reader; Close does not close it
type StdinDialer struct {
	Reader io.Reader
}

func (d StdinDialer) Dial(ctx context.Context) (Source, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if d.Reader == nil {
		return nil, errors.New("stdin dialer: nil reader")
	}
	return io.NopCloser(d.Reader), nil
}

// Ports lists the serial ports present on the system
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
