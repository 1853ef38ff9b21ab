package transport

import "errors"

var (
	// ErrNilContext is returned when Dial is called with a nil context
	ErrNilContext = errors.New("transport: context is nil")

	// ErrPortRequired is returned by SerialDialer without a port name
	ErrPortRequired = errors.New("transport: serial port name is required")

	// ErrPathRequired is returned by FileDialer without a path
	ErrPathRequired = errors.New("transport: file path is required")

	// ErrAddressRequired is returned by TCPDialer without an address
	ErrAddressRequired = errors.New("transport: tcp address is required")

	// ErrUnknownKind is returned for an unrecognized source kind
	ErrUnknownKind = errors.New("transport: unknown source kind")
)
