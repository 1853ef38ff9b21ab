package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"nmea0183/internal/stream"
	"nmea0183/internal/transport"
)

// Default configuration constants
const (
	DefaultSource        = string(transport.KindSerial)
	DefaultDevice        = "/dev/ttyUSB0"
	DefaultBaudRate      = transport.DefaultBaudRate
	DefaultDialTimeout   = 10 * time.Second
	DefaultCaptureDir    = "./logs"
	DefaultCaptureDays   = 30
	DefaultStatsInterval = 30 * time.Second
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Config holds application configuration. It is read from a YAML file and
// individual values can be overridden by command line flags.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Framer  FramerConfig  `yaml:"framer"`
	Capture CaptureConfig `yaml:"capture"`
	Stats   StatsConfig   `yaml:"stats"`
	Log     LogConfig     `yaml:"log"`

	Verbose     bool `yaml:"-"`
	ShowVersion bool `yaml:"-"`
}

type SourceConfig struct {
	Kind        string        `yaml:"kind"` // serial, file, tcp or stdin
	Device      string        `yaml:"device"`
	Baud        int           `yaml:"baud"`
	Path        string        `yaml:"path"`
	Address     string        `yaml:"address"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type FramerConfig struct {
	Capacity int `yaml:"capacity"`
}

type CaptureConfig struct {
	Enable  bool   `yaml:"enable"`
	Dir     string `yaml:"dir"`
	UTC     bool   `yaml:"utc"`
	Raw     bool   `yaml:"raw"` // also record rejected frames verbatim
	MaxDays int    `yaml:"max_days"`
}

type StatsConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind:        DefaultSource,
			Device:      DefaultDevice,
			Baud:        DefaultBaudRate,
			DialTimeout: DefaultDialTimeout,
		},
		Framer: FramerConfig{Capacity: stream.DefaultCapacity},
		Capture: CaptureConfig{
			Dir:     DefaultCaptureDir,
			UTC:     true,
			MaxDays: DefaultCaptureDays,
		},
		Stats: StatsConfig{Interval: DefaultStatsInterval},
		Log:   LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills values a file explicitly set to zero
func (c *Config) applyDefaults() {
	if c.Source.Kind == "" {
		c.Source.Kind = DefaultSource
	}
	c.Source.Kind = strings.ToLower(c.Source.Kind)
	if c.Source.Baud <= 0 {
		c.Source.Baud = DefaultBaudRate
	}
	if c.Source.DialTimeout <= 0 {
		c.Source.DialTimeout = DefaultDialTimeout
	}
	if c.Framer.Capacity <= 0 {
		c.Framer.Capacity = stream.DefaultCapacity
	}
	if c.Capture.Dir == "" {
		c.Capture.Dir = DefaultCaptureDir
	}
	if c.Stats.Interval <= 0 {
		c.Stats.Interval = DefaultStatsInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate reports the first inconsistent setting
func (c Config) Validate() error {
	switch transport.Kind(c.Source.Kind) {
	case transport.KindSerial:
		if c.Source.Device == "" {
			return fmt.Errorf("source.device is required when source.kind is serial")
		}
	case transport.KindFile:
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required when source.kind is file")
		}
	case transport.KindTCP:
		if c.Source.Address == "" {
			return fmt.Errorf("source.address is required when source.kind is tcp")
		}
	case transport.KindStdin:
	default:
		return fmt.Errorf("source.kind %q must be one of serial, file, tcp, stdin", c.Source.Kind)
	}

	if c.Framer.Capacity < 16 {
		return fmt.Errorf("framer.capacity must be at least 16, got %d", c.Framer.Capacity)
	}
	if c.Capture.Enable && c.Capture.MaxDays < 0 {
		return fmt.Errorf("capture.max_days must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format %q must be text or json", c.Log.Format)
	}
	return nil
}

// Transport converts the source section for the transport package
func (c Config) Transport() transport.Config {
	return transport.Config{
		Kind:        transport.Kind(c.Source.Kind),
		Device:      c.Source.Device,
		BaudRate:    c.Source.Baud,
		Path:        c.Source.Path,
		Address:     c.Source.Address,
		DialTimeout: c.Source.DialTimeout,
	}
}
