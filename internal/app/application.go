package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"nmea0183/internal/logging"
	"nmea0183/internal/nmea"
	"nmea0183/internal/receiver"
	"nmea0183/internal/transport"
)

const readBufferSize = 4096

// Application reads a sentence source, prints every decoded sentence and
// optionally records them to a daily capture file
type Application struct {
	config   Config
	logger   *logrus.Logger
	out      io.Writer
	dialer   transport.Dialer
	source   transport.Source
	receiver *receiver.Receiver
	capture  *logging.LogRotator
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	// receiverMutex serializes the read loop and the statistics reporter
	receiverMutex sync.Mutex
	closeOnce     sync.Once
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	return &Application{
		config: config,
		logger: NewLogger(config),
		out:    os.Stdout,
		ctx:    ctx,
		cancel: cancel,
	}
}

// NewLogger builds the logger described by the log section. Verbose forces debug.
func NewLogger(config Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if config.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if config.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Start runs until the source is exhausted, fails, or a shutdown signal arrives
func (app *Application) Start() error {
	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Starting NMEA-0183 decoder")

	if err := app.initializeComponents(); err != nil {
		app.shutdown()
		return fmt.Errorf("failed to initialize components: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			app.logger.Info("Received shutdown signal")
			app.cancel()
		case <-app.ctx.Done():
		}
	}()

	err := app.run()
	if err != nil {
		app.logger.WithError(err).Error("Application error")
	}
	app.shutdown()
	return err
}

// initializeComponents opens the source, the capture file and the receiver
func (app *Application) initializeComponents() error {
	var err error

	if app.dialer == nil {
		app.dialer, err = transport.NewDialer(app.config.Transport())
		if err != nil {
			return err
		}
	}

	dialCtx, cancel := context.WithTimeout(app.ctx, app.config.Source.DialTimeout)
	defer cancel()
	app.source, err = app.dialer.Dial(dialCtx)
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", app.config.Source.Kind, err)
	}

	if app.config.Capture.Enable {
		app.capture, err = logging.NewLogRotator(app.config.Capture.Dir, logging.DefaultPrefix, app.config.Capture.UTC, app.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize capture: %w", err)
		}
		if app.config.Capture.MaxDays > 0 {
			if _, err := app.capture.CleanupOldLogs(app.config.Capture.MaxDays); err != nil {
				app.logger.WithError(err).Warn("Failed to clean up old capture files")
			}
		}
	}

	app.receiver = receiver.New(
		sink{SentenceHandler: app.handleSentence, app: app},
		receiver.WithCapacity(app.config.Framer.Capacity),
		receiver.WithLogger(app.logger),
	)
	return nil
}

// run starts the background workers and reads the source on the calling goroutine
func (app *Application) run() error {
	if app.capture != nil {
		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			app.capture.Start(app.ctx)
		}()
	}

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.reportStatistics()
	}()

	// A blocked Read only returns once the source is closed
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		<-app.ctx.Done()
		app.closeSource()
	}()

	app.logger.WithField("source", app.config.Source.Kind).Info("Reading sentences")
	return app.readSource()
}

func (app *Application) readSource() error {
	buf := make([]byte, readBufferSize)
	for {
		n, err := app.source.Read(buf)
		if n > 0 {
			app.receiverMutex.Lock()
			app.receiver.Receive(buf[:n])
			app.receiverMutex.Unlock()
		}
		if err == nil {
			continue
		}
		if app.ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, io.EOF) {
			app.logger.Info("Source exhausted")
			return nil
		}
		return fmt.Errorf("read source: %w", err)
	}
}

func (app *Application) handleSentence(s nmea.Sentence) {
	fmt.Fprintln(app.out, Describe(s))

	if app.capture != nil {
		if _, err := app.capture.Write([]byte(nmea.Encode(s))); err != nil {
			app.logger.WithError(err).Debug("Failed to write capture")
		}
	}
}

// captureRejected records a frame that did not decode, when configured to
func (app *Application) captureRejected(raw []byte) {
	if app.capture == nil || !app.config.Capture.Raw {
		return
	}
	if _, err := app.capture.Write(raw); err != nil {
		app.logger.WithError(err).Debug("Failed to write capture")
	}
}

// Stats returns the receiver counters
func (app *Application) Stats() receiver.Stats {
	app.receiverMutex.Lock()
	defer app.receiverMutex.Unlock()
	if app.receiver == nil {
		return receiver.Stats{}
	}
	return app.receiver.Stats()
}

// reportStatistics logs the receiver counters periodically
func (app *Application) reportStatistics() {
	interval := app.config.Stats.Interval
	if interval <= 0 {
		interval = DefaultStatsInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-app.ctx.Done():
			return
		case <-ticker.C:
			app.logStatistics("Sentence statistics")
		}
	}
}

func (app *Application) logStatistics(msg string) {
	stats := app.Stats()

	rate := 0.0
	if stats.Frames > 0 {
		rate = float64(stats.Decoded) / float64(stats.Frames) * 100
	}
	fields := logrus.Fields{
		"frames":          stats.Frames,
		"decoded":         stats.Decoded,
		"dropped":         stats.Dropped,
		"checksum_failed": stats.ChecksumFailed,
		"ignored":         stats.Ignored,
		"overflows":       stats.Overflows,
		"success_rate":    fmt.Sprintf("%.2f%%", rate),
	}
	for kind, n := range stats.ByKind {
		fields[string(kind)] = n
	}
	app.logger.WithFields(fields).Info(msg)
}

func (app *Application) closeSource() {
	app.closeOnce.Do(func() {
		if app.source != nil {
			if err := app.source.Close(); err != nil {
				app.logger.WithError(err).Debug("Failed to close source")
			}
		}
	})
}

// shutdown gracefully shuts down the application
func (app *Application) shutdown() {
	app.logger.Info("Shutting down application")
	app.cancel()
	app.closeSource()

	done := make(chan struct{})
	go func() {
		app.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		app.logger.Warn("Shutdown timeout, forcing exit")
	}

	if app.receiver != nil {
		app.logStatistics("Final sentence statistics")
	}
	if app.capture != nil {
		if err := app.capture.Close(); err != nil {
			app.logger.WithError(err).Error("Failed to close capture")
		}
	}

	app.logger.Info("Shutdown completed")
}

// sink adapts Application to receiver.Handler
type sink struct {
	receiver.SentenceHandler
	app *Application
}

func (s sink) OnDropped(raw []byte, _ string)          { s.app.captureRejected(raw) }
func (s sink) OnChecksumFailed(raw []byte, _, _ uint8) { s.app.captureRejected(raw) }
func (s sink) OnIgnored(raw []byte)                    { s.app.captureRejected(raw) }
