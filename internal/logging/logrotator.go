package logging

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultPrefix names capture files nmea_YYYY-MM-DD.log
const DefaultPrefix = "nmea"

const dateLayout = "2006-01-02"

// ErrClosed is returned by Write after Close
var ErrClosed = errors.New("log rotator closed")

// LogRotator is a sentence capture file that rolls over daily. The previous
// day's file is gzip-compressed in the background. It is safe for concurrent use.
type LogRotator struct {
	dir    string
	prefix string
	useUTC bool
	logger *logrus.Logger
	now    func() time.Time

	mutex  sync.Mutex
	file   *os.File
	date   string
	closed bool

	compressing sync.WaitGroup
}

// NewLogRotator creates dir if needed and opens today's capture file
func NewLogRotator(dir, prefix string, useUTC bool, logger *logrus.Logger) (*LogRotator, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create capture directory: %w", err)
	}

	r := &LogRotator{
		dir:    dir,
		prefix: prefix,
		useUTC: useUTC,
		logger: logger,
		now:    time.Now,
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	if err := r.rotate(r.today()); err != nil {
		return nil, fmt.Errorf("failed to initialize capture file: %w", err)
	}
	return r, nil
}

// Start checks for a date change every minute until ctx is done, so an idle
// stream still rolls over at midnight
func (r *LogRotator) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mutex.Lock()
			if !r.closed {
				if err := r.rotateIfNeeded(); err != nil {
					r.logger.WithError(err).Error("Failed to rotate capture file")
				}
			}
			r.mutex.Unlock()
		}
	}
}

// Write appends p to the current capture file, rolling over first when the
// date has changed
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.closed {
		return 0, ErrClosed
	}
	if err := r.rotateIfNeeded(); err != nil {
		return 0, err
	}
	return r.file.Write(p)
}

func (r *LogRotator) today() string {
	now := r.now()
	if r.useUTC {
		now = now.UTC()
	}
	return now.Format(dateLayout)
}

func (r *LogRotator) fileName(date string) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s_%s.log", r.prefix, date))
}

// rotateIfNeeded must be called with the mutex held
func (r *LogRotator) rotateIfNeeded() error {
	today := r.today()
	if today == r.date {
		return nil
	}
	r.logger.WithFields(logrus.Fields{
		"old_date": r.date,
		"new_date": today,
	}).Info("Rotating capture file")
	return r.rotate(today)
}

// rotate must be called with the mutex held
func (r *LogRotator) rotate(date string) error {
	if r.file != nil {
		old := r.date
		if err := r.file.Close(); err != nil {
			r.logger.WithError(err).Error("Failed to close capture file")
		}
		r.file = nil

		r.compressing.Add(1)
		go func() {
			defer r.compressing.Done()
			if err := r.compress(old); err != nil {
				r.logger.WithError(err).WithField("date", old).Error("Failed to compress capture file")
			}
		}()
	}

	name := r.fileName(date)
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create capture file %s: %w", name, err)
	}
	r.file = file
	r.date = date

	r.logger.WithField("file", name).Info("Opened capture file")
	return nil
}

// compress gzips the capture file for date and removes the original
func (r *LogRotator) compress(date string) error {
	source := r.fileName(date)
	target := source + ".gz"

	src, err := os.Open(source)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	gz := gzip.NewWriter(dst)
	gz.Name = filepath.Base(source)
	gz.ModTime = r.now()

	if _, err := io.Copy(gz, src); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	if err := os.Remove(source); err != nil {
		return err
	}

	r.logger.WithField("file", target).Debug("Compressed capture file")
	return nil
}

// CurrentFile returns the path of the file being written
func (r *LogRotator) CurrentFile() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.fileName(r.date)
}

// Files lists every capture file, compressed or not
func (r *LogRotator) Files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(r.dir, r.prefix+"_*.log*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list capture files: %w", err)
	}
	return files, nil
}

// CleanupOldLogs removes capture files last modified more than maxDays ago
// and returns how many were removed. The current file is never removed.
func (r *LogRotator) CleanupOldLogs(maxDays int) (int, error) {
	if maxDays <= 0 {
		return 0, fmt.Errorf("maxDays must be positive")
	}

	files, err := r.Files()
	if err != nil {
		return 0, err
	}

	current := r.CurrentFile()
	cutoff := r.now().AddDate(0, 0, -maxDays)

	removed := 0
	for _, file := range files {
		if file == current {
			continue
		}
		info, err := os.Stat(file)
		if err != nil {
			r.logger.WithError(err).WithField("file", file).Warn("Failed to stat capture file")
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(file); err != nil {
			r.logger.WithError(err).WithField("file", file).Error("Failed to remove old capture file")
			continue
		}
		removed++
	}

	if removed > 0 {
		r.logger.WithField("count", removed).Info("Removed old capture files")
	}
	return removed, nil
}

// Close closes the current file and waits for pending compression
func (r *LogRotator) Close() error {
	r.mutex.Lock()
	var err error
	if !r.closed {
		r.closed = true
		if r.file != nil {
			err = r.file.Close()
			r.file = nil
		}
	}
	r.mutex.Unlock()

	r.compressing.Wait()
	return err
}
