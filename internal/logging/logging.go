// Package logging provides centralized logging configuration for the
// meshcat client and CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// globalLogger is the process-wide logger
	globalLogger *slog.Logger
	globalMu     sync.RWMutex

	// logWriter holds the log file writer (if any) for cleanup
	logWriter   io.WriteCloser
	logWriterMu sync.Mutex
)

// FileConfig holds configuration for file-based logging with rotation.
type FileConfig struct {
	// Path is the log file path. Empty disables file logging.
	Path string

	// MaxSizeMB is the maximum size of the log file in megabytes before
	// rotation. Default: 10MB.
	MaxSizeMB int

	// MaxBackups is the maximum number of old log files to retain.
	// Default: 3.
	MaxBackups int

	// Compress determines if rotated log files should be compressed.
	Compress bool
}

// DefaultFileConfig returns the default file log configuration.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// File configures optional file output with rotation.
	File FileConfig
	// JSON enables JSON output format.
	JSON bool
}

// Initialize sets up the global logger with the given configuration.
// If a file path is configured, logs are written to both stderr and the
// file, with rotation handled by lumberjack.
func Initialize(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	writer := io.Writer(os.Stderr)
	if cfg.File.Path != "" {
		file := cfg.File
		if file.MaxSizeMB <= 0 {
			file.MaxSizeMB = DefaultFileConfig().MaxSizeMB
		}
		if file.MaxBackups <= 0 {
			file.MaxBackups = DefaultFileConfig().MaxBackups
		}
		rotated := &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			Compress:   file.Compress,
		}
		logWriterMu.Lock()
		logWriter = rotated
		logWriterMu.Unlock()
		writer = io.MultiWriter(os.Stderr, rotated)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	globalMu.Lock()
	globalLogger = slog.New(handler)
	globalMu.Unlock()
	return nil
}

// Get returns the global logger, or slog.Default if Initialize has not
// been called.
func Get() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}

// Close releases the log file writer, if any.
func Close() error {
	logWriterMu.Lock()
	defer logWriterMu.Unlock()
	if logWriter == nil {
		return nil
	}
	err := logWriter.Close()
	logWriter = nil
	return err
}

// ParseLevel converts a level name to a slog.Level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// WithComponent returns a logger tagged with a component name.
// A nil logger stays nil.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With("component", component)
}
