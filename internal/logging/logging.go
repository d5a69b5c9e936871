// Package logging builds the command-line tool's slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the desired logging configuration.
type Config struct {
	Level          string
	Format         string
	FilePath       string
	FileMaxSizeMB  int
	FileMaxFiles   int
	FileMaxAgeDays int
}

// DefaultConfig logs warnings and errors as text.
func DefaultConfig() Config {
	return Config{
		Level:          "warn",
		Format:         "text",
		FileMaxSizeMB:  10,
		FileMaxFiles:   3,
		FileMaxAgeDays: 30,
	}
}

// String returns a human-readable summary of the config.
func (c Config) String() string {
	s := fmt.Sprintf("level=%s format=%s", c.Level, c.Format)
	if c.FilePath != "" {
		s += fmt.Sprintf(" file=%s max_size=%dMB max_files=%d max_age=%dd",
			c.FilePath, c.FileMaxSizeMB, c.FileMaxFiles, c.FileMaxAgeDays)
	}
	return s
}

// Logger is a slog.Logger that may own a log file.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New creates a logger writing to w and, if cfg names a file, to a
// rotating log file as well.
func New(cfg Config, w io.Writer) *Logger {
	writer, closer := buildWriter(cfg, w)
	return &Logger{
		Logger: slog.New(buildHandler(writer, ParseLevel(cfg.Level), cfg.Format)),
		closer: closer,
	}
}

// Close releases the log file, if any. It is safe to call more than once.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// ParseLevel converts a level name to slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel returns true if s is a recognized log level.
func ValidLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidFormat returns true if s is a recognized log format.
func ValidFormat(s string) bool {
	switch s {
	case "text", "json":
		return true
	}
	return false
}

func buildWriter(cfg Config, w io.Writer) (io.Writer, io.Closer) {
	if cfg.FilePath == "" {
		return w, nil
	}

	maxSize := cfg.FileMaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	maxFiles := cfg.FileMaxFiles
	if maxFiles <= 0 {
		maxFiles = 3
	}
	maxAge := cfg.FileMaxAgeDays
	if maxAge <= 0 {
		maxAge = 30
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    maxSize,
		MaxBackups: maxFiles,
		MaxAge:     maxAge,
	}
	return io.MultiWriter(w, lj), lj
}

func buildHandler(w io.Writer, level slog.Leveler, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
