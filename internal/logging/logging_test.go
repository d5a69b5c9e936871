package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_DefaultConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := New(DefaultConfig(), &buf)
	defer logger.Close() //nolint:errcheck

	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled by default")
	}
	logger.Warn("stale output", "path", "build")
	if got := buf.String(); !strings.Contains(got, "level=WARN") || !strings.Contains(got, "path=build") {
		t.Errorf("text output = %q", got)
	}
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level    string
		enabled  slog.Level
		disabled slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(Config{Level: tt.level}, &bytes.Buffer{})
			if !logger.Enabled(context.Background(), tt.enabled) {
				t.Errorf("expected %s to be enabled", tt.enabled)
			}
			if logger.Enabled(context.Background(), tt.disabled) {
				t.Errorf("expected %s to be disabled", tt.disabled)
			}
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json"}, &buf)
	logger.Info("master composed", "size", 1024)

	got := buf.String()
	if !strings.Contains(got, `"msg":"master composed"`) || !strings.Contains(got, `"size":1024`) {
		t.Errorf("json output = %q", got)
	}
}

func TestNew_FileOutput(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "assetgen.log")

	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json", FilePath: logFile, FileMaxSizeMB: 1}, &buf)
	logger.Info("hello from test")

	if err := logger.Close(); err != nil {
		t.Fatalf("closing logger: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q", data)
	}
	if buf.Len() == 0 {
		t.Error("expected the stream to receive the record too")
	}
}

func TestLogger_CloseIdempotent(t *testing.T) {
	logger := New(Config{FilePath: filepath.Join(t.TempDir(), "x.log")}, &bytes.Buffer{})
	logger.Error("boom")
	if err := logger.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestValidLevelAndFormat(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		if !ValidLevel(s) {
			t.Errorf("ValidLevel(%q) = false", s)
		}
	}
	for _, s := range []string{"", "DEBUG", "trace"} {
		if ValidLevel(s) {
			t.Errorf("ValidLevel(%q) = true", s)
		}
	}
	if !ValidFormat("text") || !ValidFormat("json") || ValidFormat("xml") {
		t.Error("ValidFormat accepts the wrong set")
	}
}

func TestConfigString(t *testing.T) {
	c := Config{Level: "debug", Format: "json"}
	if got, want := c.String(), "level=debug format=json"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	c.FilePath = "a.log"
	c.FileMaxSizeMB, c.FileMaxFiles, c.FileMaxAgeDays = 1, 2, 3
	if got, want := c.String(), "level=debug format=json file=a.log max_size=1MB max_files=2 max_age=3d"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
