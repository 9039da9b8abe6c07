package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewSlogAdapter(t *testing.T) {
	logger := slog.Default()

	adapter := NewSlogAdapter(logger)
	if adapter.Logger() != logger {
		t.Error("Logger() should return the wrapped logger")
	}

	adapter = NewSlogAdapter(nil)
	if adapter.Logger() == nil {
		t.Error("nil logger should fall back to slog.Default()")
	}
}

func TestSlogAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	tests := []struct {
		level string
		log   func(msg string, args ...any)
	}{
		{"DEBUG", adapter.Debug},
		{"INFO", adapter.Info},
		{"WARN", adapter.Warn},
		{"ERROR", adapter.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.log("test message", "account", "work")

			out := buf.String()
			if !strings.Contains(out, "level="+tt.level) {
				t.Errorf("output missing level %s: %s", tt.level, out)
			}
			if !strings.Contains(out, "account=work") {
				t.Errorf("output missing attribute: %s", out)
			}
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	adapter := DefaultLogger()
	if adapter.Logger() == nil {
		t.Error("DefaultLogger() should wrap a non-nil logger")
	}
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = (*SlogAdapter)(nil)
}
