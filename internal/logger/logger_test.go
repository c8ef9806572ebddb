// logger_test.go tests [ParseLevel], the [Handler] line format, level
// filtering, and attribute/group handling.

package logger

import (
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHandlerFormat(t *testing.T) {
	var sb strings.Builder
	log := slog.New(NewHandler(&sb, slog.LevelInfo))

	log.Info("converted file", "records", 12, "skipped", 1)

	line := sb.String()
	if !strings.Contains(line, "[INFO] converted file") {
		t.Errorf("line missing level and message: %q", line)
	}
	if !strings.Contains(line, "records=12") || !strings.Contains(line, "skipped=1") {
		t.Errorf("line missing attributes: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line not newline terminated: %q", line)
	}
}

func TestHandlerLevelFilter(t *testing.T) {
	var sb strings.Builder
	log := slog.New(NewHandler(&sb, slog.LevelWarn))

	log.Info("dropped")
	log.Warn("kept")

	if strings.Contains(sb.String(), "dropped") {
		t.Errorf("info record not filtered: %q", sb.String())
	}
	if !strings.Contains(sb.String(), "kept") {
		t.Errorf("warn record missing: %q", sb.String())
	}
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	var sb strings.Builder
	log := slog.New(NewHandler(&sb, slog.LevelInfo))

	log.With("mode", "es-to-hex").WithGroup("source").Info("reading", "path", "colors.txt")

	line := sb.String()
	if !strings.Contains(line, "mode=es-to-hex") {
		t.Errorf("pre-applied attribute missing: %q", line)
	}
	if !strings.Contains(line, "source.path=colors.txt") {
		t.Errorf("grouped attribute missing: %q", line)
	}
}
