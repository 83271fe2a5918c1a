package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithWriterLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := NewWithWriter(&bytes.Buffer{}, tt.level).GetLevel(); got != tt.want {
			t.Errorf("level %q = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestNewWithWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.WithField("league", "NBA").Warn("card skipped")
	log.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "card skipped") || !strings.Contains(out, "league=NBA") {
		t.Errorf("unexpected output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}
