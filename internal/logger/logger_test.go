package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerTo(&buf, "info")

	log.Debug("hidden")
	log.Info("shown", "records", 10)

	out := buf.String()

	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}

	if !strings.Contains(out, "shown") || !strings.Contains(out, "records=10") {
		t.Errorf("info message missing from output: %q", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerTo(&buf, "info")
	log.SetLevel("debug")

	log.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message not logged after SetLevel")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerTo(&buf, "info").With("stage", "normalize")

	log.Info("done")

	if !strings.Contains(buf.String(), "stage=normalize") {
		t.Errorf("child logger attribute missing: %q", buf.String())
	}
}

func TestParseLevel_UnknownDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerTo(&buf, "chatty")

	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()

	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unknown level should behave as info: %q", out)
	}
}
