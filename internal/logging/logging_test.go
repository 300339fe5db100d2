package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		debug    string
		level    string
		expected LogLevel
	}{
		{name: "Debug via LOG_LEVEL", level: "debug", expected: LevelDebug},
		{name: "Info via LOG_LEVEL", level: "info", expected: LevelInfo},
		{name: "Warn via LOG_LEVEL", level: "warn", expected: LevelWarn},
		{name: "Error via LOG_LEVEL", level: "error", expected: LevelError},
		{name: "Case insensitive", level: "DEBUG", expected: LevelDebug},
		{name: "Warning alias", level: "warning", expected: LevelWarn},
		{name: "Unset defaults to info", expected: LevelInfo},
		{name: "Garbage defaults to info", level: "verbose", expected: LevelInfo},
		{name: "DEBUG flag wins", debug: "true", level: "error", expected: LevelDebug},
		{name: "DEBUG flag numeric", debug: "1", expected: LevelDebug},
		{name: "DEBUG flag off", debug: "false", level: "warn", expected: LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.debug, tt.level); got != tt.expected {
				t.Errorf("parseLevel(%q, %q) = %v, want %v", tt.debug, tt.level, got, tt.expected)
			}
		})
	}
}

func TestLogLevelConstants(t *testing.T) {
	levels := []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i := 0; i < len(levels)-1; i++ {
		if levels[i] >= levels[i+1] {
			t.Errorf("Log levels should be in ascending order: %v >= %v", levels[i], levels[i+1])
		}
	}
}

// captureOutput redirects log output for the duration of fn
func captureOutput(t *testing.T, level LogLevel, fn func()) string {
	t.Helper()

	previous := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	defer func() {
		SetLevel(previous)
		SetOutput(os.Stderr)
	}()

	fn()
	return buf.String()
}

func TestLevelFiltering(t *testing.T) {
	out := captureOutput(t, LevelWarn, func() {
		Debug("debug message")
		Info("info message")
		Warn("warn message %d", 1)
		Error("error message %s", "x")
	})

	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("Expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARN] warn message 1") {
		t.Errorf("Expected warn line, got %q", out)
	}
	if !strings.Contains(out, "[ERROR] error message x") {
		t.Errorf("Expected error line, got %q", out)
	}
}

func TestDefaultLogger(t *testing.T) {
	out := captureOutput(t, LevelDebug, func() {
		logger := Default()
		logger.Debugf("walk %s", "/tmp")
		logger.Infof("done")
		logger.Warnf("skipped %s", "/tmp/x")
		logger.Errorf("failed")
	})

	for _, want := range []string{"[DEBUG] walk /tmp", "[INFO] done", "[WARN] skipped /tmp/x", "[ERROR] failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got %q", want, out)
		}
	}
}

func TestDiscardLogger(t *testing.T) {
	out := captureOutput(t, LevelDebug, func() {
		logger := Discard()
		logger.Debugf("x")
		logger.Infof("x")
		logger.Warnf("x")
		logger.Errorf("x")
	})

	if out != "" {
		t.Errorf("Expected no output from Discard logger, got %q", out)
	}
}

func TestPrintfAndPrintln(t *testing.T) {
	out := captureOutput(t, LevelError, func() {
		Printf("always %d", 1)
		Println("always", 2)
	})

	if !strings.Contains(out, "always 1") || !strings.Contains(out, "always 2") {
		t.Errorf("Expected pass-through output, got %q", out)
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LogLevel(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
