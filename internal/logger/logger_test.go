package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"WARN", LevelWarn, false},
		{"error", LevelError, false},
		{" Warning ", LevelWarn, false},
		{"invalid", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for input %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tt.input, err)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("expected %v, got %v for input %q", tt.expected, got, tt.input)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("expected WARN, got %s", LevelWarn.String())
	}
	if Level(42).String() != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", Level(42).String())
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Error("messages below WARN should not be logged")
	}
	if !strings.Contains(output, "[WARN] warn message") {
		t.Errorf("warn message missing from output: %q", output)
	}
}

func TestLogger_EnvVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partsync.log")
	t.Setenv("PARTSYNC_LOG_LEVEL", "debug")
	t.Setenv("PARTSYNC_LOG_FILE", path)

	l := New()
	defer l.Close()

	if l.level != LevelDebug {
		t.Errorf("expected debug level from env var, got %v", l.level)
	}

	l.Debug("hello %d", 7)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello 7") {
		t.Errorf("log file should contain the message, got %q", content)
	}
}

func TestLogger_SetFileEmptyDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "first.log")
	l := New()
	if err := l.SetFile(path); err != nil {
		t.Fatalf("SetFile failed: %v", err)
	}
	if err := l.SetFile(""); err != nil {
		t.Fatalf("SetFile(\"\") failed: %v", err)
	}
	l.Error("dropped")

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "dropped") {
		t.Error("message should be discarded after SetFile(\"\")")
	}
	if err := l.Close(); err != nil {
		t.Errorf("unexpected error closing logger: %v", err)
	}
}

func TestConfigure(t *testing.T) {
	orig := Default
	defer func() { Default = orig }()
	Default = New()

	path := filepath.Join(t.TempDir(), "configured.log")
	if err := Configure("error", path); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	defer Close()

	Warn("not written")
	Error("written")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "not written") {
		t.Error("warn should be filtered at error level")
	}
	if !strings.Contains(string(content), "[ERROR] written") {
		t.Errorf("error message missing, got %q", content)
	}

	if err := Configure("loud", ""); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestLogger_CloseDiscardsLaterMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.log")
	l := New()
	if err := l.SetFile(path); err != nil {
		t.Fatalf("SetFile failed: %v", err)
	}
	l.Info("before")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	l.Info("after")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "before") || strings.Contains(string(content), "after") {
		t.Errorf("unexpected log content %q", content)
	}
}
