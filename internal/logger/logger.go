// Package logger is the leveled file logger behind every package in
// partsync. The terminal belongs to the TUI, so nothing is written anywhere
// until a log file is configured.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level orders messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel reads a log_level setting. Case and surrounding space are
// ignored and "warning" is taken as warn. Unknown names yield LevelInfo and
// an error.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn, nil
	}
	for lvl, n := range levelNames {
		if n == name {
			return Level(lvl), nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
}

// Logger writes "[LEVEL] message" lines at or above its level.
type Logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
}

// Default receives the package-level calls.
var Default = New()

// New creates a logger from PARTSYNC_LOG_LEVEL and PARTSYNC_LOG_FILE, which
// apply before the config file is read. An unusable file is ignored.
func New() *Logger {
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(io.Discard, "", log.LstdFlags),
	}

	if levelStr := os.Getenv("PARTSYNC_LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			l.level = level
		}
	}

	if logFile := os.Getenv("PARTSYNC_LOG_FILE"); logFile != "" {
		_ = l.SetFile(logFile)
	}

	return l
}

// SetFile redirects output to the named file, closing any previous file.
// An empty path discards output.
func (l *Logger) SetFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closeFile()
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	l.file = f
	l.logger.SetOutput(f)
	return nil
}

// Configure applies the resolved log_level and log_file settings to the
// default logger.
func Configure(level, file string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	Default.SetLevel(lvl)
	return Default.SetFile(file)
}

// Close releases the log file. Later messages are discarded.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeFile()
}

// closeFile must be called with mu held.
func (l *Logger) closeFile() error {
	l.logger.SetOutput(io.Discard)
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput sends output to w. A file opened by SetFile stays open until
// Close.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log(LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log(LevelError, format, v...)
}

func (l *Logger) log(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

// Debug logs to Default. Callers prefix messages with their component,
// e.g. "admin: ...".
func Debug(format string, v ...interface{}) {
	Default.Debug(format, v...)
}

func Info(format string, v ...interface{}) {
	Default.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	Default.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	Default.Error(format, v...)
}

// Close closes the default logger's file.
func Close() error {
	return Default.Close()
}
