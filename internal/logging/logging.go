package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// LogLevel represents the severity of a log message
type LogLevel int32

const (
	// LevelDebug is the debug log level
	LevelDebug LogLevel = iota
	// LevelInfo is the info log level
	LevelInfo
	// LevelWarn is the warning log level
	LevelWarn
	// LevelError is the error log level
	LevelError
)

// Logger is the logging collaborator injected into components that report
// non-fatal conditions.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

var (
	currentLevel atomic.Int32
	levelOnce    sync.Once
	std          = log.New(os.Stderr, "", log.LstdFlags)
)

// parseLevel maps environment values to a level
func parseLevel(debug, level string) LogLevel {
	switch strings.ToLower(debug) {
	case "1", "true", "yes", "on":
		return LevelDebug
	}

	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// initLevel initializes the log level from environment variables
func initLevel() {
	levelOnce.Do(func() {
		currentLevel.Store(int32(parseLevel(os.Getenv("DEBUG"), os.Getenv("LOG_LEVEL"))))
	})
}

// GetLevel returns the current log level
func GetLevel() LogLevel {
	initLevel()
	return LogLevel(currentLevel.Load())
}

// SetLevel overrides the level taken from the environment
func SetLevel(level LogLevel) {
	initLevel()
	currentLevel.Store(int32(level))
}

// SetOutput redirects all log output
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return GetLevel() <= LevelDebug
}

// Debug logs a debug message (only if DEBUG=true or LOG_LEVEL=debug)
func Debug(format string, args ...interface{}) {
	if GetLevel() <= LevelDebug {
		std.Printf("[DEBUG] "+format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if GetLevel() <= LevelInfo {
		std.Printf("[INFO] "+format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if GetLevel() <= LevelWarn {
		std.Printf("[WARN] "+format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if GetLevel() <= LevelError {
		std.Printf("[ERROR] "+format, args...)
	}
}

// Fatal logs an error message and exits
func Fatal(format string, args ...interface{}) {
	std.Fatalf("[FATAL] "+format, args...)
}

// Printf is a pass-through for messages that should always print
func Printf(format string, args ...interface{}) {
	std.Printf(format, args...)
}

// Println is a pass-through for messages that should always print
func Println(args ...interface{}) {
	std.Println(args...)
}

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// packageLogger adapts the package-level functions to Logger
type packageLogger struct{}

func (packageLogger) Debugf(format string, args ...interface{}) { Debug(format, args...) }
func (packageLogger) Infof(format string, args ...interface{})  { Info(format, args...) }
func (packageLogger) Warnf(format string, args ...interface{})  { Warn(format, args...) }
func (packageLogger) Errorf(format string, args ...interface{}) { Error(format, args...) }

// Default returns a Logger backed by the package-level functions
func Default() Logger {
	return packageLogger{}
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...interface{}) {}
func (discardLogger) Infof(string, ...interface{})  {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Errorf(string, ...interface{}) {}

// Discard returns a Logger that drops every message
func Discard() Logger {
	return discardLogger{}
}
