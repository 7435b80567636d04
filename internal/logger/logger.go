// Package logger provides leveled printf-style logging for pgmon. The
// dashboard owns the terminal while it runs, so log output goes to stderr
// and debug chatter stays off unless PGMON_DEBUG is set.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger is the logging contract used across pgmon packages. All methods
// take a format string and arguments, like fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// debugEnabled reports whether debug output was requested, either via the
// PGMON_DEBUG environment variable or the --verbose flag (which sets it).
func debugEnabled() bool {
	return os.Getenv("PGMON_DEBUG") != ""
}

// envLogger logs to stderr, tagging each message with a component prefix.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a stderr logger for one component. The prefix is
// prepended to every message, e.g. "[session]" or "[pg]".
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if debugEnabled() {
		l.emit("", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.emit("", format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.emit("WARN: ", format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.emit("ERROR: ", format, args...)
}

func (l *envLogger) emit(level, format string, args ...interface{}) {
	log.Printf(l.prefix+" "+level+format, args...)
}

// noopLogger discards everything.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is one captured log entry.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages in memory so tests can assert on
// what was logged.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates an in-memory capturing logger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args...) }

// HasLevel reports whether any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear drops all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
