package logger

import (
	"fmt"
	"io"
)

// SweepLogger prefixes every message with the label of the sweep it belongs to,
// e.g. "sweep random/LLRB: Epoch: 1. Number of values: 1,000"
type SweepLogger struct {
	base  Logger
	label string
}

// NewSweepLogger wraps base; an empty label marks the driver itself
func NewSweepLogger(base Logger, label string) Logger {
	return &SweepLogger{base: base, label: label}
}

func (l *SweepLogger) Log(level LogLevel, message string, args ...interface{}) {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	if l.label == "" {
		message = fmt.Sprintf("driver: %s", message)
	} else {
		message = fmt.Sprintf("sweep %s: %s", l.label, message)
	}
	l.base.Log(level, message)
}

// Error logs an error message
func (l *SweepLogger) Error(format string, args ...interface{}) {
	l.Log(LevelError, format, args...)
}

// Warn logs a warning message
func (l *SweepLogger) Warn(format string, args ...interface{}) {
	l.Log(LevelWarn, format, args...)
}

// Info logs an informational message
func (l *SweepLogger) Info(format string, args ...interface{}) {
	l.Log(LevelInfo, format, args...)
}

// Debug logs a debug message
func (l *SweepLogger) Debug(format string, args ...interface{}) {
	l.Log(LevelDebug, format, args...)
}

// Trace logs a trace message
func (l *SweepLogger) Trace(format string, args ...interface{}) {
	l.Log(LevelTrace, format, args...)
}

func (l *SweepLogger) GetLevel() LogLevel          { return l.base.GetLevel() }
func (l *SweepLogger) SetLevel(level LogLevel)     { l.base.SetLevel(level) }
func (l *SweepLogger) SetOutput(w io.Writer)       { l.base.SetOutput(w) }
func (l *SweepLogger) GetLastMessage() *LogMessage { return l.base.GetLastMessage() }

func (l *SweepLogger) Clone() Logger {
	return NewSweepLogger(l.base.Clone(), l.label)
}
