package logger

import "io"

// Logger is the diagnostics sink used by the harness and its drivers
type Logger interface {
	Log(level LogLevel, message string, args ...interface{})
	Error(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	GetLevel() LogLevel
	SetLevel(level LogLevel)
	SetOutput(w io.Writer)
	GetLastMessage() *LogMessage
	Clone() Logger
}
