package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int32

const (
	// LevelError represents error level messages
	LevelError LogLevel = 0
	// LevelWarn represents warning level messages
	LevelWarn LogLevel = 1
	// LevelInfo represents informational messages, e.g. epoch progress
	LevelInfo LogLevel = 2
	// LevelDebug represents debug messages
	LevelDebug LogLevel = 3
	// LevelTrace represents trace messages with high detail
	LevelTrace LogLevel = 4
)

// String converts a LogLevel to a string representation
func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERR"
	case LevelWarn:
		return "WRN"
	case LevelInfo:
		return "INF"
	case LevelDebug:
		return "DBG"
	case LevelTrace:
		return "TRA"
	default:
		return "???"
	}
}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorError = "\033[31m"
	colorWarn  = "\033[33m"
	colorInfo  = "\033[37m"
	colorDebug = "\033[34m"
	colorTrace = "\033[35m"
)

// PlaneLogger prints timestamped, leveled lines with optional color support
type PlaneLogger struct {
	level        atomic.Int32               // log level
	useColors    bool                       // whether to use colors in output
	storeLastMsg bool                       // whether to store the last message
	lastMsg      atomic.Pointer[LogMessage] // last message printed

	mu  sync.Mutex
	out io.Writer
}

// LogMessage stores information about a log message
type LogMessage struct {
	Level   LogLevel
	Message string
	Time    time.Time
}

// NewPlaneLogger creates a new logger with the specified log level writing to stdout
func NewPlaneLogger(level LogLevel, storeLastMessage bool) Logger {
	return newPlaneLogger(level, storeLastMessage)
}

func newPlaneLogger(level LogLevel, storeLastMessage bool) *PlaneLogger {
	// Colors only when stdout is a terminal
	useColors := false
	if fileInfo, err := os.Stdout.Stat(); err == nil {
		useColors = (fileInfo.Mode() & os.ModeCharDevice) != 0
	}

	logger := &PlaneLogger{
		useColors:    useColors,
		storeLastMsg: storeLastMessage,
		out:          os.Stdout,
	}
	logger.level.Store(int32(level))
	return logger
}

// GetLevel returns the current log level
func (l *PlaneLogger) GetLevel() LogLevel {
	return LogLevel(l.level.Load())
}

// SetLevel sets the log level
func (l *PlaneLogger) SetLevel(level LogLevel) {
	l.level.Store(int32(level))
}

// SetOutput redirects log lines to w; colors are disabled for anything but stdout
func (l *PlaneLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w != os.Stdout {
		l.useColors = false
	}
	l.out = w
}

// levelToColor returns the ANSI color code for the given log level
func (l *PlaneLogger) levelToColor(level LogLevel) string {
	if !l.useColors {
		return ""
	}

	switch level {
	case LevelError:
		return colorError
	case LevelWarn:
		return colorWarn
	case LevelInfo:
		return colorInfo
	case LevelDebug:
		return colorDebug
	case LevelTrace:
		return colorTrace
	default:
		return ""
	}
}

// print writes an already formatted message
func (l *PlaneLogger) print(level LogLevel, message string) {
	// If current level is lower than the message level, don't log
	if l.GetLevel() < level {
		return
	}

	now := time.Now()
	prefix := fmt.Sprintf("%s  %s:", now.Format("2006-01-02 15:04:05.000000"), level.String())

	l.mu.Lock()
	color := l.levelToColor(level)
	resetColor := ""
	if color != "" {
		resetColor = colorReset
	}
	fmt.Fprintf(l.out, "%s%s %s%s\n", color, prefix, message, resetColor)
	l.mu.Unlock()

	if l.storeLastMsg {
		l.lastMsg.Store(&LogMessage{
			Level:   level,
			Message: message,
			Time:    now,
		})
	}
}

// Log implements the logger.Logger interface
func (l *PlaneLogger) Log(level LogLevel, message string, args ...interface{}) {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	l.print(level, message)
}

// Error logs an error message
func (l *PlaneLogger) Error(format string, args ...interface{}) {
	l.Log(LevelError, format, args...)
}

// Warn logs a warning message
func (l *PlaneLogger) Warn(format string, args ...interface{}) {
	l.Log(LevelWarn, format, args...)
}

// Info logs an informational message
func (l *PlaneLogger) Info(format string, args ...interface{}) {
	l.Log(LevelInfo, format, args...)
}

// Debug logs a debug message
func (l *PlaneLogger) Debug(format string, args ...interface{}) {
	l.Log(LevelDebug, format, args...)
}

// Trace logs a trace message
func (l *PlaneLogger) Trace(format string, args ...interface{}) {
	l.Log(LevelTrace, format, args...)
}

// GetLastMessage returns the last logged message if storage is enabled
func (l *PlaneLogger) GetLastMessage() *LogMessage {
	if !l.storeLastMsg {
		return nil
	}

	return l.lastMsg.Load()
}

// Clone returns a logger with the same level, output and storage settings
func (l *PlaneLogger) Clone() Logger {
	clone := newPlaneLogger(l.GetLevel(), l.storeLastMsg)

	l.mu.Lock()
	clone.out = l.out
	clone.useColors = l.useColors
	l.mu.Unlock()

	return clone
}
