package calculation

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Level orders log severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
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
		return "unknown"
	}
}

// ParseLevel maps a level name to a Level. Unknown names fall back to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// StdLogger writes leveled lines through the standard library logger.
type StdLogger struct {
	out *log.Logger
	min Level
}

// NewStdLogger creates a logger writing messages at or above min to w.
func NewStdLogger(w io.Writer, min Level) *StdLogger {
	return &StdLogger{out: log.New(w, "", log.LstdFlags), min: min}
}

func (l *StdLogger) logf(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	l.out.Printf("[%s] %s", strings.ToUpper(level.String()), fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
