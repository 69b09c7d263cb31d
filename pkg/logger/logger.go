package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger resolves slog.Default at call time, so package-level loggers pick
// up the handler installed by Init even when created before it.
type Logger struct {
	attrs []any
}

// Init installs the process-wide slog handler. format is "json" or "text".
func Init(level, format string) {
	InitWriter(os.Stderr, level, format)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level, format string) {
	options := &slog.HandlerOptions{Level: LevelFromString(level)}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	slog.SetDefault(slog.New(handler))
}

// New returns a logger tagged with the given component name.
func New(component string) *Logger {
	return &Logger{attrs: []any{"component", component}}
}

func (l *Logger) inner() *slog.Logger { return slog.Default().With(l.attrs...) }

func (l *Logger) Info(msg string, args ...any)  { l.inner().Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner().Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.inner().Error(msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.inner().Debug(msg, args...) }

func (l *Logger) With(args ...any) *Logger {
	attrs := make([]any, 0, len(l.attrs)+len(args))
	attrs = append(attrs, l.attrs...)
	return &Logger{attrs: append(attrs, args...)}
}

// LevelFromString maps a config value to a slog level; unknown values mean info.
func LevelFromString(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
