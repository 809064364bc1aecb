package logger

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type Logger struct {
	l *slog.Logger
}

// New writes colored text for dev and local environments and JSON anywhere else.
func New(w io.Writer, env string) *Logger {
	if env == "dev" || env == "local" {
		return &Logger{l: slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC3339,
		}))}
	}

	return &Logger{l: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{l: l.l.With(args...)}
}

// Std adapts the logger for consumers that want a *log.Logger, e.g. http.Server.ErrorLog.
func (l *Logger) Std() *log.Logger {
	return slog.NewLogLogger(l.l.Handler(), slog.LevelError)
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}
