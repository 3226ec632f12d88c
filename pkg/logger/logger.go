package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rahuljangu01/NEXUS/config"
)

// Logger wraps slog so the mode (dev text vs prod JSON) is decided once,
// from config, instead of at every call site. The zero value logs through
// slog.Default.
type Logger struct {
	l *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := slog.LevelInfo
	if cfg.LoggerMode.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.LoggerMode.Level)); err != nil {
			return nil, err
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LoggerMode.Prod {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &Logger{l: slog.New(handler)}, nil
}

func (lg Logger) base() *slog.Logger {
	if lg.l == nil {
		return slog.Default()
	}
	return lg.l
}

func (lg Logger) Debug(msg string, args ...any) { lg.base().Debug(msg, args...) }
func (lg Logger) Info(msg string, args ...any)  { lg.base().Info(msg, args...) }
func (lg Logger) Warn(msg string, args ...any)  { lg.base().Warn(msg, args...) }
func (lg Logger) Error(msg string, args ...any) { lg.base().Error(msg, args...) }

func (lg Logger) Errorf(format string, args ...any) {
	lg.base().Error(fmt.Sprintf(format, args...))
}

func (lg Logger) Warnf(format string, args ...any) {
	lg.base().Warn(fmt.Sprintf(format, args...))
}
