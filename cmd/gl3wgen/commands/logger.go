package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/zhedye/gl3w-Single-File/logging"
)

// ZerologAdapter implements logging.Logger on top of zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug implements logging.Logger.
func (z *ZerologAdapter) Debug(msg string, attrs ...any) {
	withAttrs(z.logger.Debug(), attrs).Msg(msg)
}

// Info implements logging.Logger.
func (z *ZerologAdapter) Info(msg string, attrs ...any) {
	withAttrs(z.logger.Info(), attrs).Msg(msg)
}

// Warn implements logging.Logger.
func (z *ZerologAdapter) Warn(msg string, attrs ...any) {
	withAttrs(z.logger.Warn(), attrs).Msg(msg)
}

// Error implements logging.Logger.
func (z *ZerologAdapter) Error(msg string, attrs ...any) {
	withAttrs(z.logger.Error(), attrs).Msg(msg)
}

// With implements logging.Logger.
func (z *ZerologAdapter) With(attrs ...any) logging.Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(attrs); i += 2 {
		ctx = ctx.Interface(fmt.Sprint(attrs[i]), attrs[i+1])
	}
	return &ZerologAdapter{logger: ctx.Logger()}
}

var _ logging.Logger = (*ZerologAdapter)(nil)

// withAttrs adds key/value pairs to e. A trailing key without a value is dropped.
func withAttrs(e *zerolog.Event, attrs []any) *zerolog.Event {
	for i := 0; i+1 < len(attrs); i += 2 {
		e = e.Interface(fmt.Sprint(attrs[i]), attrs[i+1])
	}
	return e
}

func parseLogLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("log level %q not recognized", level)
	}
}

// newLogger builds the CLI logger. format is "console" or "json".
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch strings.ToLower(format) {
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q not recognized", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
