package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger provides verbosity-gated diagnostics and lightweight timing helpers.
type Logger struct {
	zl        zerolog.Logger
	Verbosity int
}

// New writes human readable diagnostics to writer. Verbosity 0 shows only
// warnings and errors, 1 adds per-file actions, 2 per-directory detail and
// 3 or more everything.
func New(writer io.Writer, verbosity int) Logger {
	if writer == nil {
		return Nop()
	}
	output := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(writer),
		TimeFormat: "15:04:05",
	}
	zl := zerolog.New(output).
		Level(levelFor(verbosity)).
		With().
		Timestamp().
		Logger()
	return Logger{zl: zl, Verbosity: verbosity}
}

// Nop discards everything.
func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func (l Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l Logger) Error() *zerolog.Event { return l.zl.Error() }

func (l Logger) Infof(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if l.Verbosity < 2 {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
