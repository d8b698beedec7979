// Package logger defines the four-level logging capability used across the
// library and its zerolog-backed default. Implementations are selected
// through a process-wide factory or injected per facade instance; configure
// the factory once at startup.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the minimal logging surface the library depends on.
type Logger interface {
	Error(msg string)
	Info(msg string)
	Warn(msg string)
	Debug(msg string)
}

// zeroLogger adapts a zerolog.Logger to the Logger capability.
type zeroLogger struct {
	log zerolog.Logger
}

func (z *zeroLogger) Error(msg string) { z.log.Error().Msg(msg) }
func (z *zeroLogger) Info(msg string)  { z.log.Info().Msg(msg) }
func (z *zeroLogger) Warn(msg string)  { z.log.Warn().Msg(msg) }
func (z *zeroLogger) Debug(msg string) { z.log.Debug().Msg(msg) }

// NewZerolog returns a Logger that writes through the global zerolog logger
// with the given component field.
func NewZerolog(component string) Logger {
	return &zeroLogger{log: log.With().Str("component", component).Logger()}
}

// InitLogger sets up the global zerolog console writer. Debug enables
// debug-level output.
func InitLogger(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// SetLogOutput redirects the global zerolog logger to w.
func SetLogOutput(w io.Writer) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Factory produces Logger instances for newly constructed facades.
type Factory func() Logger

var (
	factoryMu sync.Mutex
	factory   Factory = defaultFactory
)

func defaultFactory() Logger {
	return NewZerolog("netkit")
}

// SetFactory installs a custom logger factory. Every Logger created through
// New afterwards comes from f until ResetFactory is called. Instances
// already handed out are unaffected.
func SetFactory(f Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = f
}

// ResetFactory restores the zerolog-backed default factory.
func ResetFactory() {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = defaultFactory
}

// New creates a Logger through the currently installed factory.
func New() Logger {
	factoryMu.Lock()
	f := factory
	factoryMu.Unlock()
	return f()
}
