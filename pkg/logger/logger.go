// Package logger owns the process-wide zerolog logger.
//
// Call Init once from main; everything else asks for a component logger:
//
//	log := logger.Component("authctx")
//	log.Info().Str("scope", scope).Msg("logged out")
//
// Levels, lowest first: trace, debug, info, warn, error.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures Init.
type Options struct {
	// Level is the minimum level; unknown values fall back to info.
	Level string
	// Pretty switches to coloured console output for local development.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service, when set, is stamped on every event.
	Service string
}

var (
	mu       sync.RWMutex
	root     zerolog.Logger
	ready    bool
	initOnce sync.Once
)

// Init builds the root logger. Only the first call has any effect; later
// calls return the logger built by the first.
func Init(opts Options) zerolog.Logger {
	initOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		level := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(level)

		b := zerolog.New(writer(opts)).Level(level).With().Timestamp().Caller()
		if opts.Service != "" {
			b = b.Str("service", opts.Service)
		}

		mu.Lock()
		root, ready = b.Logger(), true
		mu.Unlock()
	})
	return Get()
}

// Get returns the root logger. It panics before Init.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !ready {
		panic("logger: Get called before Init")
	}
	return root
}

// Component returns a child logger tagged with component=name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset forgets the root logger so tests can Init again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root, ready = zerolog.Logger{}, false
	initOnce = sync.Once{}
}

func writer(opts Options) io.Writer {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return out
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
