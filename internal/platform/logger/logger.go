// Package logger owns the process wide zerolog root and request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"copsoq/internal/platform/config/raw"
)

// Logger is the logging type used across the module
type Logger = zerolog.Logger

// Options shapes the root logger
type Options struct {
	Level   string // zerolog level name, default info
	Format  string // json or console
	Service string
	Caller  bool
	Writer  io.Writer
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE and LOG_CALLER
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:   env.Get("LEVEL", "info"),
		Format:  strings.ToLower(env.Get("FORMAT", "json")),
		Service: env.Get("SERVICE", ""),
		Caller:  env.GetBool("CALLER", false),
	}
}

var (
	once sync.Once
	root zerolog.Logger
)

// Init builds the root once; later calls are ignored
func Init(opt Options) {
	once.Do(func() { root = build(opt) })
}

// Get returns the root, initializing it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return &root
}

// New builds a standalone logger from opt, leaving the root untouched
func New(opt Options) Logger { return build(opt) }

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

func build(opt Options) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opt.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	b := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		b = b.Str("service", opt.Service)
	}
	if opt.Caller {
		b = b.Caller()
	}
	return b.Logger()
}

// C is the root enriched with the request id chi stored on ctx
func C(ctx context.Context) *Logger {
	l := Get().With()
	if id := chimw.GetReqID(ctx); id != "" {
		l = l.Str("request_id", id)
	}
	out := l.Logger()
	return &out
}

// Named is the root tagged with a component
func Named(component string) *Logger {
	out := Get().With().Str("component", component).Logger()
	return &out
}
