// Package modkit describes API modules and the shared wiring they receive
package modkit

import (
	"net/http"
	"strings"

	"copsoq/internal/modkit/httpkit"
	"copsoq/internal/modkit/module"
	"copsoq/internal/modkit/repokit"
	"copsoq/internal/platform/config"
	"copsoq/internal/platform/logger"
	"copsoq/internal/platform/store"
)

// Deps holds the dependencies handed to every module
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log      logger.Logger
	Cfg      config.Conf
	PG       repokit.TxRunner
	CH       store.Clickhouse
	Registry *module.Registry
}

// Module is what the API mounts
type Module interface {
	Name() string
	Prefix() string
	// Ports is published in the registry under Name for other modules
	Ports() any
	MountRoutes(r httpkit.Router)
}

// Option adjusts a Base
type Option func(*Base)

// WithName overrides the module name
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// WithPrefix overrides the mount path
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = prefix }
}

// WithMiddlewares appends per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// Base carries name, prefix and middleware for a module to embed
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
}

// NewBase builds a Base from defaults then opts
func NewBase(name, prefix string, opts ...Option) Base {
	b := Base{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Name panics when blank, which is a wiring bug
func (b Base) Name() string {
	if strings.TrimSpace(b.name) == "" {
		panic("modkit: module name is required")
	}
	return b.name
}

// Prefix is the mount path with one leading slash and no trailing one
func (b Base) Prefix() string {
	p := "/" + strings.Trim(strings.TrimSpace(b.prefix), "/")
	if p == "/" {
		panic("modkit: module " + b.name + " needs a prefix")
	}
	return p
}

// Middlewares returns a copy of the module middleware
func (b Base) Middlewares() []func(http.Handler) http.Handler {
	return append([]func(http.Handler) http.Handler(nil), b.mw...)
}

// Mount scopes register under Prefix behind the module middleware
func (b Base) Mount(r httpkit.Router, register func(httpkit.Router)) {
	r.Route(b.Prefix(), func(sub httpkit.Router) {
		if len(b.mw) > 0 {
			sub.Use(b.mw...)
		}
		register(sub)
	})
}
