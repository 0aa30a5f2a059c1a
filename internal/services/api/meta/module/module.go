// Package module wires the meta endpoints into the API
package module

import (
	"context"
	"time"

	"copsoq/internal/core/catalog"
	"copsoq/internal/core/version"
	"copsoq/internal/modkit"
	"copsoq/internal/modkit/httpkit"
	"copsoq/internal/modkit/module"
	metahttp "copsoq/internal/services/api/meta/http"
	laudosdom "copsoq/internal/services/laudos/domain"
)

// DomainSource is the registry entry the instrument endpoint reads from
const DomainSource = "laudos"

// Module serves /meta
type Module struct {
	modkit.Base
	deps      metahttp.Deps
	startedAt time.Time
}

// New builds the meta module; registry lookups happen per request so modules
// registered after meta are still seen
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{
		Base:      modkit.NewBase("meta", "/meta", opts...),
		startedAt: time.Now(),
	}
	m.deps = metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   m.startedAt,
		Modules:     deps.Registry.Names,
		Domains: func(ctx context.Context) ([]catalog.Domain, error) {
			if l, ok := module.Find[laudosdom.DomainLister](deps.Registry, DomainSource); ok {
				return l.Domains(ctx)
			}
			return catalog.All(), nil
		},
	}
	// a nil interface keeps the ready check at skipped
	if deps.PG != nil {
		m.deps.PG = deps.PG
	}
	if deps.CH != nil {
		m.deps.CH = deps.CH
	}
	return m
}

// Ports has nothing to share
func (m *Module) Ports() any { return nil }

// MountRoutes mounts the meta endpoints under Prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(sub httpkit.Router) { metahttp.Register(sub, m.deps) })
}
