// Package module wires laudos into the API
package module

import (
	"copsoq/internal/modkit"
	"copsoq/internal/modkit/httpkit"
	laudosdom "copsoq/internal/services/laudos/domain"
	laudoshttp "copsoq/internal/services/laudos/http"
	laudosrepo "copsoq/internal/services/laudos/repo"
	laudossvc "copsoq/internal/services/laudos/service"
)

// Ports is what laudos publishes to other modules
type Ports struct {
	Laudos laudosdom.ServicePort
}

// Module serves /laudos
type Module struct {
	modkit.Base
	svc laudossvc.Service
}

// New builds the laudos service over deps.PG and, when snapshots are on
// and clickhouse is configured, a snapshot sink
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	log := deps.Log.With().Str("component", "laudos").Logger()
	svcOpts := []laudossvc.Option{laudossvc.WithLogger(&log)}
	if o.Snapshots {
		if sink := laudosrepo.NewCHSink(deps.CH); sink != nil {
			svcOpts = append(svcOpts, laudossvc.WithSink(sink))
		}
	}

	return &Module{
		Base: modkit.NewBase("laudos", "/laudos", opts...),
		svc:  laudossvc.New(deps.PG, laudosrepo.NewPG(), svcOpts...),
	}
}

// Ports returns the service behind the routes
func (m *Module) Ports() any { return Ports{Laudos: m.svc} }

// MountRoutes mounts the laudos endpoints under Prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(sub httpkit.Router) { laudoshttp.Register(sub, m.svc) })
}
