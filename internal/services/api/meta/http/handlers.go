// Package http serves liveness, readiness and build metadata
package http

import (
	"context"
	"net/http"
	"time"

	"copsoq/internal/core/catalog"
	"copsoq/internal/core/risk"
	"copsoq/internal/core/version"
	"copsoq/internal/modkit/httpkit"
)

// Deps are what the meta endpoints report on
// PG and CH are probed when they implement Pinger; nil is skipped.
// A nil Modules lists nothing and a nil Domains serves the embedded catalog
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Modules     func() []string
	Domains     func(context.Context) ([]catalog.Domain, error)
}

type handlers struct{ d Deps }

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	h := handlers{d: d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/instrument", h.instrument)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.d.ServiceName,
		Started: stamp(h.d.StartedAt),
		Now:     stamp(time.Now()),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness of postgres and clickhouse
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	pg := probe(ctx, "pg", h.d.PG)
	ch := probe(ctx, "ch", h.d.CH)
	return ReadyResponse{
		Status: overall(pg, ch),
		Checks: []ReadyCheck{pg, ch},
		Now:    stamp(time.Now()),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build stamp
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h handlers) version(*http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Uptime and mounted modules
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h handlers) service(*http.Request) (any, error) {
	mods := []string{}
	if h.d.Modules != nil {
		mods = append(mods, h.d.Modules()...)
	}
	return ServiceResponse{
		Name:    h.d.ServiceName,
		Started: stamp(h.d.StartedAt),
		Uptime:  int64(time.Since(h.d.StartedAt) / time.Second),
		Modules: mods,
	}, nil
}

// swagger:route GET /meta/instrument Meta metaInstrument
// @Summary Domain table and risk cut points
// @Tags Meta
// @Produce json
// @Success 200 {object} InstrumentResponse "ok"
// @Router /meta/instrument [get]
func (h handlers) instrument(r *http.Request) (any, error) {
	table, n := catalog.All(), catalog.Count()
	if h.d.Domains != nil {
		ds, err := h.d.Domains(r.Context())
		if err != nil {
			return nil, err
		}
		table, n = ds, len(ds)
	}
	info := catalog.Info()
	return InstrumentResponse{
		Instrument: info.Instrument,
		Version:    info.Version,
		Domains:    n,
		LowerCut:   risk.LowerCut,
		UpperCut:   risk.UpperCut,
		Table:      table,
		Build:      version.Info(),
	}, nil
}
