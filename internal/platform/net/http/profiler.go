package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes pprof under prefix, e.g. /debug/pprof/
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, middleware.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
