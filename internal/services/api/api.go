// Package api assembles the HTTP API from its modules
package api

import (
	"copsoq/internal/core/version"
	"copsoq/internal/platform/config"
	"copsoq/internal/platform/logger"
	phttp "copsoq/internal/platform/net/http"
	"copsoq/internal/platform/store"

	"copsoq/internal/modkit"
	"copsoq/internal/modkit/httpkit"
	"copsoq/internal/modkit/module"
	"copsoq/internal/modkit/swaggerkit"

	metamod "copsoq/internal/services/api/meta/module"
	laudosmod "copsoq/internal/services/laudos/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts docs, the profiler and /api/v1 with every module onto r
// and returns the registry the modules published their ports in
func Mount(r phttp.Router, opt Options) *module.Registry {
	deps := modkit.Deps{
		Cfg:      opt.Config,
		Log:      *logger.Get(),
		Registry: module.NewRegistry(),
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	mods := []modkit.Module{
		metamod.New(deps),
		laudosmod.New(deps, laudosmod.FromConfig(deps.Cfg)),
	}

	// serve the running build version in the docs
	swaggerkit.Register(func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	origins := opt.Config.Prefix("CORE_API_").MayCSV("CORS_ORIGINS", nil)
	httpkit.MountAPIV1(r, httpkit.CommonStack(origins...), func(api httpkit.Router) {
		for _, m := range mods {
			deps.Registry.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	return deps.Registry
}
