// Package swaggerkit serves the generated API docs and the swagger UI
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "copsoq/internal/platform/net/http"
	docs "copsoq/internal/services/api/docs"
)

const (
	// APIBase is the server url written into the served spec
	APIBase = "/api/v1"
	// DocsPath is where the UI lives
	DocsPath = "/api/docs"
)

// Mount serves DocsPath/doc.json and the UI when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusMovedPermanently)
	})
	r.Get(DocsPath+"/doc.json", docJSON)
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
