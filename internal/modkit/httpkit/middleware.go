package httpkit

import (
	"net/http"
	"time"

	"copsoq/internal/platform/net/middleware"
)

const (
	requestTimeout = 30 * time.Second
	slowRequest    = 750 * time.Millisecond
)

// CommonStack is the middleware every versioned API route runs behind
// no origins means any origin may call the API
func CommonStack(origins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(slowRequest),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins, MaxAge: 300}),
		middleware.NoCache(),
		middleware.StripSlashes(),
		middleware.Compress(),
		middleware.Timeout(requestTimeout),
	}
}
