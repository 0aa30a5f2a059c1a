// Package middleware collects the HTTP middleware every API route runs behind
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID honours an inbound X-Request-Id or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// NoCache marks every response as uncacheable
func NoCache() Middleware { return chimw.NoCache }

// StripSlashes routes /laudos/ as /laudos
func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips JSON answers
func Compress() Middleware { return chimw.Compress(flate.BestSpeed, "application/json") }

// CORSOptions is the part of go-chi/cors callers configure
// empty AllowedOrigins means any origin
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows browser clients to call the API
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         o.MaxAge,
	})
}
