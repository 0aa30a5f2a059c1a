// Package httpkit is the routing surface modules build on, so service code
// never imports the platform transport directly
package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	phttp "copsoq/internal/platform/net/http"
)

type (
	// Router is the mount surface
	Router = phttp.Router
	// Envelope is the response body, named here for the docs
	Envelope = phttp.Envelope
	// Response lets a handler pick its status
	Response = phttp.Response
)

// Created answers 201 with data
func Created(data any) Response { return phttp.Created(data) }

// Param is the named path parameter of the matched route
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }

// Get mounts a body-less handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.Call(h))
}

// PostJSON mounts a handler whose body is bound and validated into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSON(h))
}

// MountAPI scopes mount under /api/<version> behind mw
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
