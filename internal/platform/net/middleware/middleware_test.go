package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "copsoq/internal/platform/errors"
	pnet "copsoq/internal/platform/net"
	kit "copsoq/internal/platform/testkit"
)

func chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestRecoverJSON(t *testing.T) {
	t.Parallel()

	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("catalog corrupted")
	}), RequestID(), RecoverJSON)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/laudos/domains", nil)
	req.Header.Set("X-Request-Id", "rid-42")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var env pnet.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.RequestID != "rid-42" || strings.Contains(env.Error, "catalog") {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRecoverJSON_AbortHandlerPropagates(t *testing.T) {
	t.Parallel()

	h := RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))
	kit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestAccessLog_PassesThrough(t *testing.T) {
	t.Parallel()

	h := chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("x"))
	}), AccessLog(time.Nanosecond))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot || rec.Body.String() != "x" {
		t.Fatalf("wrapped writer lost the response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := CORS(CORSOptions{AllowedOrigins: []string{"https://clinica.example"}})(ok)

	pre := httptest.NewRequest(http.MethodOptions, "/api/v1/laudos/preview", nil)
	pre.Header.Set("Origin", "https://clinica.example")
	pre.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, pre)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://clinica.example" {
		t.Fatalf("allowed origin = %q", got)
	}

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}

func TestNoCacheAndRealIP(t *testing.T) {
	t.Parallel()

	var path string
	h := chain(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { path = r.URL.Path }), NoCache(), RealIP())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rec.Header().Get("Cache-Control") == "" || path != "/meta/health" {
		t.Fatalf("cache-control=%q path=%q", rec.Header().Get("Cache-Control"), path)
	}
	if StripSlashes() == nil || Timeout(time.Second) == nil || Compress() == nil {
		t.Fatalf("nil middleware")
	}
}
