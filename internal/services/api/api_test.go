package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"copsoq/internal/platform/config"
	phttp "copsoq/internal/platform/net/http"
	"copsoq/internal/platform/store"
)

type fakePG struct{}

func (fakePG) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakePG) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakePG) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (f fakePG) Tx(_ context.Context, fn func(store.RowQuerier) error) error  { return fn(f) }
func (fakePG) Ping(context.Context) error                                     { return nil }

func mountAPI(t *testing.T) (http.Handler, []string) {
	t.Helper()
	mux := chi.NewRouter()
	log := zerolog.Nop()
	reg := Mount(phttp.AdaptChi(mux), Options{
		Config:        config.New(),
		Store:         &store.Store{PG: fakePG{}},
		Logger:        &log,
		EnableSwagger: true,
	})
	return mux, reg.Names()
}

func call(t *testing.T, h http.Handler, method, path, body string, out any) int {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil {
		env := struct {
			Data any `json:"data"`
		}{Data: out}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func TestMount_WiresModules(t *testing.T) {
	h, names := mountAPI(t)
	if len(names) != 2 || names[0] != "meta" || names[1] != "laudos" {
		t.Fatalf("registry = %v", names)
	}

	var svc struct {
		Modules []string `json:"modules"`
	}
	if code := call(t, h, http.MethodGet, "/api/v1/meta/service", "", &svc); code != http.StatusOK {
		t.Fatalf("service status = %d", code)
	}
	if len(svc.Modules) != 2 {
		t.Fatalf("modules = %v", svc.Modules)
	}

	var inst struct {
		Domains int `json:"domains"`
	}
	call(t, h, http.MethodGet, "/api/v1/meta/instrument", "", &inst)
	if inst.Domains != 10 {
		t.Fatalf("instrument domains = %d", inst.Domains)
	}

	var ready struct {
		Status string `json:"status"`
	}
	call(t, h, http.MethodGet, "/api/v1/meta/ready", "", &ready)
	if ready.Status != "ok" {
		t.Fatalf("ready = %q", ready.Status)
	}
}

func TestMount_PreviewEndToEnd(t *testing.T) {
	h, _ := mountAPI(t)

	body := `{
		"entity": {"empresa_nome": "ACME", "periodo_inicio": "2025-07-01T00:00:00Z", "periodo_fim": "2025-07-31T00:00:00Z"},
		"responses": [{"grupo": 1, "valor": 100}, {"grupo": 1, "valor": 75}]
	}`
	var payload struct {
		Scores  []json.RawMessage `json:"scores"`
		Summary struct {
			Low  int `json:"low"`
			High int `json:"high"`
		} `json:"summary"`
	}
	if code := call(t, h, http.MethodPost, "/api/v1/laudos/preview", body, &payload); code != http.StatusOK {
		t.Fatalf("preview status = %d", code)
	}
	if len(payload.Scores) != 10 || payload.Summary.High != 1 || payload.Summary.Low != 9 {
		t.Fatalf("payload scores=%d summary=%+v", len(payload.Scores), payload.Summary)
	}

	bad := strings.Replace(body, `"valor": 75`, `"valor": 60`, 1)
	if code := call(t, h, http.MethodPost, "/api/v1/laudos/preview", bad, nil); code != http.StatusBadRequest {
		t.Fatalf("off scale status = %d", code)
	}
}

func TestMount_DocsAndUnknownRoutes(t *testing.T) {
	h, _ := mountAPI(t)

	if code := call(t, h, http.MethodGet, "/api/docs/doc.json", "", nil); code != http.StatusOK {
		t.Fatalf("doc.json status = %d", code)
	}
	if code := call(t, h, http.MethodGet, "/debug/pprof/", "", nil); code != http.StatusNotFound {
		t.Fatalf("profiler should be off, status = %d", code)
	}
	if code := call(t, h, http.MethodGet, "/api/v2/meta/health", "", nil); code != http.StatusNotFound {
		t.Fatalf("unknown version status = %d", code)
	}
}
