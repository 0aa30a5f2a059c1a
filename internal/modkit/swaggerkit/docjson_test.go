package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "copsoq/internal/platform/net/http"
	"copsoq/internal/platform/testkit"
)

func serve(t *testing.T) map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	docJSON(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return spec
}

func TestServeDocJSON_DecoratesSpec(t *testing.T) {
	spec := serve(t)

	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers, _ := spec["servers"].([]any)
	if len(servers) != 1 {
		t.Fatalf("servers = %v", spec["servers"])
	}
	info, _ := spec["info"].(map[string]any)
	if info["title"] != "COPSOQ API" {
		t.Fatalf("title = %v", info["title"])
	}

	paths, _ := spec["paths"].(map[string]any)
	laudo, _ := paths["/laudos"].(map[string]any)
	post, _ := laudo["post"].(map[string]any)
	resps, _ := post["responses"].(map[string]any)
	for _, code := range []string{"201", "400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("POST /laudos missing %s response", code)
		}
	}
	comps, _ := spec["components"].(map[string]any)
	schemas, _ := comps["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema not injected")
	}
}

func TestServeDocJSON_BadDoc(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })

	rec := httptest.NewRecorder()
	docJSON(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRegister_AppliesMutators(t *testing.T) {
	testkit.Swap(t, &mutators, nil)

	Register(nil)
	Register(func(spec map[string]any) {
		spec["info"].(map[string]any)["version"] = "v9"
	})
	spec := serve(t)
	if v := spec["info"].(map[string]any)["version"]; v != "v9" {
		t.Fatalf("version = %v", v)
	}
}

func TestToOAS3_DowngradesAndLifts(t *testing.T) {
	t.Parallel()

	sw := map[string]any{"swagger": "2.0"}
	toOAS3(sw, APIBase)
	if sw["openapi"] != "3.0.3" || sw["swagger"] != nil {
		t.Fatalf("swagger 2 not lifted: %v", sw)
	}
	oas := map[string]any{"openapi": "3.1.0", "servers": []any{"x"}}
	toOAS3(oas, APIBase)
	if oas["openapi"] != "3.0.3" || len(oas["servers"].([]any)) != 1 {
		t.Fatalf("3.1 not downgraded or servers overwritten: %v", oas)
	}
}

func TestMount(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs status = %d", rec.Code)
	}

	mux = chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath, nil))
	if rec.Code != http.StatusMovedPermanently || rec.Header().Get("Location") != DocsPath+"/" {
		t.Fatalf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocsPath+"/doc.json", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("doc.json = %d %v", rec.Code, rec.Header())
	}
}
