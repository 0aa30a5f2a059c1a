package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"copsoq/internal/platform/config"
	perr "copsoq/internal/platform/errors"
	phttp "copsoq/internal/platform/net/http"
	docs "copsoq/internal/services/api/docs"
)

// SpecMutator edits the decoded spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// docReader returns the generated spec document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds m to every served spec; nil is ignored
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// errorSchema mirrors the failure envelope written by the transport
var errorSchema = map[string]any{
	"type":        "object",
	"description": "Failure envelope",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

func docJSON(w http.ResponseWriter, r *http.Request) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		phttp.Error(perr.Wrap(err, perr.ErrorCodeUnknown, "spec parse error")).Write(w, r)
		return
	}

	toOAS3(spec, APIBase)
	if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + suffix
			}
		}
	}
	schemas(spec)["ErrorResponse"] = errorSchema
	fillResponses(spec, map[string]any{
		"400": failure("Bad Request", http.StatusBadRequest, perr.ErrorCodeValidation, "response 0 has value 60, want one of 0 25 50 75 100"),
		"500": failure("Internal Server Error", http.StatusInternalServerError, perr.ErrorCodePanic, "internal error"),
	})

	mu.Lock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.Unlock()
	for _, m := range ms {
		m(spec)
	}

	w.Header().Set("Cache-Control", "no-store")
	phttp.WriteJSON(w, http.StatusOK, spec)
}

// toOAS3 lifts swagger 2 and pins 3.1 down to 3.0.3, which the UI renders
func toOAS3(spec map[string]any, base string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, _ := spec["openapi"].(string); v == "" || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}
}

func schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	out, ok := comps["schemas"].(map[string]any)
	if !ok {
		out = map[string]any{}
		comps["schemas"] = out
	}
	return out
}

func failure(desc string, status int, code perr.ErrorCode, msg string) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        int(code),
					"error":       msg,
				},
			},
		},
	}
}

// fillResponses adds each default to every operation that does not document that status
func fillResponses(spec map[string]any, defaults map[string]any) {
	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			for status, body := range defaults {
				if _, ok := resps[status]; !ok {
					resps[status] = body
				}
			}
		}
	}
}
