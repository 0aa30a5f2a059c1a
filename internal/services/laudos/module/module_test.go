package module

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"copsoq/internal/modkit"
	"copsoq/internal/modkit/module"
	"copsoq/internal/modkit/repokit"
	"copsoq/internal/platform/config"
	phttp "copsoq/internal/platform/net/http"
	laudosdom "copsoq/internal/services/laudos/domain"
)

type nopTx struct{}

func (nopTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error { return fn(nopTx{}) }
func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, nil
}
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row        { return nil }

var _ modkit.Module = (*Module)(nil)

func TestNew_NamePrefixAndPorts(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{PG: nopTx{}}, Options{Snapshots: true})
	if m.Name() != "laudos" || m.Prefix() != "/laudos" {
		t.Fatalf("name/prefix = %q %q", m.Name(), m.Prefix())
	}

	reg := module.NewRegistry()
	reg.Register(m.Name(), m.Ports())
	l, ok := module.Find[laudosdom.DomainLister](reg, "laudos")
	if !ok {
		t.Fatalf("DomainLister not found in %#v", m.Ports())
	}
	ds, err := l.Domains(context.Background())
	if err != nil || len(ds) != 10 {
		t.Fatalf("Domains via port = %d, %v", len(ds), err)
	}
}

func TestMountRoutes_RegistersUnderPrefix(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	New(modkit.Deps{PG: nopTx{}}, Options{}, modkit.WithPrefix("/reports")).MountRoutes(phttp.AdaptChi(mux))

	want := map[string]bool{
		"GET /reports/domains":  false,
		"POST /reports/preview": false,
		"POST /reports/":        false,
		"GET /reports/{loteID}": false,
	}
	_ = chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if _, ok := want[method+" "+route]; ok {
			want[method+" "+route] = true
		}
		return nil
	})
	for k, seen := range want {
		if !seen {
			t.Fatalf("route %s not mounted", k)
		}
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_LAUDOS_SNAPSHOTS", "false")
	if FromConfig(config.New()).Snapshots {
		t.Fatalf("snapshots should be off")
	}
	t.Setenv("CORE_LAUDOS_SNAPSHOTS", "")
	if !FromConfig(config.New()).Snapshots {
		t.Fatalf("snapshots default should be on")
	}
}
