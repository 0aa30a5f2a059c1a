package store

import (
	"context"
	"errors"
	"testing"

	"copsoq/internal/platform/store/ch"
)

type fakeCH struct {
	table  string
	rows   [][]any
	pinged bool
	closed bool
	err    error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return f.err
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.table = sql
	return f.err
}

func (f *fakeCH) Query(_ context.Context, _ string, _ ...any) (ch.Rows, error) {
	return nil, f.err
}

func (f *fakeCH) Ping(context.Context) error { f.pinged = true; return f.err }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

func TestCHAdapter_InsertShape(t *testing.T) {
	t.Parallel()

	f := &fakeCH{}
	a := newCHAdapter(f)

	if err := a.Insert(context.Background(), "laudo_domain_scores", []map[string]any{{}}); err == nil {
		t.Fatalf("expected shape error")
	}
	rows := [][]any{{"a", 1}, {"b", 2}}
	if err := a.Insert(context.Background(), "laudo_domain_scores", rows); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if f.table != "laudo_domain_scores" || len(f.rows) != 2 {
		t.Fatalf("delegate got table=%q rows=%d", f.table, len(f.rows))
	}
}

func TestCHAdapter_QueryErrorAndPing(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := &fakeCH{err: boom}
	a := newCHAdapter(f)

	if _, err := a.Query(context.Background(), "SELECT 1"); !errors.Is(err, boom) {
		t.Fatalf("Query err = %v", err)
	}
	p, ok := a.(Pinger)
	if !ok {
		t.Fatalf("adapter should expose Ping")
	}
	if err := p.Ping(context.Background()); !errors.Is(err, boom) || !f.pinged {
		t.Fatalf("Ping err = %v pinged=%v", err, f.pinged)
	}
	if err := a.Exec(context.Background(), "CREATE TABLE x"); !errors.Is(err, boom) || f.table != "CREATE TABLE x" {
		t.Fatalf("Exec err = %v sql=%q", err, f.table)
	}
	if err := a.Close(); err != nil || !f.closed {
		t.Fatalf("Close err = %v closed=%v", err, f.closed)
	}
}

func TestCHAdapter_NilPing(t *testing.T) {
	t.Parallel()

	var a *clickhouseAdapter
	if err := a.Ping(context.Background()); err == nil {
		t.Fatalf("expected error on nil adapter")
	}
}
