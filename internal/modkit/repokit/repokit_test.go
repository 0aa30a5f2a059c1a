package repokit

import (
	"context"
	"errors"
	"testing"
)

type countRepo struct{ q Queryer }

type fakeTx struct {
	Queryer
	ran bool
}

func (f *fakeTx) Tx(_ context.Context, fn func(q Queryer) error) error {
	f.ran = true
	return fn(f)
}

func TestMustBind(t *testing.T) {
	t.Parallel()

	b := BindFunc[countRepo](func(q Queryer) countRepo { return countRepo{q: q} })
	tx := &fakeTx{}
	if got := MustBind[countRepo](b, tx); got.q != tx {
		t.Fatalf("bound queryer = %v", got.q)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil queryer")
		}
	}()
	MustBind[countRepo](b, nil)
}

func TestWithTx_PropagatesError(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	want := errors.New("rollback")
	err := WithTx(context.Background(), tx, func(Queryer) error { return want })
	if !tx.ran || !errors.Is(err, want) {
		t.Fatalf("ran=%v err=%v", tx.ran, err)
	}
}
