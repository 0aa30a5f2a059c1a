// Package repokit binds domain repos to a store connection or transaction
package repokit

import (
	"context"

	"copsoq/internal/platform/store"
)

type (
	// Queryer is what a bound repo runs its SQL against
	Queryer = store.RowQuerier

	// TxRunner opens transactions
	TxRunner = store.TxRunner

	// Rows is a result set
	Rows = store.Rows

	// Row is a single row
	Row = store.Row

	// CommandTag reports the outcome of a write
	CommandTag = store.CommandTag
)

// Binder builds a repo over a Queryer, either the pool or an open tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function to Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind panics on a nil Queryer, which is a wiring bug
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}

// WithTx runs fn in one transaction, rolled back when fn errors
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
