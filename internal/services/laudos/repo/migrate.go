package repo

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"copsoq/internal/modkit/repokit"
)

//go:embed schema.sql
var schema string

// Statements splits the embedded schema into single statements
func Statements() []string {
	var out []string
	for _, s := range strings.Split(schema, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Migrate applies the schema inside one transaction; every statement is idempotent
func Migrate(ctx context.Context, tx repokit.TxRunner) error {
	return tx.Tx(ctx, func(q repokit.Queryer) error {
		for i, stmt := range Statements() {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("laudos schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}
