package repo

import (
	"context"

	"copsoq/internal/platform/store"
	"copsoq/internal/services/laudos/domain"
)

// SnapshotTable receives one row per domain of every issued laudo
const SnapshotTable = "laudo_domain_scores"

// SnapshotDDL creates the analytics table; column order matches snapshotRow
const SnapshotDDL = `
CREATE TABLE IF NOT EXISTS laudo_domain_scores (
    laudo_id     String,
    lote_id      Int64,
    empresa_nome String,
    emitido_em   DateTime64(3, 'UTC'),
    grupo        UInt8,
    dominio      LowCardinality(String),
    direcao      LowCardinality(String),
    respostas    UInt32,
    media        Float64,
    desvio       Float64,
    risco        LowCardinality(String),
    semaforo     LowCardinality(String)
)
ENGINE = ReplacingMergeTree
ORDER BY (lote_id, grupo, laudo_id)
`

// CHSink writes snapshots to clickhouse
type CHSink struct {
	ch store.Clickhouse
}

// NewCHSink returns nil when ch is nil so callers can pass it straight to the service
func NewCHSink(ch store.Clickhouse) *CHSink {
	if ch == nil {
		return nil
	}
	return &CHSink{ch: ch}
}

// Ensure creates the snapshot table if missing
func (s *CHSink) Ensure(ctx context.Context) error {
	return s.ch.Exec(ctx, SnapshotDDL)
}

// Publish implements domain.SnapshotSink
func (s *CHSink) Publish(ctx context.Context, rows []domain.Snapshot) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([][]any, 0, len(rows))
	for _, r := range rows {
		batch = append(batch, snapshotRow(r))
	}
	return s.ch.Insert(ctx, SnapshotTable, batch)
}

func snapshotRow(r domain.Snapshot) []any {
	return []any{
		r.LaudoID,
		r.LoteID,
		r.CompanyName,
		r.IssuedAt.UTC(),
		uint8(r.DomainID),
		r.DomainName,
		r.Direction,
		uint32(r.Responses),
		r.Mean,
		r.StdDev,
		string(r.Category),
		string(r.Semaphore),
	}
}
