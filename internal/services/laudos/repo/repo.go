// Package repo provides postgres access for laudos
package repo

import (
	"context"
	"time"

	"copsoq/internal/modkit/repokit"
	"copsoq/internal/platform/store"
)

// Repo defines the repository contract for laudos
type Repo interface {
	LoteMeta(ctx context.Context, loteID int64) (RowLote, error)
	Responses(ctx context.Context, loteID int64) ([]RowResponse, error)
	InsertLaudo(ctx context.Context, l RowLaudo) error
	LaudoByLote(ctx context.Context, loteID int64) (RowLaudo, error)
}

// RowLote is a lote joined with its count of finished assessments
type RowLote struct {
	ID          int64
	Code        string
	CompanyName string
	CompanyCNPJ string
	ClinicName  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Respondents int
}

// RowResponse is one answer of a finished assessment
type RowResponse struct {
	DomainID int
	Value    float64
}

// RowLaudo is a persisted laudo; Payload holds the report JSON
type RowLaudo struct {
	ID           string
	LoteID       int64
	EmissorID    string
	Observations *string
	FileName     string
	Payload      []byte
	IssuedAt     time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// LoteMeta returns perr.ErrNotFound when the lote does not exist
func (r *queries) LoteMeta(ctx context.Context, loteID int64) (RowLote, error) {
	const sql = `
select l.id, l.codigo, l.empresa_nome, l.empresa_cnpj, l.clinica_nome,
l.periodo_inicio::timestamptz, l.periodo_fim::timestamptz,
(select count(*) from avaliacoes a where a.lote_id = l.id and a.status = 'concluida')::int
from lotes l
where l.id = $1
`
	return store.One(ctx, r.q, func(row store.Row) (RowLote, error) {
		var l RowLote
		err := row.Scan(
			&l.ID,
			&l.Code,
			&l.CompanyName,
			&l.CompanyCNPJ,
			&l.ClinicName,
			&l.PeriodStart,
			&l.PeriodEnd,
			&l.Respondents,
		)
		return l, err
	}, sql, loteID)
}

// Responses lists answers of finished assessments only
func (r *queries) Responses(ctx context.Context, loteID int64) ([]RowResponse, error) {
	const sql = `
select r.grupo::int, r.valor::float8
from respostas r
join avaliacoes a on a.id = r.avaliacao_id
where a.lote_id = $1
and a.status = 'concluida'
order by r.avaliacao_id, r.item
`
	return store.Many(ctx, r.q, func(row store.Row) (RowResponse, error) {
		var rr RowResponse
		err := row.Scan(&rr.DomainID, &rr.Value)
		return rr, err
	}, sql, loteID)
}

// InsertLaudo fails with a unique violation when the lote already has a laudo
func (r *queries) InsertLaudo(ctx context.Context, l RowLaudo) error {
	const sql = `
insert into laudos (id, lote_id, emissor_id, observacoes, arquivo_nome, payload, emitido_em)
values ($1::uuid, $2, $3, $4, $5, $6::jsonb, $7)
`
	return store.ExecOne(ctx, r.q, sql, l.ID, l.LoteID, l.EmissorID, l.Observations, l.FileName, string(l.Payload), l.IssuedAt)
}

// LaudoByLote returns perr.ErrNotFound when no laudo was issued
func (r *queries) LaudoByLote(ctx context.Context, loteID int64) (RowLaudo, error) {
	const sql = `
select id::text, lote_id, emissor_id, observacoes, arquivo_nome, payload::text, emitido_em
from laudos
where lote_id = $1
`
	return store.One(ctx, r.q, func(row store.Row) (RowLaudo, error) {
		var (
			l       RowLaudo
			payload string
		)
		err := row.Scan(&l.ID, &l.LoteID, &l.EmissorID, &l.Observations, &l.FileName, &payload, &l.IssuedAt)
		l.Payload = []byte(payload)
		return l, err
	}, sql, loteID)
}
