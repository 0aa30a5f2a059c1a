package domain

import (
	"time"

	"copsoq/internal/core/report"
	"copsoq/internal/core/risk"
)

// LaudoRecord is an issued laudo as stored
type LaudoRecord struct {
	ID        string         `json:"id" example:"6f1c1f7e-9a43-4a53-9e55-0a5f3f2f1b7a"`
	LoteID    int64          `json:"lote_id" example:"42"`
	EmissorID string         `json:"emissor_id" example:"12345678909"`
	FileName  string         `json:"arquivo_nome" example:"laudo-padaria-sao-joao-l2025-07.pdf"`
	IssuedAt  time.Time      `json:"emitido_em"`
	Payload   report.Payload `json:"payload"`
}

// Snapshot is one domain score row of an issued laudo, shipped to analytics
type Snapshot struct {
	LaudoID     string
	LoteID      int64
	CompanyName string
	IssuedAt    time.Time
	DomainID    int
	DomainName  string
	Direction   string
	Responses   int
	Mean        float64
	StdDev      float64
	Category    risk.Category
	Semaphore   risk.Semaphore
}

// Snapshots flattens a laudo into one row per domain
func (l LaudoRecord) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(l.Payload.Scores))
	for _, s := range l.Payload.Scores {
		out = append(out, Snapshot{
			LaudoID:     l.ID,
			LoteID:      l.LoteID,
			CompanyName: l.Payload.Entity.CompanyName,
			IssuedAt:    l.IssuedAt,
			DomainID:    s.DomainID,
			DomainName:  s.DomainName,
			Direction:   string(s.Direction),
			Responses:   s.Responses,
			Mean:        s.Mean,
			StdDev:      s.StdDev,
			Category:    s.RiskCategory,
			Semaphore:   s.Semaphore,
		})
	}
	return out
}
