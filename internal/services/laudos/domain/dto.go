// Package domain holds DTOs for laudos http and service contracts
package domain

import (
	"time"

	"copsoq/internal/core/report"
	"copsoq/internal/core/scoring"
)

// EntityInput identifies the assessed company and period for an ad hoc preview
type EntityInput struct {
	CompanyName string    `json:"empresa_nome" validate:"required,max=200" example:"Padaria São João"`
	CompanyCNPJ string    `json:"empresa_cnpj,omitempty" validate:"omitempty,len=14,digits" example:"12345678000199"`
	ClinicName  string    `json:"clinica_nome,omitempty" validate:"omitempty,max=200" example:"Clínica Vida"`
	LoteCode    string    `json:"lote_codigo,omitempty" validate:"omitempty,max=64" example:"L2025-07"`
	PeriodStart time.Time `json:"periodo_inicio" validate:"required" example:"2025-07-01T00:00:00Z"`
	PeriodEnd   time.Time `json:"periodo_fim" validate:"required,gtefield=PeriodStart" example:"2025-07-31T00:00:00Z"`
	Respondents int       `json:"respondentes" validate:"gte=0" example:"12"`
}

// ResponseInput is one answered item
// valor must be on the five point scale 0 25 50 75 100
type ResponseInput struct {
	DomainID int     `json:"grupo" validate:"min=1,max=10" example:"1"`
	Value    float64 `json:"valor" validate:"min=0,max=100" example:"75"`
}

// PreviewInput scores an arbitrary response set without persisting anything
type PreviewInput struct {
	Entity       EntityInput     `json:"entity" validate:"required"`
	Responses    []ResponseInput `json:"responses" validate:"dive"`
	Observations *string         `json:"observacoes,omitempty" validate:"omitempty,max=4000"`
}

// GenerateInput issues the laudo of a lote from its finished assessments
type GenerateInput struct {
	LoteID       int64   `json:"lote_id" validate:"required,min=1" example:"42"`
	EmissorID    string  `json:"emissor_id" validate:"required,max=64" example:"12345678909"`
	Observations *string `json:"observacoes,omitempty" validate:"omitempty,max=4000"`
}

// GetInput looks up the laudo issued for a lote
type GetInput struct {
	LoteID int64 `json:"lote_id" validate:"required,min=1"`
}

// Meta maps the entity input onto report metadata
func (e EntityInput) Meta() report.EntityMeta {
	return report.EntityMeta{
		CompanyName: e.CompanyName,
		CompanyCNPJ: e.CompanyCNPJ,
		ClinicName:  e.ClinicName,
		LoteCode:    e.LoteCode,
		PeriodStart: e.PeriodStart,
		PeriodEnd:   e.PeriodEnd,
		Respondents: e.Respondents,
	}
}

// Items maps the inbound responses onto scoring inputs
func (in PreviewInput) Items() []scoring.ItemResponse {
	out := make([]scoring.ItemResponse, 0, len(in.Responses))
	for _, r := range in.Responses {
		out = append(out, scoring.ItemResponse{DomainID: r.DomainID, Value: r.Value})
	}
	return out
}
