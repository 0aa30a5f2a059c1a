// Package report assembles the laudo payload handed to renderers
//
// Assemble is a pure merge. It does not recompute or cross check scores and
// interpretation; callers pass both from the same response set
package report

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"copsoq/internal/core/interpret"
	"copsoq/internal/core/risk"
	"copsoq/internal/core/scoring"
)

// EntityMeta describes the assessed entity and period, supplied by the caller
type EntityMeta struct {
	CompanyName string    `json:"empresa_nome"`
	CompanyCNPJ string    `json:"empresa_cnpj,omitempty"`
	ClinicName  string    `json:"clinica_nome,omitempty"`
	LoteID      int64     `json:"lote_id,omitempty"`
	LoteCode    string    `json:"lote_codigo,omitempty"`
	PeriodStart time.Time `json:"periodo_inicio"`
	PeriodEnd   time.Time `json:"periodo_fim"`
	Respondents int       `json:"respondentes"`
	IssuerID    string    `json:"emissor_id,omitempty"`
}

// ScoreRow is a display ready view of one DomainScore
type ScoreRow struct {
	DomainID     int            `json:"domain_id"`
	DomainName   string         `json:"domain_name"`
	Mean         string         `json:"mean"`
	StdDev       string         `json:"std_dev"`
	Band         string         `json:"band"`
	RiskLabel    string         `json:"risk_label"`
	Semaphore    risk.Semaphore `json:"semaphore"`
	Action       string         `json:"action"`
	Insufficient bool           `json:"insufficient_data"`
}

// Summary counts domains per bucket
type Summary struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Payload is the full laudo data structure
// Observations is nil when none were provided, which renderers treat
// differently from an explicitly empty string
type Payload struct {
	Entity         EntityMeta            `json:"entity"`
	Scores         []scoring.DomainScore `json:"scores"`
	Interpretation interpret.Result      `json:"interpretation"`
	Observations   *string               `json:"observacoes,omitempty"`
	Rows           []ScoreRow            `json:"rows"`
	Summary        Summary               `json:"summary"`
}

// Assemble merges entity data, scores, interpretation and observations
func Assemble(meta EntityMeta, scores []scoring.DomainScore, interp interpret.Result, observations *string) Payload {
	p := message.NewPrinter(language.BrazilianPortuguese)

	rows := make([]ScoreRow, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, ScoreRow{
			DomainID:     s.DomainID,
			DomainName:   s.DomainName,
			Mean:         p.Sprintf("%.1f", s.Mean),
			StdDev:       p.Sprintf("%.1f", s.StdDev),
			Band:         p.Sprintf("%.1f – %.1f", s.MeanMinusSD, s.MeanPlusSD),
			RiskLabel:    risk.Label(s.RiskCategory),
			Semaphore:    s.Semaphore,
			Action:       s.RecommendedAction,
			Insufficient: s.Insufficient(),
		})
	}

	own := make([]scoring.DomainScore, len(scores))
	copy(own, scores)

	var obs *string
	if observations != nil {
		v := *observations
		obs = &v
	}

	return Payload{
		Entity:         meta,
		Scores:         own,
		Interpretation: interp,
		Observations:   obs,
		Rows:           rows,
		Summary: Summary{
			Low:    len(interp.LowRiskDomains),
			Medium: len(interp.MediumRiskDomains),
			High:   len(interp.HighRiskDomains),
		},
	}
}

// Build runs scoring, interpretation and assembly over raw responses
func Build(meta EntityMeta, responses []scoring.ItemResponse, observations *string) Payload {
	scores := scoring.Score(responses)
	return Assemble(meta, scores, interpret.Compose(meta.CompanyName, scores), observations)
}
