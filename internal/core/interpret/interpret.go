// Package interpret partitions classified domains into risk buckets and
// composes the narrative paragraph of a laudo
package interpret

import (
	"strconv"
	"strings"

	"copsoq/internal/core/risk"
	"copsoq/internal/core/scoring"
)

// Result is the interpretation of one batch of domain scores
// the three lists are disjoint and together hold every input score
type Result struct {
	Narrative         string                `json:"narrative"`
	LowRiskDomains    []scoring.DomainScore `json:"low_risk_domains"`
	MediumRiskDomains []scoring.DomainScore `json:"medium_risk_domains"`
	HighRiskDomains   []scoring.DomainScore `json:"high_risk_domains"`
}

// Clause labels, in narrative order
const (
	LowLabel    = "Excelente (baixo risco): "
	MediumLabel = "Monitorar (risco médio): "
	HighLabel   = "Atenção (alto risco): "
)

// Intro returns the opening phrase for an entity
func Intro(entityName string) string {
	return "Resultado da avaliação psicossocial (COPSOQ III) de " + strings.TrimSpace(entityName) + ". "
}

// clause pairs a bucket with the label that introduces it
type clause struct {
	label   string
	domains []scoring.DomainScore
}

// Compose partitions scores by risk category, keeping input order inside each
// bucket, and builds the narrative. Scores with an unknown category land in the
// high bucket so every input is accounted for
func Compose(entityName string, scores []scoring.DomainScore) Result {
	res := Result{
		LowRiskDomains:    []scoring.DomainScore{},
		MediumRiskDomains: []scoring.DomainScore{},
		HighRiskDomains:   []scoring.DomainScore{},
	}
	for _, s := range scores {
		switch s.RiskCategory {
		case risk.Low:
			res.LowRiskDomains = append(res.LowRiskDomains, s)
		case risk.Medium:
			res.MediumRiskDomains = append(res.MediumRiskDomains, s)
		default:
			res.HighRiskDomains = append(res.HighRiskDomains, s)
		}
	}

	clauses := []clause{
		{label: LowLabel, domains: res.LowRiskDomains},
		{label: MediumLabel, domains: res.MediumRiskDomains},
		{label: HighLabel, domains: res.HighRiskDomains},
	}

	var b strings.Builder
	b.WriteString(Intro(entityName))
	for _, c := range clauses {
		if len(c.domains) == 0 {
			continue
		}
		b.WriteString(c.label)
		b.WriteString(DomainList(c.domains))
		b.WriteString(". ")
	}
	res.Narrative = b.String()
	return res
}

// DomainList renders "<id> - <name>" entries joined by ", "
func DomainList(scores []scoring.DomainScore) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.Itoa(s.DomainID) + " - " + s.DomainName
	}
	return strings.Join(parts, ", ")
}
