// Package scoring aggregates item responses into per domain statistics
// and attaches the risk classification to each domain
package scoring

import (
	"math"

	"copsoq/internal/core/catalog"
	"copsoq/internal/core/risk"
)

// ItemResponse is one answered item on the five point frequency scale
type ItemResponse struct {
	DomainID int     `json:"domain_id"`
	Value    float64 `json:"value"`
}

// scale lists the answer values the instrument produces
var scale = [...]float64{0, 25, 50, 75, 100}

// ValidValue reports whether v is one of the five scale points
func ValidValue(v float64) bool {
	for _, s := range scale {
		if v == s {
			return true
		}
	}
	return false
}

// DomainScore is the derived statistic set for one domain
// risk fields are zero until Classify runs
type DomainScore struct {
	DomainID          int               `json:"domain_id"`
	DomainName        string            `json:"domain_name"`
	Direction         catalog.Direction `json:"direction"`
	Responses         int               `json:"responses"`
	Mean              float64           `json:"mean"`
	StdDev            float64           `json:"std_dev"`
	MeanMinusSD       float64           `json:"mean_minus_sd"`
	MeanPlusSD        float64           `json:"mean_plus_sd"`
	RiskCategory      risk.Category     `json:"risk_category"`
	Semaphore         risk.Semaphore    `json:"semaphore"`
	RecommendedAction string            `json:"recommended_action"`
}

// Insufficient reports whether the domain had no responses
func (d DomainScore) Insufficient() bool { return d.Responses == 0 }

// accum holds running sums for one domain
type accum struct {
	n     int
	sum   float64
	sumSq float64
}

// Aggregate computes mean, population std dev and the mean±sd band for every
// catalog domain. The result always has one entry per domain in catalog order.
// Responses for ids outside the catalog are ignored
func Aggregate(responses []ItemResponse) []DomainScore {
	domains := catalog.All()

	acc := make(map[int]*accum, len(domains))
	for _, d := range domains {
		acc[d.ID] = &accum{}
	}
	for _, r := range responses {
		a, ok := acc[r.DomainID]
		if !ok {
			continue
		}
		a.n++
		a.sum += r.Value
	}
	// means first, squared deviations in a second pass
	means := make(map[int]float64, len(domains))
	for id, a := range acc {
		if a.n > 0 {
			means[id] = a.sum / float64(a.n)
		}
	}
	for _, r := range responses {
		a, ok := acc[r.DomainID]
		if !ok {
			continue
		}
		dev := r.Value - means[r.DomainID]
		a.sumSq += dev * dev
	}

	out := make([]DomainScore, 0, len(domains))
	for _, d := range domains {
		a := acc[d.ID]
		ds := DomainScore{
			DomainID:   d.ID,
			DomainName: d.Name,
			Direction:  d.Direction,
			Responses:  a.n,
		}
		if a.n > 0 {
			ds.Mean = means[d.ID]
			ds.StdDev = math.Sqrt(a.sumSq / float64(a.n))
			ds.MeanMinusSD = ds.Mean - ds.StdDev
			ds.MeanPlusSD = ds.Mean + ds.StdDev
		}
		out = append(out, ds)
	}
	return out
}

// Classify returns a copy of d with the risk fields filled
// a domain without responses is reported as low/green whatever its direction
func Classify(d DomainScore) DomainScore {
	r := risk.Classify(d.Mean, d.Direction)
	if d.Insufficient() {
		r = risk.Result{Category: risk.Low, Semaphore: risk.Green}
	}
	d.RiskCategory = r.Category
	d.Semaphore = r.Semaphore
	d.RecommendedAction = risk.RecommendedAction(r.Category, d.Insufficient())
	return d
}

// Score aggregates responses and classifies every domain
func Score(responses []ItemResponse) []DomainScore {
	scores := Aggregate(responses)
	for i := range scores {
		scores[i] = Classify(scores[i])
	}
	return scores
}
