// Package risk classifies domain mean scores into three risk tiers
//
// Thresholds are fixed population cut points on the 0..100 scale and do not
// depend on the domain or on the sample size. Both cut points belong to the
// medium band regardless of direction
package risk

import "copsoq/internal/core/catalog"

// Category is the three tier risk classification
type Category string

const (
	// Low is the favourable tier
	Low Category = "baixo"
	// Medium is the monitor tier
	Medium Category = "medio"
	// High is the attention tier
	High Category = "alto"
)

// Semaphore is the color mirrored from a Category for display
type Semaphore string

const (
	// Green mirrors Low
	Green Semaphore = "verde"
	// Yellow mirrors Medium
	Yellow Semaphore = "amarelo"
	// Red mirrors High
	Red Semaphore = "vermelho"
)

const (
	// LowerCut is the lower threshold, inclusive in Medium
	LowerCut = 33.0
	// UpperCut is the upper threshold, inclusive in Medium
	UpperCut = 66.0
)

// Result is the outcome of a classification
type Result struct {
	Category  Category  `json:"category"`
	Semaphore Semaphore `json:"semaphore"`
}

// Classify maps a mean and a direction to a category and semaphore
// out of range means follow the same rule; an unknown direction is a caller bug
// and is treated as negative
func Classify(mean float64, dir catalog.Direction) Result {
	var c Category
	switch {
	case mean >= LowerCut && mean <= UpperCut:
		c = Medium
	case dir == catalog.Positive:
		if mean > UpperCut {
			c = Low
		} else {
			c = High
		}
	default:
		if mean < LowerCut {
			c = Low
		} else {
			c = High
		}
	}
	return Result{Category: c, Semaphore: SemaphoreOf(c)}
}

// SemaphoreOf returns the display color for c
func SemaphoreOf(c Category) Semaphore {
	switch c {
	case Low:
		return Green
	case Medium:
		return Yellow
	default:
		return Red
	}
}

// InsufficientData is the action text for domains nobody answered
const InsufficientData = "Dados insuficientes para avaliação deste domínio; ampliar a participação antes de concluir."

var actions = map[Category]string{
	Low:    "Manter as boas práticas atuais e reavaliar periodicamente.",
	Medium: "Monitorar o domínio e implementar ações preventivas com as equipes envolvidas.",
	High:   "Intervenção prioritária: elaborar e executar plano de ação imediato.",
}

// RecommendedAction returns the action text for a category
// insufficient overrides the category text
func RecommendedAction(c Category, insufficient bool) string {
	if insufficient {
		return InsufficientData
	}
	if a, ok := actions[c]; ok {
		return a
	}
	return actions[High]
}

// Label returns the human label used in reports
func Label(c Category) string {
	switch c {
	case Low:
		return "Baixo risco"
	case Medium:
		return "Risco médio"
	case High:
		return "Alto risco"
	}
	return string(c)
}
