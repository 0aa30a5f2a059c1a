package interpret

import (
	"strings"
	"testing"

	"copsoq/internal/core/catalog"
	"copsoq/internal/core/risk"
	"copsoq/internal/core/scoring"
)

func ds(id int, name string, c risk.Category) scoring.DomainScore {
	return scoring.DomainScore{DomainID: id, DomainName: name, RiskCategory: c, Semaphore: risk.SemaphoreOf(c)}
}

func TestCompose_ThreeBucketsInOrder(t *testing.T) {
	t.Parallel()

	scores := []scoring.DomainScore{
		ds(1, "Demandas no Trabalho", risk.High),
		ds(2, "Organização e Conteúdo do Trabalho", risk.Low),
		ds(3, "Relações Sociais e Liderança", risk.Medium),
	}
	res := Compose("Empresa Teste", scores)

	lo := strings.Index(res.Narrative, LowLabel)
	me := strings.Index(res.Narrative, MediumLabel)
	hi := strings.Index(res.Narrative, HighLabel)
	if lo < 0 || me < 0 || hi < 0 {
		t.Fatalf("missing clause in %q", res.Narrative)
	}
	if !(lo < me && me < hi) {
		t.Fatalf("clauses out of order lo=%d me=%d hi=%d: %q", lo, me, hi, res.Narrative)
	}
	if !strings.HasPrefix(res.Narrative, Intro("Empresa Teste")) {
		t.Fatalf("narrative should open with the intro: %q", res.Narrative)
	}

	if len(res.HighRiskDomains) != 1 {
		t.Fatalf("high bucket len = %d, want 1", len(res.HighRiskDomains))
	}
	if h := res.HighRiskDomains[0]; h.DomainID != 1 || h.DomainName != "Demandas no Trabalho" {
		t.Fatalf("high bucket = %+v", h)
	}
	if !strings.Contains(res.Narrative, HighLabel+"1 - Demandas no Trabalho") {
		t.Fatalf("high clause not rendered: %q", res.Narrative)
	}
	if !strings.Contains(res.Narrative, LowLabel+"2 - Organização e Conteúdo do Trabalho") {
		t.Fatalf("low clause not rendered: %q", res.Narrative)
	}
}

func TestCompose_StablePartition(t *testing.T) {
	t.Parallel()

	scores := []scoring.DomainScore{
		ds(9, "Nove", risk.Low),
		ds(2, "Dois", risk.High),
		ds(5, "Cinco", risk.Low),
		ds(1, "Um", risk.Low),
		ds(7, "Sete", risk.High),
	}
	res := Compose("X", scores)

	gotLow := []int{}
	for _, s := range res.LowRiskDomains {
		gotLow = append(gotLow, s.DomainID)
	}
	if len(gotLow) != 3 || gotLow[0] != 9 || gotLow[1] != 5 || gotLow[2] != 1 {
		t.Fatalf("low bucket order = %v, want [9 5 1]", gotLow)
	}
	if !strings.Contains(res.Narrative, LowLabel+"9 - Nove, 5 - Cinco, 1 - Um. ") {
		t.Fatalf("low clause list = %q", res.Narrative)
	}
	if !strings.Contains(res.Narrative, HighLabel+"2 - Dois, 7 - Sete. ") {
		t.Fatalf("high clause list = %q", res.Narrative)
	}
}

func TestCompose_PartitionComplete(t *testing.T) {
	t.Parallel()

	cats := []risk.Category{risk.Low, risk.Medium, risk.High}
	var scores []scoring.DomainScore
	for i, d := range catalog.All() {
		scores = append(scores, ds(d.ID, d.Name, cats[(i*7)%3]))
	}
	res := Compose("X", scores)

	total := len(res.LowRiskDomains) + len(res.MediumRiskDomains) + len(res.HighRiskDomains)
	if total != len(scores) {
		t.Fatalf("partition size = %d, want %d", total, len(scores))
	}
	seen := map[int]int{}
	for _, b := range [][]scoring.DomainScore{res.LowRiskDomains, res.MediumRiskDomains, res.HighRiskDomains} {
		for _, s := range b {
			seen[s.DomainID]++
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("domain %d appears %d times", id, n)
		}
	}
}

func TestCompose_EmptyAndSingleCategory(t *testing.T) {
	t.Parallel()

	empty := Compose("Clínica", nil)
	if empty.LowRiskDomains == nil || empty.MediumRiskDomains == nil || empty.HighRiskDomains == nil {
		t.Fatalf("buckets must be non nil")
	}
	if empty.Narrative != Intro("Clínica") {
		t.Fatalf("empty narrative = %q", empty.Narrative)
	}

	allMed := Compose("Clínica", []scoring.DomainScore{ds(3, "Três", risk.Medium), ds(4, "Quatro", risk.Medium)})
	if len(allMed.LowRiskDomains) != 0 || len(allMed.HighRiskDomains) != 0 || len(allMed.MediumRiskDomains) != 2 {
		t.Fatalf("buckets = %d/%d/%d", len(allMed.LowRiskDomains), len(allMed.MediumRiskDomains), len(allMed.HighRiskDomains))
	}
	if strings.Contains(allMed.Narrative, LowLabel) || strings.Contains(allMed.Narrative, HighLabel) {
		t.Fatalf("absent clauses rendered: %q", allMed.Narrative)
	}
	want := Intro("Clínica") + MediumLabel + "3 - Três, 4 - Quatro. "
	if allMed.Narrative != want {
		t.Fatalf("narrative = %q, want %q", allMed.Narrative, want)
	}
}

func TestCompose_NoDoubleSpaces(t *testing.T) {
	t.Parallel()

	res := Compose("ACME", []scoring.DomainScore{ds(1, "Um", risk.Low), ds(2, "Dois", risk.High)})
	if strings.Contains(res.Narrative, "  ") {
		t.Fatalf("double space in %q", res.Narrative)
	}
	if !strings.HasSuffix(res.Narrative, ". ") || strings.HasSuffix(res.Narrative, "  ") {
		t.Fatalf("narrative should end with a single trailing space: %q", res.Narrative)
	}
}

func TestCompose_FromScoredResponses(t *testing.T) {
	t.Parallel()

	scores := scoring.Score([]scoring.ItemResponse{
		{DomainID: 1, Value: 100}, {DomainID: 1, Value: 75},
		{DomainID: 2, Value: 100},
		{DomainID: 3, Value: 50},
	})
	res := Compose("Lote 12", scores)
	if len(res.LowRiskDomains)+len(res.MediumRiskDomains)+len(res.HighRiskDomains) != catalog.Size {
		t.Fatalf("expected all %d domains partitioned", catalog.Size)
	}
	if len(res.HighRiskDomains) != 1 || res.HighRiskDomains[0].DomainID != 1 {
		t.Fatalf("high bucket = %+v", res.HighRiskDomains)
	}
	if len(res.MediumRiskDomains) != 1 || res.MediumRiskDomains[0].DomainID != 3 {
		t.Fatalf("medium bucket = %+v", res.MediumRiskDomains)
	}
}

func TestDomainList(t *testing.T) {
	t.Parallel()

	if got := DomainList(nil); got != "" {
		t.Fatalf("DomainList(nil) = %q", got)
	}
	got := DomainList([]scoring.DomainScore{ds(10, "Endividamento Financeiro", risk.High), ds(8, "Comportamentos Ofensivos", risk.High)})
	if got != "10 - Endividamento Financeiro, 8 - Comportamentos Ofensivos" {
		t.Fatalf("DomainList = %q", got)
	}
}
