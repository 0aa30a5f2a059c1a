package risk

import (
	"math"
	"strings"
	"testing"

	"copsoq/internal/core/catalog"
)

func TestClassify_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		mean float64
		dir  catalog.Direction
		cat  Category
		sem  Semaphore
	}{
		{"positive high score", 74.9, catalog.Positive, Low, Green},
		{"positive low score", 18.6, catalog.Positive, High, Red},
		{"negative low score", 18.2, catalog.Negative, Low, Green},
		{"negative high score", 75.5, catalog.Negative, High, Red},
		{"positive middle", 50, catalog.Positive, Medium, Yellow},
		{"negative middle", 50, catalog.Negative, Medium, Yellow},
		{"positive just above upper", 66.0001, catalog.Positive, Low, Green},
		{"negative just above upper", 66.0001, catalog.Negative, High, Red},
		{"positive just below lower", 32.999, catalog.Positive, High, Red},
		{"negative just below lower", 32.999, catalog.Negative, Low, Green},
		{"positive zero", 0, catalog.Positive, High, Red},
		{"negative zero", 0, catalog.Negative, Low, Green},
		{"positive max", 100, catalog.Positive, Low, Green},
		{"negative max", 100, catalog.Negative, High, Red},
	}
	for _, tc := range cases {
		got := Classify(tc.mean, tc.dir)
		if got.Category != tc.cat || got.Semaphore != tc.sem {
			t.Fatalf("%s: Classify(%v, %s) = %+v, want %s/%s", tc.name, tc.mean, tc.dir, got, tc.cat, tc.sem)
		}
	}
}

func TestClassify_BoundariesAreMedium(t *testing.T) {
	t.Parallel()

	for _, dir := range []catalog.Direction{catalog.Positive, catalog.Negative} {
		for _, m := range []float64{LowerCut, UpperCut} {
			if got := Classify(m, dir); got.Category != Medium || got.Semaphore != Yellow {
				t.Fatalf("Classify(%v, %s) = %+v, want medium/yellow", m, dir, got)
			}
		}
	}
}

func TestClassify_SweepMatchesRule(t *testing.T) {
	t.Parallel()

	for i := 0; i <= 1000; i++ {
		m := float64(i) / 10
		pos := Classify(m, catalog.Positive).Category
		neg := Classify(m, catalog.Negative).Category
		switch {
		case m > 66:
			if pos != Low || neg != High {
				t.Fatalf("m=%v pos=%s neg=%s", m, pos, neg)
			}
		case m >= 33:
			if pos != Medium || neg != Medium {
				t.Fatalf("m=%v pos=%s neg=%s", m, pos, neg)
			}
		default:
			if pos != High || neg != Low {
				t.Fatalf("m=%v pos=%s neg=%s", m, pos, neg)
			}
		}
	}
}

func TestClassify_OutOfRangeExtrapolates(t *testing.T) {
	t.Parallel()

	if got := Classify(-10, catalog.Positive); got.Category != High {
		t.Fatalf("negative mean positive dir = %s, want high", got.Category)
	}
	if got := Classify(-10, catalog.Negative); got.Category != Low {
		t.Fatalf("negative mean negative dir = %s, want low", got.Category)
	}
	if got := Classify(140, catalog.Positive); got.Category != Low {
		t.Fatalf("140 positive dir = %s, want low", got.Category)
	}
	if got := Classify(140, catalog.Negative); got.Category != High {
		t.Fatalf("140 negative dir = %s, want high", got.Category)
	}
	// NaN must not panic
	_ = Classify(math.NaN(), catalog.Positive)
	_ = Classify(math.Inf(1), catalog.Negative)
}

func TestSemaphoreOf(t *testing.T) {
	t.Parallel()

	want := map[Category]Semaphore{Low: Green, Medium: Yellow, High: Red}
	for c, s := range want {
		if got := SemaphoreOf(c); got != s {
			t.Fatalf("SemaphoreOf(%s) = %s, want %s", c, got, s)
		}
	}
}

func TestRecommendedAction(t *testing.T) {
	t.Parallel()

	if a := RecommendedAction(Low, true); !strings.Contains(a, "Dados insuficientes") {
		t.Fatalf("insufficient action = %q", a)
	}
	seen := map[string]bool{}
	for _, c := range []Category{Low, Medium, High} {
		a := RecommendedAction(c, false)
		if a == "" || strings.Contains(a, "Dados insuficientes") {
			t.Fatalf("action for %s = %q", c, a)
		}
		if seen[a] {
			t.Fatalf("action for %s duplicates another tier", c)
		}
		seen[a] = true
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	if Label(Low) != "Baixo risco" || Label(Medium) != "Risco médio" || Label(High) != "Alto risco" {
		t.Fatalf("unexpected labels: %q %q %q", Label(Low), Label(Medium), Label(High))
	}
	if Label(Category("x")) != "x" {
		t.Fatalf("unknown category should echo its tag")
	}
}
