package scoring

import (
	"strings"
	"testing"
)

func TestRecommend_PicksLowestRatio(t *testing.T) {
	byDomain := map[string]DomainStat{
		"Planificación":  {Correct: 4, Total: 5},
		"Identificación": {Correct: 1, Total: 4},
		"Respuestas":     {Correct: 3, Total: 4},
	}
	rec := Recommend(byDomain)
	if !strings.Contains(rec, `"Identificación"`) {
		t.Errorf("recommendation %q should mention Identificación", rec)
	}
}

func TestRecommend_TieBreaksLexicographically(t *testing.T) {
	byDomain := map[string]DomainStat{
		"Zeta":  {Correct: 1, Total: 2},
		"Alfa":  {Correct: 2, Total: 4},
		"Medio": {Correct: 3, Total: 3},
	}
	rec := Recommend(byDomain)
	if !strings.Contains(rec, `"Alfa"`) {
		t.Errorf("recommendation %q should break the 50%% tie toward Alfa", rec)
	}
}

func TestRecommend_EmptyInput(t *testing.T) {
	if rec := Recommend(nil); rec != "" {
		t.Errorf("Recommend(nil) = %q, want empty", rec)
	}
	if rec := Recommend(map[string]DomainStat{}); rec != "" {
		t.Errorf("Recommend(empty) = %q, want empty", rec)
	}
}

func TestRecommend_SkipsZeroTotalDomains(t *testing.T) {
	byDomain := map[string]DomainStat{
		"Vacío": {Correct: 0, Total: 0},
		"Real":  {Correct: 0, Total: 1},
	}
	rec := Recommend(byDomain)
	if !strings.Contains(rec, `"Real"`) {
		t.Errorf("recommendation %q should skip zero-total domains", rec)
	}
}
