package scoring

import (
	"strings"
	"testing"

	"github.com/jlozano/riskprep/internal/content"
)

func twoQuestionSet() content.QuestionSet {
	return content.QuestionSet{
		ID: "qs",
		Questions: []content.Question{
			{ID: "q1", Prompt: "p1", Options: []string{"a", "b"}, AnswerIndex: 0, Domain: "X"},
			{ID: "q2", Prompt: "p2", Options: []string{"a", "b"}, AnswerIndex: 1, Domain: "Y"},
		},
	}
}

func TestScore_CountsMatches(t *testing.T) {
	set := twoQuestionSet()

	tests := []struct {
		name    string
		answers AnswerMap
		want    int
	}{
		{"no answers", AnswerMap{}, 0},
		{"all correct", AnswerMap{"q1": 0, "q2": 1}, 2},
		{"one correct", AnswerMap{"q1": 0, "q2": 0}, 1},
		{"all wrong", AnswerMap{"q1": 1, "q2": 0}, 0},
		{"unknown ids ignored", AnswerMap{"ghost": 0}, 0},
		{"partial answers", AnswerMap{"q2": 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(set, tt.answers); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreByDomain_TotalsCoverEveryQuestion(t *testing.T) {
	set := content.QuestionSet{
		ID: "qs",
		Questions: []content.Question{
			{ID: "a", Options: []string{"x", "y"}, AnswerIndex: 0, Domain: "Plan"},
			{ID: "b", Options: []string{"x", "y"}, AnswerIndex: 1, Domain: "Plan"},
			{ID: "c", Options: []string{"x", "y"}, AnswerIndex: 0},
		},
	}

	byDomain := ScoreByDomain(set, AnswerMap{"a": 0})

	sum := 0
	for _, stat := range byDomain {
		sum += stat.Total
	}
	if sum != len(set.Questions) {
		t.Errorf("sum of totals = %d, want %d", sum, len(set.Questions))
	}

	if got := byDomain["Plan"]; got.Correct != 1 || got.Total != 2 {
		t.Errorf("Plan = %+v, want {1 2}", got)
	}
	// Untagged questions land in the default domain; unanswered counts wrong.
	if got := byDomain[content.DefaultDomain]; got.Correct != 0 || got.Total != 1 {
		t.Errorf("%s = %+v, want {0 1}", content.DefaultDomain, got)
	}
}

func TestScoreByDomain_TwoDomainScenario(t *testing.T) {
	set := twoQuestionSet()
	answers := AnswerMap{"q1": 0, "q2": 0}

	if got := Score(set, answers); got != 1 {
		t.Errorf("Score = %d, want 1", got)
	}

	byDomain := ScoreByDomain(set, answers)
	if got := byDomain["X"]; got.Correct != 1 || got.Total != 1 {
		t.Errorf("X = %+v, want {1 1}", got)
	}
	if got := byDomain["Y"]; got.Correct != 0 || got.Total != 1 {
		t.Errorf("Y = %+v, want {0 1}", got)
	}

	rec := Recommend(byDomain)
	if !strings.Contains(rec, `"Y"`) {
		t.Errorf("recommendation %q should mention domain Y", rec)
	}
}

func TestDomains_LexicographicOrder(t *testing.T) {
	byDomain := map[string]DomainStat{
		"Registro":      {1, 2},
		"Fundamentos":   {2, 2},
		"Planificación": {0, 3},
	}
	got := Domains(byDomain)
	want := []string{"Fundamentos", "Planificación", "Registro"}
	if len(got) != len(want) {
		t.Fatalf("Domains = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Domains[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEvaluate_AssemblesResult(t *testing.T) {
	set := twoQuestionSet()
	res := Evaluate(set, AnswerMap{"q1": 0, "q2": 0})

	if res.Score != 1 {
		t.Errorf("Score = %d, want 1", res.Score)
	}
	if res.TotalQuestions() != 2 {
		t.Errorf("TotalQuestions = %d, want 2", res.TotalQuestions())
	}
	if res.TotalCorrect() != 1 {
		t.Errorf("TotalCorrect = %d, want 1", res.TotalCorrect())
	}
	if res.Percent() != 0.5 {
		t.Errorf("Percent = %f, want 0.5", res.Percent())
	}
	if res.Recommendation == "" {
		t.Error("expected a recommendation")
	}
}
