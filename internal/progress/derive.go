package progress

import "github.com/jlozano/riskprep/internal/content"

// CertificateThreshold is the overall ratio required for issuance.
const CertificateThreshold = 0.70

// Overall summarizes progress across the whole catalog.
type Overall struct {
	Answered int
	Total    int
	Pct      int
}

// CurrentModule resolves the active module, falling back to the first
// module when the stored id no longer exists in the catalog.
func CurrentModule(c *content.Catalog, st State) content.Module {
	if m, ok := c.Module(st.CurrentModuleID); ok {
		return m
	}
	return c.FirstModule()
}

// OverallProgress counts answered questions across every quiz in the
// catalog against the catalog total.
func OverallProgress(c *content.Catalog, st State) Overall {
	total := c.TotalQuizQuestions()
	answered := 0
	for _, m := range c.Course.Modules {
		for _, quiz := range m.Quizzes {
			answered += answeredIn(st, quiz)
		}
	}
	return Overall{Answered: answered, Total: total, Pct: pct(answered, total)}
}

// ModuleProgress is the answered percentage scoped to one module.
func ModuleProgress(st State, m content.Module) int {
	total := m.QuestionCount()
	answered := 0
	for _, quiz := range m.Quizzes {
		answered += answeredIn(st, quiz)
	}
	return pct(answered, total)
}

// answeredIn counts ledger entries that refer to questions actually in
// the quiz, so stale ids never inflate the percentage.
func answeredIn(st State, quiz content.QuestionSet) int {
	ledger, ok := st.AnswersByQuiz[quiz.ID]
	if !ok {
		return 0
	}
	n := 0
	for _, q := range quiz.Questions {
		if _, answered := ledger[q.ID]; answered {
			n++
		}
	}
	return n
}

// BestSimulatorScore is the highest run score, or 0 with no runs.
func BestSimulatorScore(st State) int {
	best := 0
	for _, run := range st.Simulator.Runs {
		if run.Score > best {
			best = run.Score
		}
	}
	return best
}

// CertificateEligible reports whether the latest exam result clears
// the threshold. No result, or a result with no questions, is not
// eligible.
func CertificateEligible(st State) bool {
	res := st.Simulator.LastResult
	if res == nil {
		return false
	}
	total := res.TotalQuestions()
	if total == 0 {
		return false
	}
	return float64(res.TotalCorrect())/float64(total) >= CertificateThreshold
}

// pct rounds to the nearest whole percent, so 2 of 3 reads 67.
func pct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return (part*100 + whole/2) / whole
}
