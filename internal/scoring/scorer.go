// Package scoring computes quiz and exam scores. Everything here is a
// pure function over a question set and the user's selections; nothing
// is cached, so results can never go stale.
package scoring

import (
	"sort"

	"github.com/jlozano/riskprep/internal/content"
)

// noAnswer is the sentinel for an unanswered question. It can never
// equal a valid option index.
const noAnswer = -1

// AnswerMap maps question id to the selected 0-based option index.
type AnswerMap map[string]int

// DomainStat accumulates correct/total counts for one domain.
type DomainStat struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Result is the outcome of scoring a full question set by domain.
type Result struct {
	ByDomain       map[string]DomainStat `json:"byDomain"`
	Score          int                   `json:"score"`
	Recommendation string                `json:"recommendation"`
}

// Score counts the questions whose selected option matches the answer
// key. Unanswered questions count as incorrect.
func Score(set content.QuestionSet, answers AnswerMap) int {
	score := 0
	for _, q := range set.Questions {
		if sel, ok := answers[q.ID]; ok && sel == q.AnswerIndex {
			score++
		}
	}
	return score
}

// ScoreByDomain buckets every question by its domain tag (DefaultDomain
// when absent), counting totals and correct answers per bucket. The sum
// of totals always equals the number of questions in the set.
func ScoreByDomain(set content.QuestionSet, answers AnswerMap) map[string]DomainStat {
	byDomain := make(map[string]DomainStat)
	for _, q := range set.Questions {
		dom := q.DomainOrDefault()
		stat := byDomain[dom]
		stat.Total++
		sel, ok := answers[q.ID]
		if !ok {
			sel = noAnswer
		}
		if sel == q.AnswerIndex {
			stat.Correct++
		}
		byDomain[dom] = stat
	}
	return byDomain
}

// Evaluate scores a set and assembles the full Result, including the
// weak-area recommendation.
func Evaluate(set content.QuestionSet, answers AnswerMap) Result {
	byDomain := ScoreByDomain(set, answers)
	return Result{
		ByDomain:       byDomain,
		Score:          Score(set, answers),
		Recommendation: Recommend(byDomain),
	}
}

// Domains returns the domain names in lexicographic order, the stable
// order used for display.
func Domains(byDomain map[string]DomainStat) []string {
	names := make([]string, 0, len(byDomain))
	for dom := range byDomain {
		names = append(names, dom)
	}
	sort.Strings(names)
	return names
}

// TotalCorrect sums correct answers across all domains.
func (r Result) TotalCorrect() int {
	sum := 0
	for _, stat := range r.ByDomain {
		sum += stat.Correct
	}
	return sum
}

// TotalQuestions sums question counts across all domains.
func (r Result) TotalQuestions() int {
	sum := 0
	for _, stat := range r.ByDomain {
		sum += stat.Total
	}
	return sum
}

// Percent returns the overall correct ratio in [0, 1]. Zero questions
// yields 0.
func (r Result) Percent() float64 {
	total := r.TotalQuestions()
	if total == 0 {
		return 0
	}
	return float64(r.TotalCorrect()) / float64(total)
}
