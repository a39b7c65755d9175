// Package progress holds the learner's mutable course state: current
// module, quiz answer ledgers, activity texts, simulator history, and
// profile. The state is a plain value; Container wires mutation to
// persistence.
package progress

import (
	"time"

	"github.com/jlozano/riskprep/internal/scoring"
)

// SchemaVersion guards future changes to the serialized state shape.
const SchemaVersion = 1

// AnswersByQuiz maps a quiz id to its answer ledger.
type AnswersByQuiz map[string]scoring.AnswerMap

// SimulatorRun is one completed exam attempt.
type SimulatorRun struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// SimulatorState carries the in-flight exam answers, the append-only
// run history, the persisted countdown (nil outside an unfinished
// run), and the most recent result.
type SimulatorState struct {
	Answers    scoring.AnswerMap `json:"answers"`
	Runs       []SimulatorRun    `json:"runs"`
	TimeLeft   *int              `json:"timeLeft"`
	LastResult *scoring.Result   `json:"lastResult"`
}

// Profile is the name and email printed on the certificate.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// State is the root progress record, one per user, serialized whole.
type State struct {
	Version         int               `json:"version"`
	CurrentModuleID string            `json:"currentModuleId"`
	AnswersByQuiz   AnswersByQuiz     `json:"answersByQuiz"`
	ActivityTexts   map[string]string `json:"activityTexts"`
	Simulator       SimulatorState    `json:"simulator"`
	Profile         Profile           `json:"profile"`
}

// NewState returns a fresh default state pointing at the given module.
func NewState(moduleID string) State {
	return State{
		Version:         SchemaVersion,
		CurrentModuleID: moduleID,
		AnswersByQuiz:   make(AnswersByQuiz),
		ActivityTexts:   make(map[string]string),
		Simulator: SimulatorState{
			Answers: make(scoring.AnswerMap),
		},
	}
}

// normalize fills in nil maps so callers can index without checks.
// Deserialized or zero-value states pass through here.
func (s *State) normalize() {
	if s.Version == 0 {
		s.Version = SchemaVersion
	}
	if s.AnswersByQuiz == nil {
		s.AnswersByQuiz = make(AnswersByQuiz)
	}
	if s.ActivityTexts == nil {
		s.ActivityTexts = make(map[string]string)
	}
	if s.Simulator.Answers == nil {
		s.Simulator.Answers = make(scoring.AnswerMap)
	}
}

// Clone returns a deep copy, so snapshots and exports cannot alias the
// live maps.
func (s State) Clone() State {
	out := s
	out.AnswersByQuiz = make(AnswersByQuiz, len(s.AnswersByQuiz))
	for quiz, answers := range s.AnswersByQuiz {
		m := make(scoring.AnswerMap, len(answers))
		for id, sel := range answers {
			m[id] = sel
		}
		out.AnswersByQuiz[quiz] = m
	}
	out.ActivityTexts = make(map[string]string, len(s.ActivityTexts))
	for id, text := range s.ActivityTexts {
		out.ActivityTexts[id] = text
	}
	out.Simulator.Answers = make(scoring.AnswerMap, len(s.Simulator.Answers))
	for id, sel := range s.Simulator.Answers {
		out.Simulator.Answers[id] = sel
	}
	out.Simulator.Runs = append([]SimulatorRun(nil), s.Simulator.Runs...)
	if s.Simulator.TimeLeft != nil {
		t := *s.Simulator.TimeLeft
		out.Simulator.TimeLeft = &t
	}
	if s.Simulator.LastResult != nil {
		r := *s.Simulator.LastResult
		r.ByDomain = make(map[string]scoring.DomainStat, len(s.Simulator.LastResult.ByDomain))
		for d, st := range s.Simulator.LastResult.ByDomain {
			r.ByDomain[d] = st
		}
		out.Simulator.LastResult = &r
	}
	return out
}
