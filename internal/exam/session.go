// Package exam implements the timed final-exam session: a small state
// machine that owns the countdown, the in-flight answer map, and the
// submission transition. The 1-second tick itself is scheduled by the
// caller; the session only defines what a tick means.
package exam

import (
	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/scoring"
)

// State is the lifecycle state of a session.
type State int

const (
	StateInProgress State = iota
	StateSubmitted
)

// Session is one timed run over the final-exam question set. Submitted
// is terminal: starting over means a fresh Session with a fresh answer
// map, while the run history lives in the progress state.
type Session struct {
	set      content.QuestionSet
	answers  scoring.AnswerMap
	timeLeft int
	state    State
	index    int
	result   *scoring.Result
}

// New starts a fresh session with the full duration on the clock.
func New(set content.QuestionSet, durationSecs int) *Session {
	return &Session{
		set:      set,
		answers:  make(scoring.AnswerMap),
		timeLeft: durationSecs,
	}
}

// Resume continues an unfinished session from persisted answers and
// clock. A restored clock at 0 or below submits immediately instead of
// silently resuming a finished timer.
func Resume(set content.QuestionSet, answers scoring.AnswerMap, timeLeft int) *Session {
	s := New(set, timeLeft)
	for id, sel := range answers {
		s.answers[id] = sel
	}
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.Submit()
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Submitted reports whether the session has reached its terminal state.
func (s *Session) Submitted() bool { return s.state == StateSubmitted }

// TimeLeft returns the remaining seconds, frozen after submission.
func (s *Session) TimeLeft() int { return s.timeLeft }

// Total returns the number of questions in the set.
func (s *Session) Total() int { return len(s.set.Questions) }

// Index returns the position of the question currently displayed.
func (s *Session) Index() int { return s.index }

// Current returns the question at the navigation index.
func (s *Session) Current() content.Question {
	return s.set.Questions[s.index]
}

// Goto moves the navigation index, clamped to [0, total-1]. Navigation
// never changes scoring state.
func (s *Session) Goto(i int) {
	if i < 0 {
		i = 0
	}
	if max := s.Total() - 1; i > max {
		i = max
	}
	s.index = i
}

// Next advances to the following question.
func (s *Session) Next() { s.Goto(s.index + 1) }

// Prev moves back to the previous question.
func (s *Session) Prev() { s.Goto(s.index - 1) }

// Select records an option choice for a question. Refused once
// submitted.
func (s *Session) Select(questionID string, optionIndex int) bool {
	if s.state == StateSubmitted {
		return false
	}
	s.answers[questionID] = optionIndex
	return true
}

// Selected returns the chosen option for a question, or -1.
func (s *Session) Selected(questionID string) int {
	if sel, ok := s.answers[questionID]; ok {
		return sel
	}
	return -1
}

// Answers returns a copy of the current answer map.
func (s *Session) Answers() scoring.AnswerMap {
	out := make(scoring.AnswerMap, len(s.answers))
	for id, sel := range s.answers {
		out[id] = sel
	}
	return out
}

// Tick consumes one second of the clock, flooring at 0. Reaching 0
// while in progress forces submission, exactly once. Ticks after
// submission are no-ops, so a straggling timer callback cannot mutate a
// finished run. Returns true when this tick caused the auto-submit.
func (s *Session) Tick() bool {
	if s.state != StateInProgress {
		return false
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		s.Submit()
		return true
	}
	return false
}

// Submit moves the session to Submitted, freezes the clock, and scores
// the answer map by domain. Idempotent: a second call returns the
// result already computed without re-scoring or side effects.
func (s *Session) Submit() scoring.Result {
	if s.state == StateSubmitted {
		return *s.result
	}
	s.state = StateSubmitted
	res := scoring.Evaluate(s.set, s.answers)
	s.result = &res
	return res
}

// Result returns the outcome of a submitted session, or nil while in
// progress.
func (s *Session) Result() *scoring.Result { return s.result }
