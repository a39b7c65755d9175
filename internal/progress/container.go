package progress

import (
	"log/slog"
	"time"

	"github.com/jlozano/riskprep/internal/scoring"
)

// Saver persists the whole state after a mutation. Write failures are
// logged and swallowed; the session keeps running on the in-memory
// copy.
type Saver interface {
	Save(State) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(State) error

func (f SaverFunc) Save(s State) error { return f(s) }

// Container owns the live state and funnels every mutation through
// Update, so persistence is a single choke point instead of a side
// effect scattered across the UI.
type Container struct {
	state State
	saver Saver
}

// NewContainer wraps an existing state. A nil saver disables
// persistence, which the tests use.
func NewContainer(st State, saver Saver) *Container {
	st.normalize()
	return &Container{state: st, saver: saver}
}

// State returns the current state value. The maps inside are live;
// callers that need an isolated copy use Snapshot.
func (c *Container) State() State { return c.state }

// Snapshot returns a deep copy of the current state.
func (c *Container) Snapshot() State { return c.state.Clone() }

// Update applies a mutator to the state and persists the result.
func (c *Container) Update(fn func(*State)) {
	fn(&c.state)
	if c.saver == nil {
		return
	}
	if err := c.saver.Save(c.state); err != nil {
		slog.Warn("progress save failed", "error", err)
	}
}

// RecordAnswer sets the selection for one quiz question, overwriting
// any prior pick.
func (c *Container) RecordAnswer(quizID, questionID string, optionIndex int) {
	c.Update(func(s *State) {
		ledger, ok := s.AnswersByQuiz[quizID]
		if !ok {
			ledger = make(scoring.AnswerMap)
			s.AnswersByQuiz[quizID] = ledger
		}
		ledger[questionID] = optionIndex
	})
}

// SetActivityText stores the free-text response for an activity.
func (c *Container) SetActivityText(activityID, text string) {
	c.Update(func(s *State) {
		s.ActivityTexts[activityID] = text
	})
}

// SetCurrentModule switches the active module.
func (c *Container) SetCurrentModule(moduleID string) {
	c.Update(func(s *State) {
		s.CurrentModuleID = moduleID
	})
}

// SetProfile updates the certificate name and email.
func (c *Container) SetProfile(name, email string) {
	c.Update(func(s *State) {
		s.Profile = Profile{Name: name, Email: email}
	})
}

// SaveSimulatorClock checkpoints an unfinished exam run so it can be
// resumed after a restart.
func (c *Container) SaveSimulatorClock(answers scoring.AnswerMap, timeLeft int) {
	c.Update(func(s *State) {
		s.Simulator.Answers = answers
		s.Simulator.TimeLeft = &timeLeft
	})
}

// RecordSimulatorResult finalizes an exam run: appends to the history,
// stores the result, and clears the mid-run checkpoint.
func (c *Container) RecordSimulatorResult(answers scoring.AnswerMap, res scoring.Result, at time.Time) {
	c.Update(func(s *State) {
		s.Simulator.Answers = answers
		s.Simulator.Runs = append(s.Simulator.Runs, SimulatorRun{Date: at, Score: res.Score})
		s.Simulator.LastResult = &res
		s.Simulator.TimeLeft = nil
	})
}

// Reset discards all progress and starts over at the given module.
func (c *Container) Reset(moduleID string) {
	c.Update(func(s *State) {
		*s = NewState(moduleID)
	})
}

// Replace swaps in an imported state wholesale.
func (c *Container) Replace(st State) {
	c.Update(func(s *State) {
		*s = st
		s.normalize()
	})
}
