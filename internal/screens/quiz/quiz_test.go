package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents []store.QuizAnswerEventData
}

func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, data store.QuizAnswerEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendExamEvent(context.Context, store.ExamEventData) error { return nil }
func (m *mockEventRepo) RecentExamRuns(context.Context, int) ([]store.ExamRun, error) {
	return nil, nil
}

func testSet() content.QuestionSet {
	return content.QuestionSet{
		ID:    "m1-quiz",
		Title: "Mini-examen",
		Questions: []content.Question{
			{ID: "q1", Prompt: "p1", Options: []string{"a", "b", "c"}, AnswerIndex: 1, Domain: "Planificación"},
			{ID: "q2", Prompt: "p2", Options: []string{"a", "b"}, AnswerIndex: 0, Domain: "Monitoreo"},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestAnswer_RecordedAndRevealed(t *testing.T) {
	events := &mockEventRepo{}
	c := progress.NewContainer(progress.NewState("m1"), nil)
	s := New(c, events, testSet())

	_, cmd := s.Update(keyPress('j'))
	if cmd != nil {
		t.Fatalf("cursor move produced a command: %v", cmd)
	}
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		if msg := cmd(); msg != nil {
			s.Update(msg)
		}
	}

	ledger := c.State().AnswersByQuiz["m1-quiz"]
	if got := ledger["q1"]; got != 1 {
		t.Errorf("ledger[q1] = %d, want 1", got)
	}
	if !s.options.Reveal {
		t.Error("answer key not revealed after answering")
	}
	if len(events.quizEvents) != 1 {
		t.Fatalf("quiz events = %d, want 1", len(events.quizEvents))
	}
	ev := events.quizEvents[0]
	if ev.QuizID != "m1-quiz" || ev.QuestionID != "q1" || ev.OptionIndex != 1 || !ev.Correct {
		t.Errorf("event = %+v", ev)
	}
	if ev.Domain != "Planificación" {
		t.Errorf("domain = %q", ev.Domain)
	}
}

func TestAnswer_OverwriteKeepsSingleEntry(t *testing.T) {
	c := progress.NewContainer(progress.NewState("m1"), nil)
	s := New(c, nil, testSet())

	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))

	ledger := c.State().AnswersByQuiz["m1-quiz"]
	if len(ledger) != 1 {
		t.Fatalf("ledger = %v, want one entry per question", ledger)
	}
	if ledger["q1"] != 1 {
		t.Errorf("ledger[q1] = %d, want latest pick 1", ledger["q1"])
	}
}

func TestNavigation_RestoresSavedPick(t *testing.T) {
	c := progress.NewContainer(progress.NewState("m1"), nil)
	c.RecordAnswer("m1-quiz", "q1", 2)
	s := New(c, nil, testSet())

	if s.options.Chosen != 2 {
		t.Errorf("chosen = %d, want restored pick 2", s.options.Chosen)
	}
	if !s.options.Reveal {
		t.Error("answered question must show the key on load")
	}

	s.Update(keyPress('l'))
	if s.index != 1 {
		t.Fatalf("index = %d, want 1", s.index)
	}
	if s.options.Chosen != -1 || s.options.Reveal {
		t.Error("unanswered question leaked state from the previous one")
	}

	s.Update(keyPress('h'))
	if s.index != 0 || s.options.Chosen != 2 {
		t.Errorf("index = %d chosen = %d after going back", s.index, s.options.Chosen)
	}
}

func TestNavigation_ClampedAtEdges(t *testing.T) {
	s := New(progress.NewContainer(progress.NewState("m1"), nil), nil, testSet())

	s.Update(keyPress('h'))
	if s.index != 0 {
		t.Errorf("index = %d, want clamp at first question", s.index)
	}
	s.Update(keyPress('l'))
	s.Update(keyPress('l'))
	if s.index != 1 {
		t.Errorf("index = %d, want clamp at last question", s.index)
	}
}
