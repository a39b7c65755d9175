package exam

import (
	"testing"

	"github.com/jlozano/riskprep/internal/content"
)

func examSet() content.QuestionSet {
	return content.QuestionSet{
		ID:    "final-exam",
		Title: "Examen final simulado",
		Questions: []content.Question{
			{ID: "q1", Prompt: "p1", Options: []string{"a", "b"}, AnswerIndex: 0, Domain: "Planificación"},
			{ID: "q2", Prompt: "p2", Options: []string{"a", "b"}, AnswerIndex: 1, Domain: "Planificación"},
			{ID: "q3", Prompt: "p3", Options: []string{"a", "b"}, AnswerIndex: 0, Domain: "Monitoreo"},
		},
	}
}

func TestNew_StartsFresh(t *testing.T) {
	s := New(examSet(), 3600)

	if s.State() != StateInProgress {
		t.Fatalf("state = %v, want StateInProgress", s.State())
	}
	if s.TimeLeft() != 3600 {
		t.Errorf("timeLeft = %d, want 3600", s.TimeLeft())
	}
	if got := s.Selected("q1"); got != -1 {
		t.Errorf("Selected(q1) = %d, want -1 on a fresh session", got)
	}
	if s.Result() != nil {
		t.Errorf("Result() = %v, want nil before submission", s.Result())
	}
}

func TestTick_FloorsAtZeroAndAutoSubmitsOnce(t *testing.T) {
	s := New(examSet(), 2)
	s.Select("q1", 0)

	if fired := s.Tick(); fired {
		t.Fatal("Tick at 1s remaining should not auto-submit")
	}
	if fired := s.Tick(); !fired {
		t.Fatal("Tick reaching 0 should auto-submit")
	}
	if s.State() != StateSubmitted {
		t.Fatalf("state = %v, want StateSubmitted", s.State())
	}
	if s.TimeLeft() != 0 {
		t.Errorf("timeLeft = %d, want 0", s.TimeLeft())
	}
	res := s.Result()
	if res == nil || res.Score != 1 {
		t.Fatalf("result = %+v, want score 1", res)
	}
	// Straggling ticks after submission must change nothing.
	if fired := s.Tick(); fired {
		t.Error("Tick after submission reported another auto-submit")
	}
	if s.TimeLeft() != 0 {
		t.Errorf("timeLeft after late tick = %d, want 0", s.TimeLeft())
	}
}

func TestSubmit_Idempotent(t *testing.T) {
	s := New(examSet(), 3600)
	s.Select("q1", 0)
	s.Select("q2", 1)

	first := s.Submit()
	if first.Score != 2 {
		t.Fatalf("score = %d, want 2", first.Score)
	}
	clock := s.TimeLeft()

	s.Select("q3", 0)
	second := s.Submit()
	if second.Score != first.Score {
		t.Errorf("second Submit score = %d, want %d", second.Score, first.Score)
	}
	if s.TimeLeft() != clock {
		t.Errorf("timeLeft changed across repeat Submit: %d != %d", s.TimeLeft(), clock)
	}
}

func TestSelect_RefusedAfterSubmit(t *testing.T) {
	s := New(examSet(), 3600)
	s.Submit()

	if s.Select("q1", 0) {
		t.Error("Select accepted after submission")
	}
	if got := s.Selected("q1"); got != -1 {
		t.Errorf("Selected(q1) = %d, want -1", got)
	}
}

func TestNavigation_Clamped(t *testing.T) {
	s := New(examSet(), 3600)

	s.Prev()
	if s.Index() != 0 {
		t.Errorf("Prev at first question moved index to %d", s.Index())
	}
	s.Goto(99)
	if s.Index() != 2 {
		t.Errorf("Goto(99) landed on %d, want 2", s.Index())
	}
	s.Next()
	if s.Index() != 2 {
		t.Errorf("Next at last question moved index to %d", s.Index())
	}
	s.Goto(-5)
	if s.Index() != 0 {
		t.Errorf("Goto(-5) landed on %d, want 0", s.Index())
	}
	if s.Current().ID != "q1" {
		t.Errorf("Current().ID = %q, want q1", s.Current().ID)
	}
}

func TestResume_RestoresAnswersAndClock(t *testing.T) {
	s := Resume(examSet(), map[string]int{"q1": 0, "q2": 0}, 120)

	if s.State() != StateInProgress {
		t.Fatalf("state = %v, want StateInProgress", s.State())
	}
	if s.TimeLeft() != 120 {
		t.Errorf("timeLeft = %d, want 120", s.TimeLeft())
	}
	if got := s.Selected("q1"); got != 0 {
		t.Errorf("Selected(q1) = %d, want 0", got)
	}
}

func TestResume_ExpiredClockSubmitsImmediately(t *testing.T) {
	s := Resume(examSet(), map[string]int{"q1": 0, "q2": 1, "q3": 0}, 0)

	if s.State() != StateSubmitted {
		t.Fatalf("state = %v, want StateSubmitted", s.State())
	}
	if s.Result() == nil || s.Result().Score != 3 {
		t.Fatalf("result = %+v, want score 3", s.Result())
	}

	s = Resume(examSet(), nil, -30)
	if !s.Submitted() {
		t.Fatal("negative restored clock should submit immediately")
	}
	if s.TimeLeft() != 0 {
		t.Errorf("timeLeft = %d, want 0", s.TimeLeft())
	}
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	s := New(examSet(), 3600)
	s.Select("q1", 1)

	got := s.Answers()
	got["q1"] = 0
	got["q2"] = 0

	if s.Selected("q1") != 1 {
		t.Error("mutating the Answers copy leaked into the session")
	}
	if s.Selected("q2") != -1 {
		t.Error("mutating the Answers copy added answers to the session")
	}
}
