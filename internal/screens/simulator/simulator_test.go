package simulator

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents []store.QuizAnswerEventData
	examEvents []store.ExamEventData
}

func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, data store.QuizAnswerEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendExamEvent(_ context.Context, data store.ExamEventData) error {
	m.examEvents = append(m.examEvents, data)
	return nil
}
func (m *mockEventRepo) RecentExamRuns(_ context.Context, _ int) ([]store.ExamRun, error) {
	return nil, nil
}

func testCatalog() *content.Catalog {
	return &content.Catalog{
		Course: content.Course{
			Title:     "Curso",
			Simulator: content.SimulatorConfig{DurationMinutes: 60},
			Modules: []content.Module{
				{ID: "m1", Title: "Fundamentos"},
			},
		},
		Exam: content.QuestionSet{
			ID:    "final-exam",
			Title: "Examen final simulado",
			Questions: []content.Question{
				{ID: "q1", Prompt: "p1", Options: []string{"a", "b"}, AnswerIndex: 0, Domain: "Planificación"},
				{ID: "q2", Prompt: "p2", Options: []string{"a", "b"}, AnswerIndex: 1, Domain: "Monitoreo"},
			},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// drain runs a command and feeds its message back to the screen, the
// way the program loop would.
func drain(t *testing.T, s *SimulatorScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	_, next := s.Update(msg)
	drain(t, s, next)
}

func TestNew_FreshRunHasFullClock(t *testing.T) {
	scr := New(testCatalog(), progress.NewContainer(progress.NewState("m1"), nil), nil)

	if scr.session.TimeLeft() != 3600 {
		t.Errorf("timeLeft = %d, want 3600", scr.session.TimeLeft())
	}
	if scr.session.Submitted() {
		t.Error("fresh run must start in progress")
	}
}

func TestTick_DecrementsAndCheckpoints(t *testing.T) {
	c := progress.NewContainer(progress.NewState("m1"), nil)
	scr := New(testCatalog(), c, nil)

	scr.Update(timerTickMsg{Gen: scr.gen, At: time.Now()})

	if scr.session.TimeLeft() != 3599 {
		t.Errorf("timeLeft = %d, want 3599", scr.session.TimeLeft())
	}
	tl := c.State().Simulator.TimeLeft
	if tl == nil || *tl != 3599 {
		t.Errorf("checkpoint = %v, want 3599", tl)
	}
}

func TestTick_StaleGenerationIgnored(t *testing.T) {
	scr := New(testCatalog(), progress.NewContainer(progress.NewState("m1"), nil), nil)

	scr.Update(timerTickMsg{Gen: scr.gen - 1, At: time.Now()})

	if scr.session.TimeLeft() != 3600 {
		t.Errorf("stale tick drained the clock: %d", scr.session.TimeLeft())
	}
}

func TestSubmitKey_RecordsRunOnce(t *testing.T) {
	events := &mockEventRepo{}
	c := progress.NewContainer(progress.NewState("m1"), nil)
	scr := New(testCatalog(), c, events)

	_, cmd := scr.Update(keyPress('s'))
	drain(t, scr, cmd)
	_, cmd = scr.Update(keyPress('s'))
	drain(t, scr, cmd)

	if !scr.session.Submitted() {
		t.Fatal("session not submitted after s key")
	}
	sim := c.State().Simulator
	if len(sim.Runs) != 1 {
		t.Fatalf("runs = %d, want exactly 1 after repeated submit", len(sim.Runs))
	}
	if sim.TimeLeft != nil {
		t.Errorf("timeLeft = %v, want nil after submission", sim.TimeLeft)
	}
}

func TestSubmit_AppendsExamEvent(t *testing.T) {
	events := &mockEventRepo{}
	c := progress.NewContainer(progress.NewState("m1"), nil)
	scr := New(testCatalog(), c, events)

	scr.session.Select("q1", 0)
	_, cmd := scr.Update(keyPress('s'))
	drain(t, scr, cmd)

	if len(events.examEvents) != 1 {
		t.Fatalf("exam events = %d, want 1", len(events.examEvents))
	}
	ev := events.examEvents[0]
	if ev.Action != "submit" || ev.Score != 1 || ev.TotalQuestions != 2 {
		t.Errorf("event = %+v", ev)
	}
	if ev.AutoSubmitted {
		t.Error("manual submit flagged as auto")
	}
	if len(ev.ByDomain) != 2 {
		t.Errorf("byDomain = %+v, want both domains", ev.ByDomain)
	}
}

func TestResume_MidRunCheckpoint(t *testing.T) {
	st := progress.NewState("m1")
	tl := 120
	st.Simulator.TimeLeft = &tl
	st.Simulator.Answers = map[string]int{"q1": 0}
	scr := New(testCatalog(), progress.NewContainer(st, nil), nil)

	if scr.session.TimeLeft() != 120 {
		t.Errorf("timeLeft = %d, want 120", scr.session.TimeLeft())
	}
	if scr.session.Selected("q1") != 0 {
		t.Error("checkpointed answer lost on resume")
	}
}

func TestResume_ExpiredCheckpointAutoSubmits(t *testing.T) {
	events := &mockEventRepo{}
	st := progress.NewState("m1")
	tl := 0
	st.Simulator.TimeLeft = &tl
	st.Simulator.Answers = map[string]int{"q1": 0, "q2": 1}
	c := progress.NewContainer(st, nil)

	scr := New(testCatalog(), c, events)
	drain(t, scr, scr.Init())

	if !scr.session.Submitted() {
		t.Fatal("expired checkpoint did not auto-submit")
	}
	sim := c.State().Simulator
	if len(sim.Runs) != 1 || sim.Runs[0].Score != 2 {
		t.Fatalf("runs = %+v, want one run with score 2", sim.Runs)
	}
	if len(events.examEvents) != 1 || !events.examEvents[0].AutoSubmitted {
		t.Errorf("exam events = %+v, want one auto-submit", events.examEvents)
	}
}

func TestRestartKey_StartsFreshRunKeepingHistory(t *testing.T) {
	c := progress.NewContainer(progress.NewState("m1"), nil)
	scr := New(testCatalog(), c, nil)

	_, cmd := scr.Update(keyPress('s'))
	drain(t, scr, cmd)
	_, cmd = scr.Update(keyPress('r'))
	_ = cmd

	if scr.session.Submitted() {
		t.Fatal("restart did not create a fresh session")
	}
	if scr.session.TimeLeft() != 3600 {
		t.Errorf("timeLeft = %d, want full clock", scr.session.TimeLeft())
	}
	if got := len(c.State().Simulator.Runs); got != 1 {
		t.Errorf("runs = %d, history must survive restart", got)
	}
}
