// Package simulator runs the timed final exam: a 60 minute countdown
// over the full question set, scored by domain on submission.
package simulator

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/exam"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/router"
	"github.com/jlozano/riskprep/internal/screen"
	"github.com/jlozano/riskprep/internal/screens/history"
	"github.com/jlozano/riskprep/internal/scoring"
	"github.com/jlozano/riskprep/internal/store"
	"github.com/jlozano/riskprep/internal/ui/components"
	"github.com/jlozano/riskprep/internal/ui/layout"
)

// SimulatorScreen owns one exam.Session and the tick loop driving it.
type SimulatorScreen struct {
	catalog   *content.Catalog
	container *progress.Container
	events    store.EventRepo

	session *exam.Session
	runID   string
	gen     int
	resumed bool

	// set when a restored checkpoint came back already expired and the
	// forced submission still needs recording
	expiredOnLoad bool

	options components.OptionList
}

var _ screen.Screen = (*SimulatorScreen)(nil)
var _ screen.KeyHintProvider = (*SimulatorScreen)(nil)

// New creates the simulator screen, resuming an unfinished run when a
// mid-run checkpoint exists.
func New(catalog *content.Catalog, container *progress.Container, events store.EventRepo) *SimulatorScreen {
	s := &SimulatorScreen{
		catalog:   catalog,
		container: container,
		events:    events,
		runID:     uuid.NewString(),
	}

	sim := container.State().Simulator
	if sim.TimeLeft != nil {
		s.resumed = true
		s.session = exam.Resume(catalog.Exam, sim.Answers, *sim.TimeLeft)
	} else {
		s.session = exam.New(catalog.Exam, catalog.ExamDurationSeconds())
	}

	// A checkpoint restored at zero submits during Resume; the run is
	// recorded in Init so the history matches what the learner sees.
	s.expiredOnLoad = s.session.Submitted()

	s.loadQuestion()
	return s
}

// loadQuestion rebuilds the option list for the session's current
// question. The answer key stays hidden until the run is submitted.
func (s *SimulatorScreen) loadQuestion() {
	q := s.session.Current()
	s.options = components.NewOptionList(q.Prompt, q.Options, q.AnswerIndex, s.session.Selected(q.ID), func(index int) tea.Cmd {
		return s.recordPick(q, index)
	})
	s.options.Explanation = q.Explanation
	s.options.Reveal = s.session.Submitted()
	s.options.Locked = s.session.Submitted()
}

// recordPick stores the selection in the session and checkpoints the
// run so a crash mid-exam resumes where it left off.
func (s *SimulatorScreen) recordPick(q content.Question, index int) tea.Cmd {
	if !s.session.Select(q.ID, index) {
		return nil
	}
	s.container.SaveSimulatorClock(s.session.Answers(), s.session.TimeLeft())
	return nil
}

func (s *SimulatorScreen) Init() tea.Cmd {
	if s.expiredOnLoad {
		s.expiredOnLoad = false
		return s.finalize(true)
	}
	if s.session.Submitted() {
		return nil
	}

	cmds := []tea.Cmd{s.tickCmd()}
	if !s.resumed {
		s.container.SaveSimulatorClock(s.session.Answers(), s.session.TimeLeft())
		cmds = append(cmds, s.appendEvent(store.ExamEventData{
			RunID:  s.runID,
			Action: "start",
		}))
	}
	return tea.Batch(cmds...)
}

// tickCmd schedules the next 1-second tick for the current generation.
func (s *SimulatorScreen) tickCmd() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{Gen: gen, At: t}
	})
}

func (s *SimulatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)

	case eventLoggedMsg:
		if msg.Err != nil {
			slog.Warn("exam event append failed", "error", msg.Err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SimulatorScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.gen || s.session.Submitted() {
		return s, nil
	}

	expired := s.session.Tick()
	if expired {
		return s, s.finalize(true)
	}
	s.container.SaveSimulatorClock(s.session.Answers(), s.session.TimeLeft())
	return s, s.tickCmd()
}

func (s *SimulatorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		s.session.Prev()
		s.loadQuestion()
		return s, nil
	case "right", "l":
		s.session.Next()
		s.loadQuestion()
		return s, nil
	case "s":
		if !s.session.Submitted() {
			s.session.Submit()
			return s, s.finalize(false)
		}
		return s, nil
	case "r":
		if s.session.Submitted() {
			return s, s.restart()
		}
		return s, nil
	case "v":
		if s.session.Submitted() {
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: history.New(s.container, s.events)}
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// finalize records a submitted run in the progress state and the
// event log, and stops the tick loop for this generation.
func (s *SimulatorScreen) finalize(auto bool) tea.Cmd {
	s.gen++
	res := *s.session.Result()
	s.container.RecordSimulatorResult(s.session.Answers(), res, time.Now())
	s.loadQuestion()

	duration := s.catalog.ExamDurationSeconds() - s.session.TimeLeft()
	var tallies []store.DomainTallyData
	for _, d := range scoring.Domains(res.ByDomain) {
		stat := res.ByDomain[d]
		tallies = append(tallies, store.DomainTallyData{
			Domain:  d,
			Correct: stat.Correct,
			Total:   stat.Total,
		})
	}
	return s.appendEvent(store.ExamEventData{
		RunID:          s.runID,
		Action:         "submit",
		Score:          res.Score,
		TotalQuestions: len(s.catalog.Exam.Questions),
		DurationSecs:   duration,
		AutoSubmitted:  auto,
		ByDomain:       tallies,
	})
}

// restart begins a fresh run with a new answer map and full clock. The
// run history keeps every prior attempt.
func (s *SimulatorScreen) restart() tea.Cmd {
	s.gen++
	s.runID = uuid.NewString()
	s.resumed = false
	s.session = exam.New(s.catalog.Exam, s.catalog.ExamDurationSeconds())
	s.loadQuestion()
	return s.Init()
}

func (s *SimulatorScreen) appendEvent(data store.ExamEventData) tea.Cmd {
	if s.events == nil {
		return nil
	}
	return func() tea.Msg {
		return eventLoggedMsg{Err: s.events.AppendExamEvent(context.Background(), data)}
	}
}

func (s *SimulatorScreen) Title() string {
	return "Examen final simulado"
}

func (s *SimulatorScreen) KeyHints() []layout.KeyHint {
	if s.session.Submitted() {
		return []layout.KeyHint{
			{Key: "R", Description: "Nuevo intento"},
			{Key: "V", Description: "Historial"},
			{Key: "Esc", Description: "Atrás"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Opción"},
		{Key: "Enter", Description: "Marcar"},
		{Key: "←→", Description: "Pregunta"},
		{Key: "S", Description: "Enviar"},
		{Key: "Esc", Description: "Atrás"},
	}
}
