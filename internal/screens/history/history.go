// Package history lists past simulator attempts.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/screen"
	"github.com/jlozano/riskprep/internal/store"
	"github.com/jlozano/riskprep/internal/ui/theme"
)

type historyLoadedMsg struct {
	Runs []store.ExamRun
	Err  error
}

// HistoryScreen displays the simulator run history, newest first. The
// event log carries richer detail than the state's run list; when no
// event repo is wired the screen falls back to the state.
type HistoryScreen struct {
	container *progress.Container
	events    store.EventRepo

	runs   []store.ExamRun
	loaded bool
	errMsg string
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(container *progress.Container, events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{container: container, events: events}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.events == nil {
		s.loaded = true
		return nil
	}
	return func() tea.Msg {
		runs, err := s.events.RecentExamRuns(context.Background(), 50)
		return historyLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(historyLoadedMsg); ok {
		s.loaded = true
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.runs = m.Runs
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Historial de intentos"))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Hint.Render("  Cargando…"))
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
	case len(s.runs) > 0:
		b.WriteString(s.eventRows())
	default:
		b.WriteString(s.stateRows())
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (s *HistoryScreen) eventRows() string {
	var b strings.Builder
	for _, run := range s.runs {
		line := fmt.Sprintf("  %s   %2d/%d   %d min",
			run.Timestamp.Local().Format("2006-01-02 15:04"),
			run.Score, run.Total, run.DurationSecs/60)
		if run.AutoSubmitted {
			line += "   " + theme.Hint.Render("(tiempo agotado)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// stateRows renders the run list carried in the progress state, used
// when the event log is unavailable (e.g. after an import).
func (s *HistoryScreen) stateRows() string {
	runs := s.container.State().Simulator.Runs
	if len(runs) == 0 {
		return theme.Hint.Render("  Aún no hay intentos del examen final.")
	}
	var b strings.Builder
	for i := len(runs) - 1; i >= 0; i-- {
		b.WriteString(fmt.Sprintf("  %s   %d puntos\n",
			runs[i].Date.Local().Format("2006-01-02 15:04"), runs[i].Score))
	}
	return b.String()
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}
