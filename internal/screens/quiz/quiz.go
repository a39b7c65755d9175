// Package quiz runs a module mini-quiz: one question at a time, the
// pick is recorded immediately and the answer key revealed in place.
package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/screen"
	"github.com/jlozano/riskprep/internal/scoring"
	"github.com/jlozano/riskprep/internal/store"
	"github.com/jlozano/riskprep/internal/ui/components"
	"github.com/jlozano/riskprep/internal/ui/layout"
	"github.com/jlozano/riskprep/internal/ui/theme"
)

// QuizScreen drives one question set with a persistent answer ledger.
type QuizScreen struct {
	container *progress.Container
	events    store.EventRepo
	set       content.QuestionSet

	index   int
	options components.OptionList
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given question set.
func New(container *progress.Container, events store.EventRepo, set content.QuestionSet) *QuizScreen {
	s := &QuizScreen{container: container, events: events, set: set}
	s.loadQuestion()
	return s
}

// loadQuestion rebuilds the option list for the current question,
// restoring any previously saved pick.
func (s *QuizScreen) loadQuestion() {
	q := s.set.Questions[s.index]
	chosen := -1
	if ledger, ok := s.container.State().AnswersByQuiz[s.set.ID]; ok {
		if sel, answered := ledger[q.ID]; answered {
			chosen = sel
		}
	}
	s.options = components.NewOptionList(q.Prompt, q.Options, q.AnswerIndex, chosen, func(index int) tea.Cmd {
		return s.recordPick(q, index)
	})
	s.options.Explanation = q.Explanation
	// Answered questions show the key right away.
	s.options.Reveal = chosen >= 0
}

// recordPick persists the selection and appends an answer event.
func (s *QuizScreen) recordPick(q content.Question, index int) tea.Cmd {
	s.container.RecordAnswer(s.set.ID, q.ID, index)

	if s.events == nil {
		return nil
	}
	data := store.QuizAnswerEventData{
		QuizID:      s.set.ID,
		QuestionID:  q.ID,
		OptionIndex: index,
		Correct:     index == q.AnswerIndex,
		Domain:      q.DomainOrDefault(),
	}
	return func() tea.Msg {
		if err := s.events.AppendQuizAnswer(context.Background(), data); err != nil {
			slog.Warn("quiz answer event append failed", "error", err)
		}
		return nil
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			if s.index > 0 {
				s.index--
				s.loadQuestion()
			}
			return s, nil
		case "right", "l":
			if s.index < len(s.set.Questions)-1 {
				s.index++
				s.loadQuestion()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if s.options.Chosen >= 0 {
		s.options.Reveal = true
	}
	return s, cmd
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(s.setTitle()))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Pregunta %d de %d", s.index+1, len(s.set.Questions))))
	b.WriteString("\n\n")
	b.WriteString(s.options.View())
	b.WriteString("\n")
	b.WriteString(s.scoreLine())

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

// scoreLine summarizes the running score over answered questions.
func (s *QuizScreen) scoreLine() string {
	ledger := s.container.State().AnswersByQuiz[s.set.ID]
	if len(ledger) == 0 {
		return ""
	}
	return theme.Hint.Render(fmt.Sprintf("Aciertos: %d de %d respondidas",
		scoring.Score(s.set, ledger), len(ledger)))
}

func (s *QuizScreen) setTitle() string {
	if s.set.Title != "" {
		return s.set.Title
	}
	return s.set.ID
}

func (s *QuizScreen) Title() string {
	return s.setTitle()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Opción"},
		{Key: "Enter", Description: "Responder"},
		{Key: "←→", Description: "Pregunta"},
		{Key: "Esc", Description: "Atrás"},
	}
}
