// Package module renders one course module: its lessons, reflection
// activities, and mini-quizzes.
package module

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/router"
	"github.com/jlozano/riskprep/internal/screen"
	"github.com/jlozano/riskprep/internal/screens/quiz"
	"github.com/jlozano/riskprep/internal/store"
	"github.com/jlozano/riskprep/internal/ui/components"
	"github.com/jlozano/riskprep/internal/ui/layout"
	"github.com/jlozano/riskprep/internal/ui/theme"
)

type mode int

const (
	modeMenu mode = iota
	modeLesson
	modeActivity
)

// ModuleScreen shows a module overview and drills into its content.
type ModuleScreen struct {
	catalog   *content.Catalog
	container *progress.Container
	module    content.Module

	menu components.Menu
	mode mode

	lesson   *content.Lesson
	activity *content.Activity
	input    components.TextInput
}

var _ screen.Screen = (*ModuleScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleScreen)(nil)

// New creates a module screen for the given module id.
func New(catalog *content.Catalog, container *progress.Container, events store.EventRepo, moduleID string) *ModuleScreen {
	mod, ok := catalog.Module(moduleID)
	if !ok {
		mod = catalog.FirstModule()
	}
	s := &ModuleScreen{catalog: catalog, container: container, module: mod}

	var items []components.MenuItem
	for i := range mod.Lessons {
		lesson := &mod.Lessons[i]
		items = append(items, components.MenuItem{
			Label: "Lección: " + lesson.Title,
			Action: func() tea.Cmd {
				s.mode = modeLesson
				s.lesson = lesson
				return nil
			},
		})
	}
	for i := range mod.Activities {
		act := &mod.Activities[i]
		items = append(items, components.MenuItem{
			Label: "Actividad: " + act.Title,
			Action: func() tea.Cmd {
				s.mode = modeActivity
				s.activity = act
				saved := container.State().ActivityTexts[act.ID]
				s.input = components.NewTextInput(act.Placeholder, saved, 500)
				return s.input.Init()
			},
		})
	}
	for _, q := range mod.Quizzes {
		set := q
		items = append(items, components.MenuItem{
			Label: "Mini-examen: " + setTitle(set),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quiz.New(container, events, set)}
				}
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func setTitle(set content.QuestionSet) string {
	if set.Title != "" {
		return set.Title
	}
	return set.ID
}

func (s *ModuleScreen) Init() tea.Cmd {
	return nil
}

func (s *ModuleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch s.mode {
		case modeLesson:
			if kmsg.String() == "enter" || kmsg.String() == "backspace" {
				s.mode = modeMenu
				s.lesson = nil
			}
			return s, nil
		case modeActivity:
			switch kmsg.String() {
			case "enter":
				s.container.SetActivityText(s.activity.ID, s.input.Value())
				s.mode = modeMenu
				s.activity = nil
				return s, nil
			default:
				var cmd tea.Cmd
				s.input, cmd = s.input.Update(msg)
				return s, cmd
			}
		}
	}

	if s.mode != modeMenu {
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModuleScreen) View(width, height int) string {
	switch s.mode {
	case modeLesson:
		return s.lessonView(width)
	case modeActivity:
		return s.activityView(width)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(s.module.Title))
	b.WriteString("\n\n")

	pct := progress.ModuleProgress(s.container.State(), s.module)
	barWidth := width / 3
	if barWidth > 40 {
		barWidth = 40
	}
	b.WriteString("  Avance del módulo  " + components.ProgressBar(pct, barWidth) + "\n\n")
	b.WriteString(s.menu.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *ModuleScreen) lessonView(width int) string {
	textWidth := width - 8
	if textWidth < 20 {
		textWidth = 20
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(s.lesson.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth).Render(s.lesson.Content))
	b.WriteString("\n")

	if s.lesson.Chart != nil {
		chartWidth := textWidth
		if layout.IsCompactWidth(width) {
			chartWidth = textWidth * 2 / 3
		}
		b.WriteString("\n" + renderChart(s.lesson.Chart, chartWidth) + "\n")
	}
	if s.lesson.Video != "" {
		b.WriteString("\n" + theme.Hint.Render("Video: "+s.lesson.Video) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("Enter para volver") + "\n")

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (s *ModuleScreen) activityView(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(s.activity.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width-8).Render(s.activity.Brief))
	b.WriteString("\n\n")
	b.WriteString("  " + s.input.View() + "\n\n")
	b.WriteString(theme.Hint.Render("Enter para guardar y volver") + "\n")

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

// renderChart draws the lesson's bar data as horizontal bars scaled to
// the chart maximum.
func renderChart(c *content.Chart, width int) string {
	labelWidth := 0
	for _, bar := range c.Data {
		if len(bar.Label) > labelWidth {
			labelWidth = len(bar.Label)
		}
	}
	barSpace := width - labelWidth - 10
	if barSpace < 10 {
		barSpace = 10
	}

	max := c.Max
	if max <= 0 {
		for _, bar := range c.Data {
			if bar.Value > max {
				max = bar.Value
			}
		}
	}
	if max <= 0 {
		max = 1
	}

	var b strings.Builder
	for _, bar := range c.Data {
		n := bar.Value * barSpace / max
		if n < 1 && bar.Value > 0 {
			n = 1
		}
		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, bar.Label))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", n)))
		b.WriteString(fmt.Sprintf(" %d\n", bar.Value))
	}
	if c.Caption != "" {
		b.WriteString(theme.Hint.Render(c.Caption) + "\n")
	}
	return b.String()
}

func (s *ModuleScreen) Title() string {
	return s.module.Title
}

func (s *ModuleScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeLesson:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Volver"},
			{Key: "Esc", Description: "Atrás"},
		}
	case modeActivity:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Guardar"},
			{Key: "Esc", Description: "Atrás"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Esc", Description: "Atrás"},
	}
}
