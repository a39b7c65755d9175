// Package profile edits the learner identity used on the certificate
// and shows whether the certificate can be issued.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/screen"
	"github.com/jlozano/riskprep/internal/ui/components"
	"github.com/jlozano/riskprep/internal/ui/layout"
	"github.com/jlozano/riskprep/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
)

// ProfileScreen edits the name and email stored in the progress state.
type ProfileScreen struct {
	catalog   *content.Catalog
	container *progress.Container

	name    components.TextInput
	email   components.TextInput
	focused int
	saved   bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen seeded from the current state.
func New(catalog *content.Catalog, container *progress.Container) *ProfileScreen {
	p := container.State().Profile
	s := &ProfileScreen{
		catalog:   catalog,
		container: container,
		name:      components.NewTextInput("Nombre completo", p.Name, 80),
		email:     components.NewTextInput("correo@ejemplo.com", p.Email, 120),
	}
	s.email.Blur()
	return s
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.name.Focus()
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab":
			if s.focused == fieldName {
				s.focused = fieldEmail
				s.name.Blur()
				return s, s.email.Focus()
			}
			s.focused = fieldName
			s.email.Blur()
			return s, s.name.Focus()
		case "enter":
			s.container.SetProfile(strings.TrimSpace(s.name.Value()), strings.TrimSpace(s.email.Value()))
			s.saved = true
			return s, nil
		}
	}

	var cmd tea.Cmd
	if s.focused == fieldName {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.email, cmd = s.email.Update(msg)
	}
	s.saved = false
	return s, cmd
}

func (s *ProfileScreen) View(width, height int) string {
	st := s.container.State()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Perfil y certificado"))
	b.WriteString("\n\n")
	b.WriteString("  Nombre:  " + s.name.View() + "\n")
	b.WriteString("  Email:   " + s.email.View() + "\n\n")

	if s.saved {
		b.WriteString("  " + theme.Correct.Render("Perfil guardado") + "\n\n")
	}

	if progress.CertificateEligible(st) {
		b.WriteString("  " + theme.Correct.Render("✓ Eres elegible para el certificado.") + "\n")
		b.WriteString("  " + theme.Hint.Render("Genera el archivo con: riskprep cert") + "\n")
	} else {
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf(
			"El certificado requiere al menos %d%% en el examen final simulado.",
			int(progress.CertificateThreshold*100))) + "\n")
		if res := st.Simulator.LastResult; res != nil {
			total := res.TotalQuestions()
			if total > 0 {
				b.WriteString("  " + theme.Hint.Render(fmt.Sprintf(
					"Último resultado: %d de %d.", res.TotalCorrect(), total)) + "\n")
			}
		}
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (s *ProfileScreen) Title() string {
	return "Perfil"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Campo"},
		{Key: "Enter", Description: "Guardar"},
		{Key: "Esc", Description: "Atrás"},
	}
}
