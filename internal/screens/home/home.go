package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/router"
	"github.com/jlozano/riskprep/internal/screen"
	"github.com/jlozano/riskprep/internal/screens/history"
	moduleview "github.com/jlozano/riskprep/internal/screens/module"
	"github.com/jlozano/riskprep/internal/screens/profile"
	"github.com/jlozano/riskprep/internal/screens/simulator"
	"github.com/jlozano/riskprep/internal/store"
	"github.com/jlozano/riskprep/internal/ui/components"
	"github.com/jlozano/riskprep/internal/ui/layout"
	"github.com/jlozano/riskprep/internal/ui/theme"
)

// HomeScreen lists the course modules plus the simulator, profile, and
// history entries.
type HomeScreen struct {
	catalog   *content.Catalog
	container *progress.Container
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(catalog *content.Catalog, container *progress.Container, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{catalog: catalog, container: container}

	items := make([]components.MenuItem, 0, len(catalog.Course.Modules)+4)
	for _, m := range catalog.Course.Modules {
		mod := m
		items = append(items, components.MenuItem{
			Label:  mod.Title,
			Detail: fmt.Sprintf("%d%%", progress.ModuleProgress(container.State(), mod)),
			Action: func() tea.Cmd {
				container.SetCurrentModule(mod.ID)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: moduleview.New(catalog, container, events, mod.ID)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Examen final simulado", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: simulator.New(catalog, container, events)}
			}
		}},
		components.MenuItem{Label: "Historial de intentos", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(container, events)}
			}
		}},
		components.MenuItem{Label: "Perfil y certificado", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(catalog, container)}
			}
		}},
		components.MenuItem{Label: "Salir", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)

	// Preselect the module the learner was last working on.
	current := progress.CurrentModule(catalog, container.State())
	for i, m := range catalog.Course.Modules {
		if m.ID == current.ID {
			h.menu.Selected = i
			break
		}
	}

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.container.State()
	overall := progress.OverallProgress(h.catalog, st)

	// Refresh per-module percentages; answers may have landed since
	// the menu was built.
	for i, m := range h.catalog.Course.Modules {
		h.menu.Items[i].Detail = fmt.Sprintf("%d%%", progress.ModuleProgress(st, m))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(h.catalog.Course.Title))
	b.WriteString("\n")
	if h.catalog.Course.Subtitle != "" && !layout.IsCompactHeight(height) {
		b.WriteString(theme.Subtitle.Width(width).Render(h.catalog.Course.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}
	summary := fmt.Sprintf("Progreso general  %s   (%d de %d preguntas)",
		components.ProgressBar(overall.Pct, barWidth), overall.Answered, overall.Total)
	b.WriteString("  " + summary + "\n")

	if best := progress.BestSimulatorScore(st); best > 0 {
		b.WriteString("  " + theme.Hint.Render(
			fmt.Sprintf("Mejor puntaje del simulador: %d/%d", best, len(h.catalog.Exam.Questions))) + "\n")
	}
	if progress.CertificateEligible(st) {
		b.WriteString("  " + theme.Correct.Render("✓ Certificado disponible") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(h.menu.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
