package simulator

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/scoring"
	"github.com/jlozano/riskprep/internal/ui/components"
	"github.com/jlozano/riskprep/internal/ui/theme"
)

// lowClockSecs is where the countdown turns red.
const lowClockSecs = 300

func (s *SimulatorScreen) View(width, height int) string {
	if s.session.Submitted() {
		return s.resultView(width)
	}
	return s.examView(width)
}

func (s *SimulatorScreen) examView(width int) string {
	var b strings.Builder

	clock := formatClock(s.session.TimeLeft())
	clockStyle := theme.Title
	if s.session.TimeLeft() <= lowClockSecs {
		clockStyle = theme.Urgent
	}
	b.WriteString(clockStyle.Width(width).Render("⏱ " + clock))
	b.WriteString("\n\n")

	answered := len(s.session.Answers())
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Pregunta %d de %d   ·   %d respondidas",
		s.session.Index()+1, s.session.Total(), answered)))
	b.WriteString("\n\n")
	b.WriteString(s.options.View())

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (s *SimulatorScreen) resultView(width int) string {
	res := s.session.Result()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Resultado del examen"))
	b.WriteString("\n\n")

	total := s.session.Total()
	pct := 0
	if total > 0 {
		pct = res.Score * 100 / total
	}
	scoreStyle := theme.Correct
	if pct < 70 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString("  " + scoreStyle.Render(fmt.Sprintf("Puntaje: %d de %d (%d%%)", res.Score, total, pct)) + "\n\n")

	barWidth := width / 3
	if barWidth > 30 {
		barWidth = 30
	}
	domains := scoring.Domains(res.ByDomain)
	labelWidth := 0
	for _, d := range domains {
		if len(d) > labelWidth {
			labelWidth = len(d)
		}
	}
	for _, d := range domains {
		stat := res.ByDomain[d]
		label := fmt.Sprintf("%-*s", labelWidth, d)
		b.WriteString("  " + components.DomainBar(label, stat.Correct, stat.Total, barWidth) + "\n")
	}

	if res.Recommendation != "" {
		b.WriteString("\n  " + theme.Hint.Render(res.Recommendation) + "\n")
	}

	if best := progress.BestSimulatorScore(s.container.State()); best > 0 {
		b.WriteString("\n  " + theme.Hint.Render(fmt.Sprintf("Mejor puntaje histórico: %d/%d", best, total)) + "\n")
	}
	if progress.CertificateEligible(s.container.State()) {
		b.WriteString("\n  " + theme.Correct.Render("✓ Alcanzaste el umbral del certificado (70%)") + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

// formatClock renders remaining seconds as MM:SS.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
