package components

import (
	"fmt"
	"strings"

	"github.com/jlozano/riskprep/internal/ui/theme"
)

// ProgressBar renders a horizontal percentage bar of the given width.
func ProgressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 4 {
		width = 4
	}

	filled := width * pct / 100
	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// DomainBar renders a labeled correct/total bar for one exam domain.
func DomainBar(label string, correct, total, width int) string {
	pct := 0
	if total > 0 {
		pct = correct * 100 / total
	}
	return fmt.Sprintf("%s  %s  %d/%d", label, ProgressBar(pct, width), correct, total)
}
