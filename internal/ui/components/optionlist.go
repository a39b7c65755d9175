package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jlozano/riskprep/internal/ui/theme"
)

// OptionList is a multiple-choice selector backed by a saved answer
// ledger. Quizzes reveal the answer key as soon as a pick lands;
// the simulator keeps Reveal off until the whole run is submitted.
type OptionList struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string

	Cursor int
	Chosen int // -1 until a pick is recorded
	Reveal bool
	Locked bool

	onPick func(index int) tea.Cmd
}

// NewOptionList creates an option list. chosen is the previously saved
// selection, or -1. onPick fires when the user confirms an option.
func NewOptionList(prompt string, options []string, correctIndex, chosen int, onPick func(index int) tea.Cmd) OptionList {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return OptionList{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       cursor,
		Chosen:       chosen,
		onPick:       onPick,
	}
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter":
		o.Chosen = o.Cursor
		if o.onPick != nil {
			return o, o.onPick(o.Chosen)
		}
	}

	return o, nil
}

// View renders the prompt, options, and the explanation once revealed.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabel(i), opt)

		switch {
		case o.Reveal && o.Chosen >= 0 && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Reveal && i == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Cursor && !o.Locked:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if o.Reveal && o.Chosen >= 0 && o.Explanation != "" {
		s += "\n" + theme.Hint.Render(o.Explanation) + "\n"
	}

	return s
}

// IsCorrect reports whether the recorded pick matches the answer key.
func (o OptionList) IsCorrect() bool {
	return o.Chosen >= 0 && o.Chosen == o.CorrectIndex
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
