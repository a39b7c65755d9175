// Package screen declares the contract every view in the app satisfies.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jlozano/riskprep/internal/ui/layout"
)

// Screen is one view on the router's stack. The app model owns the
// frame; a screen only renders the content area between header and
// footer.
type Screen interface {
	// Init runs when the screen is pushed onto the stack.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen publish its own footer key hints in
// place of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
