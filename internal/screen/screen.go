package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/andor/internal/ui/layout"
)

// Screen is one page of the full-screen drill.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// QuitMsg ends the program after the learner typed the quit control word.
type QuitMsg struct{}

// DoneMsg ends the program once the summary has been read.
type DoneMsg struct{}

// Quit is a command that emits QuitMsg.
func Quit() tea.Msg { return QuitMsg{} }

// Done is a command that emits DoneMsg.
func Done() tea.Msg { return DoneMsg{} }
