package intro

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/router"
	"github.com/abhisek/andor/internal/screen"
	"github.com/abhisek/andor/internal/ui/layout"
	"github.com/abhisek/andor/internal/ui/text"
	"github.com/abhisek/andor/internal/ui/theme"
)

// IntroScreen shows the rule and instructions, then starts the drill on Enter.
type IntroScreen struct {
	drill        *drill.Drill
	next         func() screen.Screen
	errMsg       string
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen. next builds the first question screen once
// the drill has started.
func New(d *drill.Drill, next func() screen.Screen) *IntroScreen {
	return &IntroScreen{drill: d, next: next}
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Instructions"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || kmsg.String() != "enter" || s.transitioned {
		return s, nil
	}

	if err := s.drill.Start(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.transitioned = true
	next := s.next()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	sections := []string{
		theme.Heading.Render(text.DrillTitle),
		"",
		text.Rule(),
		"",
		text.Instructions(),
		"",
		text.Prompt(text.StartPrompt),
	}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
