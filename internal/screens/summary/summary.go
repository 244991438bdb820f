package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/screen"
	"github.com/abhisek/andor/internal/ui/layout"
	"github.com/abhisek/andor/internal/ui/text"
	"github.com/abhisek/andor/internal/ui/theme"
)

// SummaryScreen displays the final score.
type SummaryScreen struct {
	summary drill.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum drill.Summary) *SummaryScreen {
	return &SummaryScreen{summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, screen.Done
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(theme.Heading.Render(text.CompleteTitle)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Correct: %d        Skipped: %d        Score: %.0f%%",
		sum.Correct, sum.Skipped, sum.Percentage)
	b.WriteString(center(theme.Hint.Render(stats)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(0, min(width-8, 60))))
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	for _, line := range strings.Split(text.Score(sum), "\n") {
		b.WriteString(center(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(text.Reminder()))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
