package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/andor/internal/ui/theme"
)

// QuestionProgress shows how far through the drill the learner is, one cell
// per question.
type QuestionProgress struct {
	Current int // 1-based ordinal of the question being asked
	Total   int
}

// View renders the cells followed by "n/total".
func (p QuestionProgress) View() string {
	if p.Total <= 0 {
		return ""
	}

	done := lipgloss.NewStyle().Foreground(theme.Primary)
	todo := lipgloss.NewStyle().Foreground(theme.Border)

	var b strings.Builder
	for i := 1; i <= p.Total; i++ {
		if i <= p.Current {
			b.WriteString(done.Render("■"))
		} else {
			b.WriteString(todo.Render("□"))
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", p.Current, p.Total)))
	return b.String()
}
