package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/andor/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for one-line condition answers and
// marks the line once it has been graded.
type AnswerInput struct {
	Model  textinput.Model
	graded bool
	valid  bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	styles := ti.Styles()
	styles.Cursor.Color = theme.Primary
	styles.Cursor.Blink = false
	ti.SetStyles(styles)

	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards messages while the answer is still editable.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.graded {
		return a, nil
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input with a ✓/✗ mark after grading.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.graded {
		if a.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Graded freezes the input and records the grading result.
func (a *AnswerInput) Graded(valid bool) {
	a.graded = true
	a.valid = valid
	a.Model.Blur()
}

// Reset clears the input for the next question and refocuses it.
func (a *AnswerInput) Reset() tea.Cmd {
	a.graded = false
	a.valid = false
	a.Model.Reset()
	return a.Model.Focus()
}
