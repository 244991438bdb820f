package question

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/andor/internal/bank"
	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/router"
	"github.com/abhisek/andor/internal/screen"
	"github.com/abhisek/andor/internal/screens/summary"
	"github.com/abhisek/andor/internal/ui/components"
	"github.com/abhisek/andor/internal/ui/layout"
	"github.com/abhisek/andor/internal/ui/text"
	"github.com/abhisek/andor/internal/ui/theme"
)

const (
	answerCharLimit = 200
	cardMaxWidth    = 78
)

// QuestionScreen asks the drill's questions one at a time. The answer of a
// skipped question stays on screen above the next one.
type QuestionScreen struct {
	drill    *drill.Drill
	log      *zap.Logger
	input    components.AnswerInput
	revealed *bank.Question
	feedback *drill.Outcome
	errMsg   string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for a drill that has already started.
func New(d *drill.Drill, log *zap.Logger) *QuestionScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuestionScreen{
		drill: d,
		log:   log,
		input: components.NewAnswerInput("type the condition, skip, or quit", answerCharLimit),
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuestionScreen) Title() string {
	q, ok := s.drill.Current()
	if !ok {
		return "Drill"
	}
	return fmt.Sprintf("Question %d/%d", q.Ordinal, s.drill.Total())
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	switch s.drill.Phase() {
	case drill.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Exit"},
		}
	case drill.PhaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Results"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "skip", Description: "Show answer"},
		{Key: "quit", Description: "Exit"},
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s.handleEnter()
	}

	if s.drill.Phase() == drill.PhaseAwaitingInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuestionScreen) handleEnter() (screen.Screen, tea.Cmd) {
	switch s.drill.Phase() {
	case drill.PhaseAwaitingInput:
		return s.submit()

	case drill.PhaseFeedback:
		if err := s.drill.Acknowledge(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.feedback = nil
		if s.drill.Phase() == drill.PhaseSummary {
			return s, s.finish()
		}
		return s, s.input.Reset()

	case drill.PhaseSummary:
		return s, s.finish()
	}
	return s, nil
}

func (s *QuestionScreen) submit() (screen.Screen, tea.Cmd) {
	out, err := s.drill.Submit(s.input.Value())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	drill.LogOutcome(s.log, s.drill, out)

	switch out.Kind {
	case drill.OutcomeQuit:
		return s, screen.Quit

	case drill.OutcomeSkipped:
		q := out.Question
		s.revealed = &q
		if s.drill.Phase() == drill.PhaseSummary {
			s.input.Graded(false)
			return s, nil
		}
		return s, s.input.Reset()

	default:
		s.revealed = nil
		s.feedback = &out
		s.input.Graded(out.Kind == drill.OutcomeCorrect)
		return s, nil
	}
}

func (s *QuestionScreen) finish() tea.Cmd {
	sum := s.drill.Summary()
	drill.LogFinished(s.log, sum)
	next := summary.New(sum)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuestionScreen) View(width, height int) string {
	cardWidth := max(min(width-4, cardMaxWidth), 20)
	var sections []string

	if s.revealed != nil {
		sections = append(sections, theme.Card.Width(cardWidth).Render(
			theme.Hint.Render(fmt.Sprintf("Question %d: %s", s.revealed.Ordinal, s.revealed.Title))+"\n"+
				text.Reveal(*s.revealed)))
	}

	if s.drill.Phase() == drill.PhaseSummary {
		sections = append(sections, text.Prompt("Press Enter to see your results..."))
		return s.frame(sections)
	}

	q, ok := s.drill.Current()
	if !ok {
		return s.frame(sections)
	}

	progress := components.QuestionProgress{Current: q.Ordinal, Total: s.drill.Total()}
	sections = append(sections,
		progress.View(),
		theme.Heading.Render(text.QuestionTitle(q, s.drill.Total())),
		lipgloss.NewStyle().Width(cardWidth).Render(q.Prompt),
		s.input.View(),
	)

	if s.feedback != nil {
		sections = append(sections,
			theme.Card.Width(cardWidth).Render(text.Feedback(*s.feedback)),
			text.Prompt(text.ContinuePrompt),
		)
	}

	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}
	return s.frame(sections)
}

func (s *QuestionScreen) frame(sections []string) string {
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}
