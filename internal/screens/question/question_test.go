package question

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/andor/internal/bank"
	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/router"
	"github.com/abhisek/andor/internal/screen"
	"github.com/abhisek/andor/internal/screens/summary"
)

const destination = "r == len(grid) - 1 and c == len(grid[0]) - 1"

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestionScreen(t *testing.T) (*QuestionScreen, *drill.Drill) {
	t.Helper()
	b, err := bank.Default()
	if err != nil {
		t.Fatal(err)
	}
	d := drill.New(b.Questions())
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	s := New(d, nil)
	s.Init()
	return s, d
}

// answer types s into the input and presses Enter.
func answer(s *QuestionScreen, input string) tea.Cmd {
	s.Update(tea.PasteMsg{Content: input})
	_, cmd := s.Update(enter())
	return cmd
}

func view(s *QuestionScreen) string {
	return ansi.Strip(s.View(100, 40))
}

func TestQuestionScreen_ShowsFirstQuestion(t *testing.T) {
	s, _ := testQuestionScreen(t)

	if s.Title() != "Question 1/8" {
		t.Errorf("Title = %q", s.Title())
	}
	v := view(s)
	if !strings.Contains(v, "Question 1/8: Grid Path Counting") {
		t.Error("expected question header")
	}
	if !strings.Contains(v, "Write the condition") {
		t.Error("expected prompt")
	}
}

func TestQuestionScreen_TypingReachesInput(t *testing.T) {
	s, _ := testQuestionScreen(t)
	for _, r := range "r and c" {
		s.Update(keyPress(r))
	}
	if s.input.Value() != "r and c" {
		t.Errorf("input = %q", s.input.Value())
	}
}

func TestQuestionScreen_CorrectAnswerShowsFeedback(t *testing.T) {
	s, d := testQuestionScreen(t)

	if cmd := answer(s, destination); cmd != nil {
		t.Error("graded answer should not navigate")
	}
	if d.Phase() != drill.PhaseFeedback {
		t.Fatalf("phase = %s, want feedback", d.Phase())
	}
	if d.Correct() != 1 {
		t.Errorf("correct = %d, want 1", d.Correct())
	}

	v := view(s)
	if !strings.Contains(v, "✓ Correct!") || !strings.Contains(v, "Press Enter to continue...") {
		t.Errorf("expected feedback, got:\n%s", v)
	}

	// Typing is ignored while feedback is shown.
	s.Update(keyPress('x'))
	if strings.Contains(s.input.Value(), "x") {
		t.Error("input should be frozen during feedback")
	}

	s.Update(enter())
	if q, _ := d.Current(); q.Ordinal != 2 {
		t.Errorf("expected question 2, got %d", q.Ordinal)
	}
	if s.input.Value() != "" {
		t.Error("expected input cleared for next question")
	}
}

func TestQuestionScreen_IncorrectAnswerShowsExpected(t *testing.T) {
	s, d := testQuestionScreen(t)
	answer(s, "r == len(grid) - 1 or c == len(grid[0]) - 1")

	if d.Correct() != 0 {
		t.Error("or answer must not score on an and question")
	}
	v := view(s)
	for _, want := range []string{"✗ Not quite.", "Expected:", "Your answer:"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestQuestionScreen_SkipRevealsAboveNextQuestion(t *testing.T) {
	s, d := testQuestionScreen(t)
	answer(s, "skip")

	if d.Phase() != drill.PhaseAwaitingInput {
		t.Fatalf("skip should advance directly, phase = %s", d.Phase())
	}
	v := view(s)
	reveal := strings.Index(v, "Showing answer:")
	next := strings.Index(v, "Question 2/8: String Index (Word Break)")
	if reveal < 0 || next < 0 || reveal > next {
		t.Errorf("expected revealed answer above question 2, got:\n%s", v)
	}

	// The panel goes away once the next question is graded.
	answer(s, "i == len(s)")
	if strings.Contains(view(s), "Showing answer:") {
		t.Error("expected reveal panel cleared after grading")
	}
}

func TestQuestionScreen_QuitEmitsQuitMsg(t *testing.T) {
	s, d := testQuestionScreen(t)
	cmd := answer(s, "  Quit ")

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(screen.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
	if d.Phase() != drill.PhaseQuit {
		t.Errorf("phase = %s, want quit", d.Phase())
	}
}

func TestQuestionScreen_FinishReplacesWithSummary(t *testing.T) {
	s, d := testQuestionScreen(t)

	for i := 0; i < d.Total()-1; i++ {
		answer(s, "skip")
	}
	q, _ := d.Current()
	answer(s, q.Condition)
	if d.Phase() != drill.PhaseFeedback {
		t.Fatalf("phase = %s, want feedback", d.Phase())
	}

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected navigation to summary")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
	if d.Summary().Correct != 1 || d.Summary().Skipped != 7 {
		t.Errorf("summary = %+v", d.Summary())
	}
}

func TestQuestionScreen_SkipLastShowsAnswerBeforeResults(t *testing.T) {
	s, d := testQuestionScreen(t)

	for i := 0; i < d.Total(); i++ {
		answer(s, "skip")
	}
	if d.Phase() != drill.PhaseSummary {
		t.Fatalf("phase = %s, want summary", d.Phase())
	}
	v := view(s)
	if !strings.Contains(v, "Multiple Valid Endpoints") || !strings.Contains(v, "Press Enter to see your results...") {
		t.Errorf("expected last answer and results prompt, got:\n%s", v)
	}

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected navigation to summary")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
}
