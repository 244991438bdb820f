// Package text renders the drill's messages as styled strings. Styling is
// applied unconditionally; writers from termcap strip it where unsupported.
package text

import (
	"fmt"
	"strings"

	"github.com/abhisek/andor/internal/bank"
	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/ui/theme"
)

// HeaderWidth is the width of the "=" bars around section headers.
const HeaderWidth = 70

// Fixed messages.
const (
	DrillTitle      = "Interactive Drill: `or` vs `and` in Boundary Conditions"
	CompleteTitle   = "Drill Complete!"
	StartPrompt     = "Press Enter to start..."
	ContinuePrompt  = "Press Enter to continue..."
	QuitMessage     = "Exiting drill. Come back soon!"
	InterruptedText = "Interrupted. Run again when ready!"
)

// Header renders a title between two bars.
func Header(title string) string {
	bar := strings.Repeat("=", HeaderWidth)
	return theme.Heading.Render(bar) + "\n" +
		theme.Heading.Render(title) + "\n" +
		theme.Heading.Render(bar)
}

// QuestionTitle returns "Question n/total: title".
func QuestionTitle(q bank.Question, total int) string {
	return fmt.Sprintf("Question %d/%d: %s", q.Ordinal, total, q.Title)
}

// Rule renders the destination/failure rule shown before the drill.
func Rule() string {
	var b strings.Builder
	b.WriteString(theme.Bold.Render("The Rule:"))
	b.WriteString("\n")
	b.WriteString("  • " + theme.Destination.Render("Destination (ONE specific place)") + " → use " + theme.Bold.Render("AND"))
	b.WriteString("\n")
	b.WriteString("  • " + theme.Failure.Render("Failure (ANY problem)") + " → use " + theme.Bold.Render("OR"))
	return b.String()
}

// Instructions renders the how-to list shown before the drill.
func Instructions() string {
	lines := []string{
		theme.Notice.Render("Instructions:"),
		"  • For each question, write the Python condition",
		"  • Focus on getting the logic right (and vs or)",
		"  • Type 'skip' to see the answer",
		"  • Type 'quit' to exit",
	}
	return strings.Join(lines, "\n")
}

// Reveal renders the canonical answer after a skip.
func Reveal(q bank.Question) string {
	return theme.Notice.Render("Showing answer:") + "\n" +
		theme.Answer.Render(q.Answer) + "\n\n" +
		q.Explanation
}

// Feedback renders the response to a graded answer.
func Feedback(out drill.Outcome) string {
	var b strings.Builder
	if out.Kind == drill.OutcomeCorrect {
		b.WriteString(theme.Correct.Render("✓ Correct!"))
		b.WriteString("\n\n")
		b.WriteString(out.Question.Explanation)
		return b.String()
	}

	b.WriteString(theme.Incorrect.Render("✗ Not quite."))
	b.WriteString("\n\n")
	b.WriteString(theme.Notice.Render("Expected:"))
	b.WriteString("\n")
	b.WriteString(theme.Answer.Render(out.Question.Answer))
	b.WriteString("\n\n")
	b.WriteString(theme.Notice.Render("Your answer:"))
	b.WriteString(" ")
	b.WriteString(out.Input)
	b.WriteString("\n\n")
	b.WriteString(out.Question.Explanation)
	return b.String()
}

// Score renders the tiered two-line summary message.
func Score(sum drill.Summary) string {
	switch sum.Tier {
	case drill.TierPerfect:
		return theme.Correct.Render(fmt.Sprintf("Perfect score: %d/%d! 🎉", sum.Correct, sum.Total)) + "\n" +
			theme.Destination.Render("The pattern is locked in. You're ready to code.")
	case drill.TierGood:
		return theme.Notice.Bold(true).Render(fmt.Sprintf("Good work: %d/%d", sum.Correct, sum.Total)) + "\n" +
			theme.Notice.Render("Review the questions you missed, then run the drill again.")
	default:
		return theme.Incorrect.Render(fmt.Sprintf("Score: %d/%d", sum.Correct, sum.Total)) + "\n" +
			theme.Failure.Render("Run through the drill again. The pattern will click.")
	}
}

// Reminder renders the closing two-line rule reminder.
func Reminder() string {
	return theme.Bold.Render("Remember:") + "\n" +
		"  " + theme.Destination.Render("Destination needs AND") + "\n" +
		"  " + theme.Failure.Render("Failure needs OR")
}

// Prompt renders an acknowledgement prompt such as StartPrompt.
func Prompt(s string) string {
	return theme.Bold.Render(s)
}

// Farewell renders QuitMessage or InterruptedText.
func Farewell(s string) string {
	return theme.Notice.Render(s)
}
