package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/andor/internal/bank"
	"github.com/abhisek/andor/internal/grader"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <question> <answer...>",
	Short: "Grade one answer without running the drill",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("question number %q is not a number", args[0])
		}

		b, err := bank.Default()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		q, err := b.Question(n)
		if err != nil {
			return err
		}

		writeGrade(cmd.OutOrStdout(), q, strings.Join(args[1:], " "))
		return nil
	},
}

func writeGrade(w io.Writer, q bank.Question, answer string) {
	res := grader.Evaluate(answer, q.Grading)

	fmt.Fprintf(w, "Question %d: %s\n", q.Ordinal, q.Title)
	if res.Correct {
		fmt.Fprintln(w, "✓ Correct!")
	} else {
		fmt.Fprintln(w, "✗ Not quite.")
	}

	fmt.Fprintf(w, "  operator:  %s\n", q.Grading.Operator.Label())
	fmt.Fprintf(w, "  has and:   %s\n", yesNo(res.HasAnd))
	fmt.Fprintf(w, "  has or:    %s\n", yesNo(res.HasOr))
	if len(res.Missing) > 0 {
		fmt.Fprintf(w, "  missing:   %s\n", strings.Join(res.Missing, ", "))
	}
	if !res.Correct {
		fmt.Fprintf(w, "  expected:  %s\n", q.Condition)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
