package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/andor/internal/bank"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the drill questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetBool("answers")

		b, err := bank.Default()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		writeList(cmd.OutOrStdout(), b.Questions(), answers)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("answers", false, "Also print the expected condition")
}

func writeList(w io.Writer, questions []bank.Question, answers bool) {
	fmt.Fprintf(w, "%3s  %-40s  %s\n", "#", "Title", "Operator")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	for _, q := range questions {
		fmt.Fprintf(w, "%3d  %-40s  %s\n", q.Ordinal, q.Title, q.Grading.Operator.Label())
		if answers {
			fmt.Fprintf(w, "     %s\n", q.Condition)
		}
	}

	fmt.Fprintf(w, "\n%d questions\n", len(questions))
}
