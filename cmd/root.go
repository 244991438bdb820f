package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/andor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "andor",
	Short: "Drill `and` vs `or` in boundary conditions",
	Long:  "andor asks eight boundary-condition questions: a destination needs AND, a failure needs OR.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(cmd)
	},
}

// Execute runs the root command with ctx, which is cancelled on SIGINT and
// SIGTERM.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SilenceUsage = true
	config.RegisterFlags(rootCmd.Flags())

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(versionCmd)
}
