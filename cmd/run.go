package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/andor/internal/app"
	"github.com/abhisek/andor/internal/bank"
	"github.com/abhisek/andor/internal/config"
	"github.com/abhisek/andor/internal/console"
	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/logger"
	"github.com/abhisek/andor/internal/ui/termcap"
)

// runDrill loads config and the question bank, then runs the drill in the
// configured front end.
func runDrill(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(logger.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closeLog()

	b, err := bank.Default()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	d := drill.New(b.Questions())

	stdin := cmd.InOrStdin()
	stdout := cmd.OutOrStdout()
	profile := termcap.Profile(stdout, os.Environ(), cfg.NoColor)
	out := termcap.NewWriter(stdout, profile)

	log.Debug("config resolved",
		zap.String("ui", cfg.UI),
		zap.Bool("no_color", cfg.NoColor),
		zap.Stringer("profile", profile),
	)

	if cfg.Live() {
		if termcap.IsTerminal(stdin) && termcap.IsTerminal(stdout) {
			return runLive(cmd, d, log, out, profile)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --ui live needs a terminal, falling back to plain output.")
	}

	_, err = console.New(stdin, out, log).Run(ctx, d)
	if errors.Is(err, console.ErrInterrupted) {
		console.PrintInterrupted(out)
		return nil
	}
	if err != nil {
		return fmt.Errorf("run drill: %w", err)
	}
	return nil
}

// runLive runs the full-screen drill, then leaves the outcome on the normal
// screen once the alternate screen is gone.
func runLive(cmd *cobra.Command, d *drill.Drill, log *zap.Logger, out io.Writer, profile colorprofile.Profile) error {
	res, err := app.Run(cmd.Context(), app.Options{
		Drill:   d,
		Log:     log,
		Profile: profile,
	})
	if err != nil {
		return fmt.Errorf("run drill: %w", err)
	}

	switch res.Exit {
	case app.ExitCompleted:
		console.PrintSummary(out, res.Summary)
	case app.ExitQuit:
		console.PrintQuit(out)
	default:
		console.PrintInterrupted(out)
	}
	return nil
}
