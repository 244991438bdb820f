package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"go.uber.org/zap"

	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/router"
	"github.com/abhisek/andor/internal/screen"
	"github.com/abhisek/andor/internal/screens/intro"
	"github.com/abhisek/andor/internal/screens/question"
	"github.com/abhisek/andor/internal/ui/layout"
)

// Exit says how the full-screen drill ended.
type Exit int

const (
	ExitInterrupted Exit = iota // Ctrl+C, Esc, signal, or the program was killed
	ExitQuit                    // the learner typed the quit control word
	ExitCompleted               // the summary was shown
)

// Options holds the dependencies for Run.
type Options struct {
	Drill *drill.Drill
	Log   *zap.Logger

	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer

	Profile colorprofile.Profile
}

// Result reports how Run ended.
type Result struct {
	Exit    Exit
	Summary drill.Summary
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	drill  *drill.Drill
	log    *zap.Logger
	exit   Exit
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the intro screen.
func newAppModel(d *drill.Drill, log *zap.Logger) AppModel {
	if log == nil {
		log = zap.NewNop()
	}
	introScreen := intro.New(d, func() screen.Screen {
		drill.LogStarted(log, d)
		return question.New(d, log)
	})
	return AppModel{
		router: router.New(introScreen),
		drill:  d,
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.drill.Phase() == drill.PhaseSummary {
				m.exit = ExitCompleted
			} else {
				m.exit = ExitInterrupted
				drill.LogInterrupted(m.log, m.drill, errors.New(msg.String()))
			}
			return m, tea.Quit
		}

	case screen.QuitMsg:
		m.exit = ExitQuit
		return m, tea.Quit

	case screen.DoneMsg:
		m.exit = ExitCompleted
		return m, tea.Quit
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// Exit returns how the program ended.
func (m AppModel) Exit() Exit {
	return m.exit
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if m.drill.Phase() != drill.PhaseIntro {
		status = fmt.Sprintf("Score %d/%d  ", m.drill.Correct(), m.drill.Total())
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Exit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it ends. Cancelling ctx
// or a SIGINT delivered to the program ends it as ExitInterrupted.
func Run(ctx context.Context, opts Options) (Result, error) {
	m := newAppModel(opts.Drill, opts.Log)

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithColorProfile(opts.Profile),
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(m, progOpts...)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			drill.LogInterrupted(m.log, opts.Drill, err)
			return Result{Exit: ExitInterrupted}, nil
		}
		return Result{}, fmt.Errorf("run program: %w", err)
	}

	res := Result{Exit: ExitInterrupted}
	if fm, ok := final.(AppModel); ok {
		res.Exit = fm.Exit()
	}
	if res.Exit == ExitCompleted {
		res.Summary = opts.Drill.Summary()
	}
	return res, nil
}
