// Package console runs the drill as a line-oriented prompt/read/print loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/ui/text"
)

// ErrInterrupted is returned when the context is cancelled or input ends
// before the drill finishes.
var ErrInterrupted = errors.New("drill interrupted")

// Result reports how a run ended.
type Result struct {
	// Completed is true when the summary was reached, false after quit.
	Completed bool
	Summary   drill.Summary
}

type line struct {
	text string
	err  error
}

// Runner drives a drill.Drill over a reader and writer.
type Runner struct {
	in  io.Reader
	out io.Writer
	log *zap.Logger

	lines chan line
	stop  chan struct{}
}

// New creates a Runner. out receives styled text; wrap it with
// termcap.NewWriter to degrade styling. A nil log discards events.
func New(in io.Reader, out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{in: in, out: out, log: log}
}

// Run walks d from the intro to the summary or quit. It returns
// ErrInterrupted when ctx is cancelled or input is exhausted mid-drill.
func (r *Runner) Run(ctx context.Context, d *drill.Drill) (Result, error) {
	r.lines = make(chan line)
	r.stop = make(chan struct{})
	defer close(r.stop)
	go r.readLines()

	r.printIntro()
	if _, err := r.readLine(ctx); err != nil {
		return r.interrupted(d, err)
	}
	if err := d.Start(); err != nil {
		return Result{}, fmt.Errorf("start drill: %w", err)
	}
	drill.LogStarted(r.log, d)

	for !d.Done() {
		q, _ := d.Current()
		r.println()
		r.println(text.Header(text.QuestionTitle(q, d.Total())))
		r.println()
		r.println(q.Prompt)

		input, err := r.readLine(ctx)
		if err != nil {
			return r.interrupted(d, err)
		}

		out, err := d.Submit(input)
		if err != nil {
			return Result{}, fmt.Errorf("submit answer: %w", err)
		}

		drill.LogOutcome(r.log, d, out)

		switch out.Kind {
		case drill.OutcomeQuit:
			PrintQuit(r.out)
			return Result{}, nil

		case drill.OutcomeSkipped:
			r.println()
			r.println(text.Reveal(q))

		default:
			r.println()
			r.println(text.Feedback(out))
			r.println()
			fmt.Fprint(r.out, text.Prompt(text.ContinuePrompt))
			if _, err := r.readLine(ctx); err != nil {
				return r.interrupted(d, err)
			}
			if err := d.Acknowledge(); err != nil {
				return Result{}, fmt.Errorf("acknowledge feedback: %w", err)
			}
		}
	}

	sum := d.Summary()
	drill.LogFinished(r.log, sum)
	PrintSummary(r.out, sum)
	return Result{Completed: true, Summary: sum}, nil
}

// PrintSummary writes the completion header, tiered score and reminder.
func PrintSummary(w io.Writer, sum drill.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, text.Header(text.CompleteTitle))
	fmt.Fprintln(w)
	fmt.Fprintln(w, text.Score(sum))
	fmt.Fprintln(w)
	fmt.Fprintln(w, text.Reminder())
	fmt.Fprintln(w)
}

// PrintQuit writes the farewell shown after the quit control word.
func PrintQuit(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, text.Farewell(text.QuitMessage))
	fmt.Fprintln(w)
}

// PrintInterrupted writes the interrupt farewell.
func PrintInterrupted(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, text.Farewell(text.InterruptedText))
	fmt.Fprintln(w)
}

func (r *Runner) printIntro() {
	r.println()
	r.println(text.Header(text.DrillTitle))
	r.println()
	r.println(text.Rule())
	r.println()
	r.println(text.Instructions())
	r.println()
	fmt.Fprint(r.out, text.Prompt(text.StartPrompt))
}

func (r *Runner) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Runner) interrupted(d *drill.Drill, err error) (Result, error) {
	drill.LogInterrupted(r.log, d, err)
	return Result{}, err
}

// readLine blocks for the next line of input or for ctx to end.
func (r *Runner) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	case l := <-r.lines:
		if l.err == nil {
			return l.text, nil
		}
		if errors.Is(l.err, io.EOF) {
			return "", fmt.Errorf("%w: end of input", ErrInterrupted)
		}
		return "", fmt.Errorf("read input: %w", l.err)
	}
}

// readLines feeds r.lines until input ends or Run returns. A final line
// without a trailing newline is still delivered.
func (r *Runner) readLines() {
	br := bufio.NewReader(r.in)
	for {
		s, err := br.ReadString('\n')
		s = strings.TrimRight(s, "\r\n")
		if err != nil {
			if s != "" && !r.send(line{text: s}) {
				return
			}
			// Keep reporting the error so every later read sees it.
			for r.send(line{err: err}) {
			}
			return
		}
		if !r.send(line{text: s}) {
			return
		}
	}
}

func (r *Runner) send(l line) bool {
	select {
	case r.lines <- l:
		return true
	case <-r.stop:
		return false
	}
}
