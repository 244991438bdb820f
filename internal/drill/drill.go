// Package drill implements the question-by-question state machine shared by
// the console and TUI front ends.
//
// The machine only tracks position, phase and score. It performs no I/O:
// front ends display the current question, collect a line of input, call
// Submit, render the returned Outcome and, after graded answers, call
// Acknowledge once the learner is ready to move on.
package drill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/andor/internal/bank"
	"github.com/abhisek/andor/internal/grader"
)

var (
	ErrInvalidTransition = errors.New("invalid drill transition")
	ErrEmptyBank         = errors.New("drill has no questions")
)

// Phase represents the current phase of the drill.
type Phase int

const (
	PhaseIntro         Phase = iota // Instructions shown, waiting to start
	PhaseAwaitingInput              // Question shown, waiting for an answer
	PhaseFeedback                   // Graded answer shown, waiting for acknowledgement
	PhaseSummary                    // Every question answered or skipped
	PhaseQuit                       // Learner typed the quit control word
)

// String returns the phase name used in errors and logs.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseFeedback:
		return "feedback"
	case PhaseSummary:
		return "summary"
	case PhaseQuit:
		return "quit"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// OutcomeKind classifies what happened to a submitted line.
type OutcomeKind int

const (
	OutcomeCorrect OutcomeKind = iota
	OutcomeIncorrect
	OutcomeSkipped
	OutcomeQuit
)

// Outcome describes the result of one Submit call.
type Outcome struct {
	Kind     OutcomeKind
	Question bank.Question

	// Input is the learner's answer with surrounding whitespace removed.
	Input string

	// Result is the grader breakdown; zero for skip and quit.
	Result grader.Result
}

// Drill tracks the runtime state of one pass through the question bank.
type Drill struct {
	questions []bank.Question
	index     int
	correct   int
	skipped   int
	phase     Phase
	last      *Outcome
}

// New creates a drill over questions, in order, starting in PhaseIntro.
func New(questions []bank.Question) *Drill {
	return &Drill{questions: questions, phase: PhaseIntro}
}

// Phase returns the current phase.
func (d *Drill) Phase() Phase {
	return d.phase
}

// Total returns the number of questions in the drill.
func (d *Drill) Total() int {
	return len(d.questions)
}

// Correct returns the number of correctly answered questions so far.
func (d *Drill) Correct() int {
	return d.correct
}

// Done reports whether the drill reached a terminal phase.
func (d *Drill) Done() bool {
	return d.phase == PhaseSummary || d.phase == PhaseQuit
}

// Current returns the question being asked or given feedback on.
func (d *Drill) Current() (bank.Question, bool) {
	if d.phase != PhaseAwaitingInput && d.phase != PhaseFeedback {
		return bank.Question{}, false
	}
	return d.questions[d.index], true
}

// Last returns the outcome of the most recent Submit call.
func (d *Drill) Last() (Outcome, bool) {
	if d.last == nil {
		return Outcome{}, false
	}
	return *d.last, true
}

// Start leaves the intro and presents the first question.
func (d *Drill) Start() error {
	if d.phase != PhaseIntro {
		return d.transitionErr("start")
	}
	if len(d.questions) == 0 {
		return ErrEmptyBank
	}
	d.index = 0
	d.phase = PhaseAwaitingInput
	return nil
}

// Submit processes one line of learner input for the current question.
//
// "quit" ends the drill without a summary. "skip" reveals the answer and
// moves straight on to the next question. Anything else is graded and the
// drill waits in PhaseFeedback for Acknowledge.
func (d *Drill) Submit(input string) (Outcome, error) {
	if d.phase != PhaseAwaitingInput {
		return Outcome{}, d.transitionErr("submit")
	}

	q := d.questions[d.index]
	out := Outcome{Question: q, Input: strings.TrimSpace(input)}

	switch ParseControl(input) {
	case ControlQuit:
		out.Kind = OutcomeQuit
		d.phase = PhaseQuit
	case ControlSkip:
		out.Kind = OutcomeSkipped
		d.skipped++
		d.advance()
	default:
		out.Result = grader.Evaluate(input, q.Grading)
		if out.Result.Correct {
			out.Kind = OutcomeCorrect
			d.correct++
		} else {
			out.Kind = OutcomeIncorrect
		}
		d.phase = PhaseFeedback
	}

	d.last = &out
	return out, nil
}

// Acknowledge dismisses graded feedback and moves to the next question, or to
// the summary after the last one.
func (d *Drill) Acknowledge() error {
	if d.phase != PhaseFeedback {
		return d.transitionErr("acknowledge")
	}
	d.advance()
	return nil
}

// Summary returns the score so far. It is final once Phase is PhaseSummary.
func (d *Drill) Summary() Summary {
	return BuildSummary(d.correct, d.skipped, len(d.questions))
}

// advance moves past the current question.
func (d *Drill) advance() {
	d.index++
	if d.index >= len(d.questions) {
		d.index = len(d.questions) - 1
		d.phase = PhaseSummary
		return
	}
	d.phase = PhaseAwaitingInput
}

func (d *Drill) transitionErr(op string) error {
	return fmt.Errorf("%w: %s in phase %s", ErrInvalidTransition, op, d.phase)
}
