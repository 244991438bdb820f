package drill

import "strings"

// Control is a reserved input intercepted before grading.
type Control int

const (
	ControlNone Control = iota // Ordinary answer, goes to the grader
	ControlSkip                // Reveal the answer without grading
	ControlQuit                // End the drill immediately
)

// ParseControl classifies a line of input. Control words match
// case-insensitively after trimming surrounding whitespace, and only when
// they are the whole input.
func ParseControl(input string) Control {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "skip":
		return ControlSkip
	case "quit":
		return ControlQuit
	default:
		return ControlNone
	}
}
