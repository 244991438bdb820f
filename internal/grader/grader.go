// Package grader checks free-text boundary conditions against a question's
// grading parameters.
//
// The check is a keyword heuristic, not a parser. An answer is judged on
// three signals only: whether the standalone word "and" appears, whether the
// standalone word "or" appears, and whether every required token appears as a
// substring. Answers that are logically equivalent but phrased differently
// (for example using "&&" or De Morgan rewrites) are graded incorrect. That is
// intended: the drill exists to rehearse one phrasing.
package grader

import (
	"fmt"
	"strings"
)

// Operator is the logical connective a correct answer must use.
type Operator string

const (
	// OperatorAnd requires "and" and forbids "or".
	OperatorAnd Operator = "and"
	// OperatorOr requires "or"; "and" may also appear.
	OperatorOr Operator = "or"
	// OperatorNone forbids both "and" and "or".
	OperatorNone Operator = "none"
)

// ParseOperator parses an operator name, case-insensitively.
// "single" is accepted as an alias for OperatorNone.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "and":
		return OperatorAnd, nil
	case "or":
		return OperatorOr, nil
	case "none", "single":
		return OperatorNone, nil
	default:
		return "", fmt.Errorf("unknown operator %q (expected and|or|none)", s)
	}
}

// Valid reports whether o is one of the known operators.
func (o Operator) Valid() bool {
	switch o {
	case OperatorAnd, OperatorOr, OperatorNone:
		return true
	}
	return false
}

// Label returns the operator as shown to the learner.
func (o Operator) Label() string {
	switch o {
	case OperatorAnd:
		return "AND"
	case OperatorOr:
		return "OR"
	case OperatorNone:
		return "single condition"
	default:
		return string(o)
	}
}

// Params holds the grading parameters of one question.
type Params struct {
	Operator Operator `yaml:"operator"`

	// Required tokens must all appear, case-insensitively, in a correct answer.
	Required []string `yaml:"required"`
}

// Result is the breakdown behind a grading decision.
type Result struct {
	Correct bool
	HasAnd  bool
	HasOr   bool

	// Missing lists the required tokens absent from the answer, in
	// declaration order.
	Missing []string
}

// Grade reports whether input is a correct answer for p.
func Grade(input string, p Params) bool {
	return Evaluate(input, p).Correct
}

// Evaluate grades input against p and returns the signals used.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - "and"/"or" count only as whole whitespace-separated tokens
// - Required tokens match anywhere, including inside longer words
func Evaluate(input string, p Params) Result {
	normalized := strings.ToLower(strings.TrimSpace(input))
	tokens := strings.Fields(normalized)

	res := Result{
		HasAnd: hasWord(tokens, "and"),
		HasOr:  hasWord(tokens, "or"),
	}
	for _, req := range p.Required {
		if !strings.Contains(normalized, strings.ToLower(req)) {
			res.Missing = append(res.Missing, req)
		}
	}
	allRequired := len(res.Missing) == 0

	switch p.Operator {
	case OperatorAnd:
		res.Correct = res.HasAnd && !res.HasOr && allRequired
	case OperatorOr:
		res.Correct = res.HasOr && allRequired
	case OperatorNone:
		res.Correct = allRequired && !res.HasAnd && !res.HasOr
	}
	return res
}

// hasWord reports whether word is one of tokens.
func hasWord(tokens []string, word string) bool {
	for _, t := range tokens {
		if t == word {
			return true
		}
	}
	return false
}
