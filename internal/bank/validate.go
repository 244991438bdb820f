package bank

import (
	"fmt"
	"strings"

	"github.com/abhisek/andor/internal/grader"
)

// validateQuestions performs all structural checks on the given questions.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	titles := make(map[string]int, len(questions))
	for _, q := range questions {
		prefix := fmt.Sprintf("question %d", q.Ordinal)

		if strings.TrimSpace(q.Title) == "" {
			errs = append(errs, prefix+": empty title")
		} else if prev, ok := titles[q.Title]; ok {
			errs = append(errs, fmt.Sprintf("%s: duplicate title %q (also question %d)", prefix, q.Title, prev))
		} else {
			titles[q.Title] = q.Ordinal
		}
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, prefix+": empty prompt")
		}
		if strings.TrimSpace(q.Answer) == "" {
			errs = append(errs, prefix+": empty answer")
		}
		if strings.TrimSpace(q.Condition) == "" {
			errs = append(errs, prefix+": empty condition")
		}

		if !q.Grading.Operator.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown operator %q", prefix, q.Grading.Operator))
			continue
		}
		if len(q.Grading.Required) == 0 {
			errs = append(errs, prefix+": no required tokens")
			continue
		}
		blank := false
		for i, tok := range q.Grading.Required {
			if strings.TrimSpace(tok) == "" {
				errs = append(errs, fmt.Sprintf("%s: required token %d is blank", prefix, i))
				blank = true
			}
		}
		if blank {
			continue
		}

		// The reference condition must pass its own grading rule.
		if q.Condition != "" && !grader.Grade(q.Condition, q.Grading) {
			res := grader.Evaluate(q.Condition, q.Grading)
			errs = append(errs, fmt.Sprintf("%s: condition %q does not grade correct (operator %s, and=%t, or=%t, missing %v)",
				prefix, q.Condition, q.Grading.Operator, res.HasAnd, res.HasOr, res.Missing))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidBank, strings.Join(errs, "\n  "))
	}
	return nil
}
