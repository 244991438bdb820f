package bank

import (
	"slices"

	"github.com/abhisek/andor/internal/grader"
)

// Question is one drill item. Questions are immutable once loaded.
type Question struct {
	// Ordinal is the 1-based position in the bank, for display only.
	Ordinal int `yaml:"-"`

	// Title is a short label shown in the question header.
	Title string `yaml:"title"`

	// Prompt is the text shown before reading the learner's answer.
	Prompt string `yaml:"prompt"`

	// Answer is the canonical answer revealed on skip or on a wrong answer.
	Answer string `yaml:"answer"`

	// Condition is the condition part of Answer, without the surrounding
	// if/return. It always grades correct against Grading.
	Condition string `yaml:"condition"`

	// Explanation is shown after every answer, right or wrong.
	Explanation string `yaml:"explanation"`

	// Grading holds the operator and required tokens used by the grader.
	Grading grader.Params `yaml:"grading"`
}

// clone returns a deep copy of q.
func (q Question) clone() Question {
	q.Grading.Required = slices.Clone(q.Grading.Required)
	return q
}
