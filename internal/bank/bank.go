// Package bank holds the fixed, ordered question set of the drill.
//
// The questions ship embedded in the binary as YAML and are validated once at
// startup. Nothing mutates them afterwards; accessors hand out copies.
package bank

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/andor/internal/grader"
)

//go:embed bank.yaml
var bankYAML []byte

var (
	ErrInvalidBank    = errors.New("invalid question bank")
	ErrNoSuchQuestion = errors.New("no such question")
)

// defaultBank is the process-wide bank, set on the first Default call.
var (
	defaultBank *Bank
	defaultErr  error
	defaultOnce sync.Once
)

// Bank is an immutable ordered sequence of questions.
type Bank struct {
	questions []Question
}

// document is the on-disk shape of bank.yaml.
type document struct {
	Questions []Question `yaml:"questions"`
}

// Default returns the embedded question bank. It is parsed and validated on
// first use; later calls return the same bank.
func Default() (*Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = Parse(bankYAML)
	})
	return defaultBank, defaultErr
}

// Parse decodes, schema-checks and validates a YAML question bank.
func Parse(data []byte) (*Bank, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse bank: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	return New(doc.Questions)
}

// New validates questions and returns a bank holding copies of them.
// Ordinals are assigned from position; operator aliases are normalized.
func New(questions []Question) (*Bank, error) {
	qs := make([]Question, len(questions))
	for i, q := range questions {
		q = q.clone()
		q.Ordinal = i + 1
		if op, err := grader.ParseOperator(string(q.Grading.Operator)); err == nil {
			q.Grading.Operator = op
		}
		qs[i] = q
	}

	if err := validateQuestions(qs); err != nil {
		return nil, err
	}
	return &Bank{questions: qs}, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of all questions in order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// Question returns the question with the given 1-based ordinal.
func (b *Bank) Question(ordinal int) (Question, error) {
	if ordinal < 1 || ordinal > len(b.questions) {
		return Question{}, fmt.Errorf("%w: %d (bank has %d)", ErrNoSuchQuestion, ordinal, len(b.questions))
	}
	return b.questions[ordinal-1].clone(), nil
}
