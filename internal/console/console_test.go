package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/andor/internal/bank"
	"github.com/abhisek/andor/internal/drill"
	"github.com/abhisek/andor/internal/ui/termcap"
)

const destination = "r == len(grid) - 1 and c == len(grid[0]) - 1"

func defaultDrill(t *testing.T) (*drill.Drill, []bank.Question) {
	t.Helper()
	b, err := bank.Default()
	require.NoError(t, err)
	qs := b.Questions()
	return drill.New(qs), qs
}

func run(t *testing.T, ctx context.Context, input string) (Result, string, error) {
	t.Helper()
	d, _ := defaultDrill(t)
	var buf bytes.Buffer
	res, err := New(strings.NewReader(input), termcap.Plain(&buf), nil).Run(ctx, d)
	return res, buf.String(), err
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestRun_DestinationAnswersRestSkipped(t *testing.T) {
	input := lines(
		"", // start
		destination, "",
		"skip", "skip", "skip", "skip", "skip",
		destination, "",
		"skip",
	)

	res, out, err := run(t, context.Background(), input)
	require.NoError(t, err)

	assert.True(t, res.Completed)
	assert.Equal(t, 2, res.Summary.Correct)
	assert.Equal(t, 8, res.Summary.Total)
	assert.Equal(t, 6, res.Summary.Skipped)
	assert.InDelta(t, 25.0, res.Summary.Percentage, 0.001)
	assert.Equal(t, drill.TierRetry, res.Summary.Tier)

	assert.NotContains(t, out, "\x1b")
	assert.Contains(t, out, "Interactive Drill: `or` vs `and` in Boundary Conditions")
	assert.Contains(t, out, "Question 1/8: Grid Path Counting")
	assert.Contains(t, out, "Question 8/8: Multiple Valid Endpoints")
	assert.Equal(t, 2, strings.Count(out, "✓ Correct!"))
	assert.Equal(t, 6, strings.Count(out, "Showing answer:"))
	assert.Equal(t, 2, strings.Count(out, "Press Enter to continue..."))
	assert.Contains(t, out, "Drill Complete!")
	assert.Contains(t, out, "Score: 2/8")
	assert.Contains(t, out, "Destination needs AND")
}

func TestRun_EveryConditionIsPerfect(t *testing.T) {
	_, qs := defaultDrill(t)
	parts := []string{""}
	for _, q := range qs {
		parts = append(parts, q.Condition, "")
	}

	res, out, err := run(t, context.Background(), lines(parts...))
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, 8, res.Summary.Correct)
	assert.Equal(t, drill.TierPerfect, res.Summary.Tier)
	assert.Contains(t, out, "Perfect score: 8/8!")
	assert.NotContains(t, out, "Not quite.")
}

func TestRun_IncorrectShowsExpected(t *testing.T) {
	res, out, err := run(t, context.Background(), lines("", "r == len(grid) - 1 or c == len(grid[0]) - 1", "", "quit"))
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Contains(t, out, "✗ Not quite.")
	assert.Contains(t, out, "Expected:")
	assert.Contains(t, out, "Your answer: r == len(grid) - 1 or c == len(grid[0]) - 1")
}

func TestRun_QuitSkipsSummary(t *testing.T) {
	res, out, err := run(t, context.Background(), lines("", "skip", " QUIT "))
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Contains(t, out, "Exiting drill. Come back soon!")
	assert.NotContains(t, out, "Drill Complete!")
	assert.NotContains(t, out, "Question 3/8")
}

func TestRun_SkipRevealsBeforeNextQuestion(t *testing.T) {
	_, out, err := run(t, context.Background(), lines("", "skip", "quit"))
	require.NoError(t, err)

	reveal := strings.Index(out, "Showing answer:")
	answer := strings.Index(out, "if r == len(grid) - 1 and c == len(grid[0]) - 1:")
	next := strings.Index(out, "Question 2/8")
	require.True(t, reveal >= 0 && answer >= 0 && next >= 0, out)
	assert.Less(t, reveal, answer)
	assert.Less(t, answer, next)
}

func TestRun_EOFIsInterrupt(t *testing.T) {
	res, out, err := run(t, context.Background(), lines("", "skip"))
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.False(t, res.Completed)
	assert.NotContains(t, out, "Drill Complete!")
}

func TestRun_FinalLineWithoutNewline(t *testing.T) {
	res, out, err := run(t, context.Background(), "\nquit")
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Contains(t, out, "Exiting drill.")
}

func TestRun_ContextCancelIsInterrupt(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	d, _ := defaultDrill(t)

	done := make(chan error, 1)
	go func() {
		_, err := New(pr, io.Discard, nil).Run(ctx, d)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrInterrupted)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPrintInterrupted(t *testing.T) {
	var buf bytes.Buffer
	PrintInterrupted(termcap.Plain(&buf))
	assert.Contains(t, buf.String(), "Interrupted. Run again when ready!")
}
