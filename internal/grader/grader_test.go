package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	destination = Params{Operator: OperatorAnd, Required: []string{"r", "len(grid)", "c", "len(grid[0])"}}
	bounds      = Params{Operator: OperatorOr, Required: []string{"rinbounds", "cinbounds", "not"}}
	endOfString = Params{Operator: OperatorNone, Required: []string{"i", "len(s)"}}
)

func TestGrade_And(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"r == len(grid) - 1 and c == len(grid[0]) - 1", true},
		{"r == len(grid) - 1 and c == len(grid[0]) - 1 or r == 0", false},
		{"r == len(grid) - 1 or c == len(grid[0]) - 1", false},
		{"r == len(grid) - 1 && c == len(grid[0]) - 1", false},
		{"r == len(grid) - 1 and c == 0", false},
		{"", false},
	}

	for _, tc := range tests {
		got := Grade(tc.input, destination)
		assert.Equal(t, tc.want, got, "Grade(%q, and)", tc.input)
	}
}

func TestGrade_Or(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"not rinbounds or not cinbounds", true},
		{"not rinbounds or not cinbounds and grid[r][c] == 1", true},
		{"not rinbounds and not cinbounds", false},
		{"rinbounds or cinbounds", false},
	}

	for _, tc := range tests {
		got := Grade(tc.input, bounds)
		assert.Equal(t, tc.want, got, "Grade(%q, or)", tc.input)
	}
}

func TestGrade_None(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"i == len(s)", true},
		{"i == len(s) and True", false},
		{"i == len(s) or False", false},
		{"i == 0", false},
	}

	for _, tc := range tests {
		got := Grade(tc.input, endOfString)
		assert.Equal(t, tc.want, got, "Grade(%q, none)", tc.input)
	}
}

func TestGrade_CaseAndWhitespaceInsensitive(t *testing.T) {
	p := Params{Operator: OperatorAnd, Required: []string{"r", "c"}}

	for _, input := range []string{"R and C", "r AND c", "  r and c  ", "\tr and c\n"} {
		assert.True(t, Grade(input, p), "Grade(%q)", input)
	}
}

func TestGrade_OperatorOnlyCountsAsStandaloneWord(t *testing.T) {
	p := Params{Operator: OperatorNone, Required: []string{"node"}}

	// "or" inside "order" and "and" inside "standard" are not operators.
	assert.True(t, Grade("order[node] == standard", p))
	assert.False(t, Grade("node or x", p))
	assert.False(t, Grade("and node", p))
	assert.False(t, Grade("node and", p))
}

func TestGrade_UnknownOperatorNeverCorrect(t *testing.T) {
	p := Params{Operator: Operator("xor"), Required: []string{"a"}}
	assert.False(t, Grade("a and b", p))
	assert.False(t, Grade("a", p))
}

func TestEvaluate_ReportsSignals(t *testing.T) {
	res := Evaluate("R == len(grid) - 1 OR c == 0", destination)

	assert.False(t, res.Correct)
	assert.False(t, res.HasAnd)
	assert.True(t, res.HasOr)
	assert.Equal(t, []string{"len(grid[0])"}, res.Missing)
}

func TestEvaluate_RequiredTokenIsCaseInsensitive(t *testing.T) {
	p := Params{Operator: OperatorOr, Required: []string{"X"}}
	res := Evaluate("not ok or grid[r][c] == 'x'", p)
	assert.True(t, res.Correct)
	assert.Empty(t, res.Missing)
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in   string
		want Operator
	}{
		{"and", OperatorAnd},
		{"OR", OperatorOr},
		{" none ", OperatorNone},
		{"single", OperatorNone},
	}
	for _, tc := range tests {
		got, err := ParseOperator(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseOperator("nand")
	assert.Error(t, err)
}

func TestOperator_Valid(t *testing.T) {
	assert.True(t, OperatorAnd.Valid())
	assert.True(t, OperatorOr.Valid())
	assert.True(t, OperatorNone.Valid())
	assert.False(t, Operator("single").Valid())
	assert.False(t, Operator("").Valid())
}
