package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumericToken(t *testing.T) {
	numeric := []string{"0", "42", "-7", "0.00", "2.5", "-3.25", "007", "123456789"}
	for _, tok := range numeric {
		assert.True(t, IsNumericToken(tok), "token %q", tok)
	}

	metadata := []string{
		"", "+5", "1e5", "1,000", "1.", ".5", "-", "--1", "1.2.3",
		"Eye", "Note", "3a", "a3", "1 2", "0x10",
	}
	for _, tok := range metadata {
		assert.False(t, IsNumericToken(tok), "token %q", tok)
	}
}

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"numbers and label", "0.00 1 2.5 Eye Note 3", "0.00  1  2.5  Eye Note  3"},
		{"already normalized", "1  2  3", "1  2  3"},
		{"single space chain", "1 2 3", "1  2  3"},
		{"sloppy spacing", "1   2 \t 3", "1  2  3"},
		{"label at end", "0.00 Eye Note", "0.00  Eye Note"},
		{"label at start", "Eye Note 0.00", "Eye Note  0.00"},
		{"metadata only", "Eye Note Left", "Eye Note Left"},
		{"one token", "42", "42"},
		{"negatives and floats", "-1.5 -2 0.00", "-1.5  -2  0.00"},
		{"non-numeric lookalikes group", "1e5 +5 1,000", "1e5 +5 1,000"},
		{"leading trailing ws kept", "  1 2 x \t", "  1  2  x \t"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", "   \t "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeString(tt.in))
		})
	}
}

func TestNormalizeStringIdempotent(t *testing.T) {
	inputs := []string{
		"0.00 1 2.5 Eye Note 3",
		"1 2 3 4 5",
		"Eye Note",
		"  -1  2   mixed up 3.5 ",
		"",
		"   ",
	}
	for _, in := range inputs {
		once := NormalizeString(in)
		assert.Equal(t, once, NormalizeString(once), "input %q", in)
	}
}

func TestNormalizeStringPreservesTokens(t *testing.T) {
	inputs := []string{
		"0.00 1 2.5 Eye Note 3",
		"a b c 1 2 3 4 5 d e",
		" 1\t2\n3 ",
	}
	for _, in := range inputs {
		out := NormalizeString(in)
		assert.Equal(t, strings.Fields(in), strings.Fields(out), "input %q", in)
	}
}

func TestLongestNumericRun(t *testing.T) {
	assert.Equal(t, 0, LongestNumericRun("Eye Note"))
	assert.Equal(t, 0, LongestNumericRun(""))
	assert.Equal(t, 3, LongestNumericRun("x 1 2 3 y"))
	assert.Equal(t, 4, LongestNumericRun("1 2 3 4 stop 5 6"))
	assert.Equal(t, 5, LongestNumericRun("a 1 2 3 4 5 b"))
}
