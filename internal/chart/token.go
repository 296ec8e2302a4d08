package chart

import (
	"regexp"
	"strings"
)

// NumericPattern is the exact grammar of a numeric chart token: optional
// leading minus, integer part, optional fractional part. No exponents,
// no leading '+', no thousands separators.
const NumericPattern = `-?[0-9]+(\.[0-9]+)?`

// HeuristicMinRun is how many consecutive numeric tokens a string must
// contain before it is treated as chart data without a chart-named key
// vouching for it.
const HeuristicMinRun = 5

var numericRE = regexp.MustCompile(`^` + NumericPattern + `$`)

// IsNumericToken reports whether tok matches the numeric grammar as a
// whole. Tokens like "1,000", "1e5" or "+5" are metadata.
func IsNumericToken(tok string) bool {
	return numericRE.MatchString(tok)
}

// LongestNumericRun returns the length of the longest run of consecutive
// numeric tokens in s.
func LongestNumericRun(s string) int {
	run, best := 0, 0
	for _, tok := range strings.Fields(s) {
		if !IsNumericToken(tok) {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

// ASCII whitespace as the chart format understands it.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
