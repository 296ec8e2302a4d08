package chart

import (
	"strings"
	"unicode"
)

// Separator goes between chunks of a normalized chart string.
const Separator = "  "

// NormalizeString rewrites the separators of a chart string so that
// every numeric token and every run of metadata tokens sits exactly two
// spaces from its neighbours. Metadata runs keep single spaces inside,
// so multi-word labels stay one unit. Token order and content never
// change, and the string's own leading/trailing whitespace is kept
// verbatim. Idempotent.
func NormalizeString(s string) string {
	body := strings.TrimLeftFunc(s, unicode.IsSpace)
	lead := s[:len(s)-len(body)]
	body = strings.TrimRightFunc(body, unicode.IsSpace)
	trail := s[len(lead)+len(body):]

	tokens := strings.Fields(body)
	if len(tokens) == 0 {
		return s
	}

	var chunks []string
	var run []string
	flush := func() {
		if len(run) > 0 {
			chunks = append(chunks, strings.Join(run, " "))
			run = run[:0]
		}
	}
	for _, tok := range tokens {
		if IsNumericToken(tok) {
			flush()
			chunks = append(chunks, tok)
			continue
		}
		run = append(run, tok)
	}
	flush()

	return lead + strings.Join(chunks, Separator) + trail
}
