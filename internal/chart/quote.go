package chart

// TrimOuterQuotes removes a single pair of double quotes wrapping the
// whole non-whitespace content of text. Leading and trailing whitespace
// stays verbatim, as does the interior. Only one pair is ever stripped,
// so a doubly quoted file keeps one outer layer per call.
func TrimOuterQuotes(text string) (string, bool) {
	start := 0
	for start < len(text) && isSpaceByte(text[start]) {
		start++
	}
	end := len(text)
	for end > start && isSpaceByte(text[end-1]) {
		end--
	}
	if end-start < 2 || text[start] != '"' || text[end-1] != '"' {
		return text, false
	}
	return text[:start] + text[start+1:end-1] + text[end:], true
}
