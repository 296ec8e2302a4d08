package chart

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Keys whose name contains this substring hold chart data; their string
// values are normalized unconditionally.
const chartKeyHint = "chart"

// Normalize applies the candidate policy to raw text. Valid JSON
// documents are walked structurally; anything else goes through the
// plain-text heuristic. Returns the rewritten text and whether any
// candidate value actually changed.
func Normalize(raw string) (string, bool) {
	if gjson.Valid(raw) {
		return NormalizeDocument(raw)
	}
	return NormalizeText(raw)
}

// NormalizeDocument walks a JSON document depth-first and rewrites
// candidate strings: the direct string value of a chart-named key, every
// element of a sequence at such a key (arrays of chart lines count, any
// depth), plus any other string containing HeuristicMinRun consecutive
// numeric tokens. Strings inside nested objects get no free pass from a
// chart-named ancestor; they must pass the numeric-run heuristic. When
// something changed the document comes back compactly re-serialized
// with key order preserved; otherwise raw is returned untouched.
func NormalizeDocument(raw string) (string, bool) {
	if !gjson.Valid(raw) {
		return raw, false
	}
	var b strings.Builder
	b.Grow(len(raw))
	if !writeValue(&b, gjson.Parse(raw), false) {
		return raw, false
	}
	return b.String(), true
}

// writeValue re-emits v onto b and reports whether any string under it
// was rewritten. Non-candidate values keep their original raw form.
func writeValue(b *strings.Builder, v gjson.Result, underChartKey bool) bool {
	switch {
	case v.IsObject():
		changed := false
		b.WriteByte('{')
		first := true
		v.ForEach(func(key, val gjson.Result) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.Write(marshalString(key.String()))
			b.WriteByte(':')
			// an object resets candidacy: only the key's own value and
			// sequences below it inherit the chart hint
			if writeValue(b, val, isChartKey(key.String())) {
				changed = true
			}
			return true
		})
		b.WriteByte('}')
		return changed
	case v.IsArray():
		changed := false
		b.WriteByte('[')
		first := true
		v.ForEach(func(_, val gjson.Result) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			if writeValue(b, val, underChartKey) {
				changed = true
			}
			return true
		})
		b.WriteByte(']')
		return changed
	case v.Type == gjson.String:
		s := v.String()
		if underChartKey || LongestNumericRun(s) >= HeuristicMinRun {
			if out := NormalizeString(s); out != s {
				b.Write(marshalString(out))
				return true
			}
		}
		b.WriteString(v.Raw)
		return false
	default:
		b.WriteString(v.Raw)
		return false
	}
}

func isChartKey(name string) bool {
	return strings.Contains(strings.ToLower(name), chartKeyHint)
}

// marshalString JSON-encodes s without HTML escaping, so '<', '>' and
// '&' in chart metadata survive a rewrite byte for byte.
func marshalString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode on a plain string cannot fail
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}

// NormalizeText is the fallback for inputs that are not a JSON document.
// It rewrites only in-line runs of HeuristicMinRun or more numeric
// tokens; everything else, line structure included, stays byte for byte.
func NormalizeText(raw string) (string, bool) {
	type span struct{ start, end int }

	var b strings.Builder
	changed := false
	last := 0

	var run []span
	flush := func() {
		if len(run) >= HeuristicMinRun {
			start, end := run[0].start, run[len(run)-1].end
			norm := NormalizeString(raw[start:end])
			if norm != raw[start:end] {
				b.WriteString(raw[last:start])
				b.WriteString(norm)
				last = end
				changed = true
			}
		}
		run = run[:0]
	}

	i := 0
	for i < len(raw) {
		if isSpaceByte(raw[i]) {
			// runs never cross lines
			if raw[i] == '\n' || raw[i] == '\r' {
				flush()
			}
			i++
			continue
		}
		j := i
		for j < len(raw) && !isSpaceByte(raw[j]) {
			j++
		}
		if IsNumericToken(raw[i:j]) {
			run = append(run, span{i, j})
		} else {
			flush()
		}
		i = j
	}
	flush()

	if !changed {
		return raw, false
	}
	b.WriteString(raw[last:])
	return b.String(), true
}
