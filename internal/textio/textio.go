package textio

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding tags a successful decode so the write side can round-trip
// the file in the same representation it was read in.
type Encoding string

const (
	UTF8    Encoding = "utf-8"
	UTF8BOM Encoding = "utf-8-sig"
	Latin1  Encoding = "latin-1"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode tries a fixed ordered list of encodings and returns the first
// that fits: utf-8 with BOM, plain utf-8, then latin-1. Latin-1 accepts
// any byte sequence, so in practice every file decodes.
func Decode(b []byte) (string, Encoding, error) {
	if bytes.HasPrefix(b, utf8BOM) {
		rest := b[len(utf8BOM):]
		if utf8.Valid(rest) {
			return string(rest), UTF8BOM, nil
		}
	}
	if utf8.Valid(b) {
		return string(b), UTF8, nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", "", fmt.Errorf("no candidate encoding fits: %w", err)
	}
	return string(out), Latin1, nil
}

// Encode converts text back to bytes for the encoding tag Decode chose,
// re-adding the BOM for utf-8-sig files.
func Encode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case UTF8:
		return []byte(text), nil
	case UTF8BOM:
		out := make([]byte, 0, len(utf8BOM)+len(text))
		out = append(out, utf8BOM...)
		return append(out, text...), nil
	case Latin1:
		out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("text does not fit latin-1: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown encoding tag %q", enc)
	}
}
