// Package escape implements \uXXXX escaping and unescaping of text, so that
// any string can travel through ASCII-only channels and round-trip exactly.
package escape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

var (
	// ErrBadEscape is returned for a truncated or non-hex \u sequence.
	ErrBadEscape = errors.New("malformed \\u escape")
	// ErrLoneSurrogate is returned when a surrogate escape has no valid partner.
	ErrLoneSurrogate = errors.New("unpaired surrogate escape")
)

// Escape replaces every rune outside printable ASCII with its \uXXXX escape.
// Runes above the BMP become a UTF-16 surrogate pair. The backslash itself
// is escaped as \u005C, which makes Unescape an exact inverse.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\u005C`)
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04X\u%04X`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04X`, r)
		}
	}
	return b.String()
}

// Unescape reverses Escape. Text outside \u sequences is copied through
// untouched, so already-plain strings survive unchanged.
func Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		r1, err := hex4(s, i)
		if err != nil {
			return "", err
		}
		i += 6
		if !utf16.IsSurrogate(r1) {
			b.WriteRune(r1)
			continue
		}
		if r1 >= 0xDC00 {
			// low surrogate with no preceding high surrogate
			return "", ErrLoneSurrogate
		}
		r2, err := hex4(s, i)
		if err != nil {
			return "", ErrLoneSurrogate
		}
		if !utf16.IsSurrogate(r2) || r2 < 0xDC00 {
			return "", ErrLoneSurrogate
		}
		i += 6
		b.WriteRune(utf16.DecodeRune(r1, r2))
	}
	return b.String(), nil
}

// hex4 decodes the six-byte sequence \uXXXX starting at i.
func hex4(s string, i int) (rune, error) {
	if i+6 > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, ErrBadEscape
	}
	v, err := strconv.ParseUint(s[i+2:i+6], 16, 32)
	if err != nil {
		return 0, ErrBadEscape
	}
	return rune(v), nil
}
