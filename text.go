// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// text.go — string, rune, regexp pattern, and escaped text converters, plus
// the unicode escape and ASCII transliteration helpers.

package textconv

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/AndrewDonelson/textconv/internal/escape"
	"github.com/AndrewDonelson/textconv/internal/translit"
)

var (
	errNotOneRune = errors.New("expected exactly one rune")
	errBadUTF8    = errors.New("invalid UTF-8")
)

// String is the identity converter. It accepts the empty string.
type String struct{}

func (String) Name() string { return "string" }

func (String) Format(v string) string { return v }

func (String) Parse(s string) (string, error) { return s, nil }

// Rune converts exactly one rune.
type Rune struct{}

func (Rune) Name() string { return "rune" }

func (Rune) Format(v rune) string { return string(v) }

func (c Rune) Parse(s string) (rune, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, invalid(c.Name(), s, errBadUTF8)
	}
	if size != len(s) {
		return 0, invalid(c.Name(), s, errNotOneRune)
	}
	return r, nil
}

// Pattern converts compiled regular expressions; the textual form is the
// pattern source, so Format(Parse(s)) == s for every valid pattern.
type Pattern struct{}

func (Pattern) Name() string { return "pattern" }

func (Pattern) Format(v *regexp.Regexp) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (c Pattern) Parse(s string) (*regexp.Regexp, error) {
	if s == "" {
		return nil, emptyErr(c.Name())
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, invalid(c.Name(), s, err)
	}
	return re, nil
}

// Text converts arbitrary strings through \uXXXX escaping, producing a
// printable-ASCII-only representation. Accepts the empty string.
type Text struct{}

func (Text) Name() string { return "text" }

func (Text) Format(v string) string { return escape.Escape(v) }

func (c Text) Parse(s string) (string, error) {
	out, err := escape.Unescape(s)
	if err != nil {
		return "", invalid(c.Name(), s, err)
	}
	return out, nil
}

// EscapeUnicode replaces every rune outside printable ASCII with its \uXXXX
// escape; runes above the BMP become a surrogate pair.
func EscapeUnicode(s string) string { return escape.Escape(s) }

// UnescapeUnicode reverses EscapeUnicode.
func UnescapeUnicode(s string) (string, error) { return escape.Unescape(s) }

// ToASCII returns an ASCII approximation of s: diacritics stripped, special
// letters like ß and œ folded, anything else replaced by '?'.
func ToASCII(s string) string { return translit.ToASCII(s) }
