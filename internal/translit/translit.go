// Package translit converts Unicode text to a plain ASCII approximation by
// stripping combining marks and folding letters that have no decomposition.
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold maps letters that do not decompose to an ASCII replacement.
var fold = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ł': "l", 'Ł': "L",
	'ı': "i", 'İ': "I",
	'—': "-", '–': "-",
	'‘': "'", '’': "'",
	'“': `"`, '”': `"`,
	'…': "...",
	' ': " ",
}

// stripMarks decomposes, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ToASCII returns an ASCII-only approximation of s. Diacritics are removed,
// known special letters and punctuation are folded, and every remaining
// non-ASCII rune becomes '?'.
func ToASCII(s string) string {
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		default:
			if rep, ok := fold[r]; ok {
				b.WriteString(rep)
			} else {
				b.WriteByte('?')
			}
		}
	}
	return b.String()
}
