// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// textconv.go — the Converter interface and the combinators (Nullable,
// Slice) that lift converters over pointers and lists.

// Package textconv provides stateless parse/format converters between Go
// values and their canonical textual representations: numbers, booleans,
// durations, dates and times, UUIDs, URLs, IP addresses, byte blobs,
// language tags, currencies, character sets, enums, and lists thereof.
//
// Every converter is a small value type implementing Converter[T]. Parse is
// strict: malformed input yields a *ParseError that carries the offending
// text and wraps the underlying parser's error. Format is total and emits
// the canonical form, so Parse(Format(v)) == v for every valid v.
//
// Converters can be used directly, or through a name-indexed Registry (see
// Default) when the target type is only known at runtime.
package textconv

import "strings"

// Converter converts values of type T to and from their textual form.
type Converter[T any] interface {
	// Parse converts s into a value. Malformed input returns a *ParseError.
	Parse(s string) (T, error)
	// Format renders v in its canonical textual form.
	Format(v T) string
	// Name returns the converter's stable identifier, e.g. "int64" or "uuid".
	Name() string
}

// ────────────────────────────────────────────────────────────────────────────
// Combinators
// ────────────────────────────────────────────────────────────────────────────

// Nullable lifts a Converter[T] to *T, mapping nil to the empty string and
// back. It shadows the inner converter's handling of "": a Nullable[string]
// can never produce a non-nil empty string.
type Nullable[T any] struct {
	Conv Converter[T]
}

// Name returns the inner name with a "-nullable" suffix.
func (c Nullable[T]) Name() string { return c.Conv.Name() + "-nullable" }

// Parse returns nil for the empty string, otherwise delegates to the inner
// converter.
func (c Nullable[T]) Parse(s string) (*T, error) {
	if s == "" {
		return nil, nil
	}
	v, err := c.Conv.Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Format renders nil as the empty string.
func (c Nullable[T]) Format(v *T) string {
	if v == nil {
		return ""
	}
	return c.Conv.Format(*v)
}

// Slice converts []T to a separator-joined list of element representations.
// Separator and backslash characters inside an element are backslash-escaped,
// and an element that formats to the empty string is encoded as the marker
// `\e`, so any slice round-trips regardless of element content. The empty
// string parses to an empty (non-nil) slice.
type Slice[T any] struct {
	Conv Converter[T]
	// Sep is the element separator; 0 means ','. It must not be a
	// backslash or the letter 'e', both reserved by the escape scheme.
	Sep rune
}

func (c Slice[T]) sep() rune {
	if c.Sep == 0 {
		return ','
	}
	return c.Sep
}

// Name returns the element name with a "-list" suffix.
func (c Slice[T]) Name() string { return c.Conv.Name() + "-list" }

// Format joins the escaped element representations. An element whose
// representation is empty becomes the `\e` marker, which keeps a lone
// empty element distinguishable from an empty slice.
func (c Slice[T]) Format(vs []T) string {
	if len(vs) == 0 {
		return ""
	}
	sep := c.sep()
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteRune(sep)
		}
		f := c.Conv.Format(v)
		if f == "" {
			b.WriteString(`\e`)
			continue
		}
		for _, r := range f {
			if r == sep || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse splits s on unescaped separators and parses each element. A failing
// element aborts the whole parse. A token that is exactly the `\e` marker
// parses as the empty element; a literal backslash-e survives because Format
// escapes the backslash (`\\e`).
func (c Slice[T]) Parse(s string) ([]T, error) {
	if s == "" {
		return []T{}, nil
	}
	sep := c.sep()
	var out []T
	var raw, elem strings.Builder // raw keeps the escapes for marker detection
	escaped := false
	flush := func() error {
		text := elem.String()
		if raw.String() == `\e` {
			text = ""
		}
		v, err := c.Conv.Parse(text)
		if err != nil {
			return &ParseError{Converter: c.Name(), Input: s, Err: err}
		}
		out = append(out, v)
		raw.Reset()
		elem.Reset()
		return nil
	}
	for _, r := range s {
		switch {
		case escaped:
			raw.WriteByte('\\')
			raw.WriteRune(r)
			elem.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == sep:
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			raw.WriteRune(r)
			elem.WriteRune(r)
		}
	}
	if escaped {
		return nil, invalid(c.Name(), s, errDanglingEscape)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}
