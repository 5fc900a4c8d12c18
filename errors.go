// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables and the ParseError type returned by
// every converter, covering malformed input, empty input, and registry
// registration/lookup failures.

package textconv

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Parse errors
var (
	// ErrInvalidFormat matches (errors.Is) every parse failure.
	ErrInvalidFormat = errors.New("textconv: invalid format")
	// ErrEmptyInput is the cause when a converter rejects the empty string.
	ErrEmptyInput = errors.New("textconv: empty input")
)

// Registry errors
var (
	ErrConverterNotFound  = errors.New("textconv: converter not registered")
	ErrConverterDuplicate = errors.New("textconv: converter already registered")
	ErrNilConverter       = errors.New("textconv: converter must not be nil")
	ErrNilValue           = errors.New("textconv: value must not be nil")
	ErrWrongType          = errors.New("textconv: value type does not match converter")
)

var errDanglingEscape = errors.New("dangling escape at end of input")

// maxQuotedInput caps how much of the offending text a ParseError message
// reproduces. The full input stays available via the Input field.
const maxQuotedInput = 64

// ParseError is returned by every failing Parse. It names the converter,
// carries the complete offending input, and wraps the underlying parser's
// error as its cause.
type ParseError struct {
	Converter string
	Input     string
	Err       error
}

// Error quotes the offending input, truncated past maxQuotedInput runes.
func (e *ParseError) Error() string {
	in := e.Input
	if utf8.RuneCountInString(in) > maxQuotedInput {
		rs := []rune(in)
		in = string(rs[:maxQuotedInput]) + "..."
	}
	return fmt.Sprintf("textconv: %s: cannot parse %q: %v", e.Converter, in, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrInvalidFormat for every ParseError, so callers can match the
// category without knowing the converter.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidFormat }

// invalid wraps a parse failure in the uniform error convention.
func invalid(conv, input string, cause error) error {
	return &ParseError{Converter: conv, Input: input, Err: cause}
}

// emptyErr rejects the empty string for converters that require input.
func emptyErr(conv string) error {
	return &ParseError{Converter: conv, Input: "", Err: ErrEmptyInput}
}
