// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// enum.go — generic converter for closed sets of named values, with optional
// case-insensitive and case-style-folding lookup.

package textconv

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stoewer/go-strcase"
)

var errUnknownName = errors.New("not a declared name")

// EnumOption configures Enum lookup behavior.
type EnumOption func(*enumOptions)

type enumOptions struct {
	caseInsensitive bool
	foldCase        bool
}

// CaseInsensitive makes Parse ignore letter case.
func CaseInsensitive() EnumOption {
	return func(o *enumOptions) { o.caseInsensitive = true }
}

// FoldCase makes Parse accept snake_case, kebab-case, and camelCase spellings
// of the declared names, ignoring letter case. Implies CaseInsensitive.
func FoldCase() EnumOption {
	return func(o *enumOptions) {
		o.foldCase = true
		o.caseInsensitive = true
	}
}

// Enum builds a converter for a closed set of named values. The declared
// names are the canonical textual form. When several names map to one value,
// the lexicographically first name becomes that value's format; values not
// in the set format via %v.
func Enum[T comparable](name string, values map[string]T, opts ...EnumOption) Converter[T] {
	var o enumOptions
	for _, opt := range opts {
		opt(&o)
	}
	e := &enumConverter[T]{
		name:   name,
		opts:   o,
		lookup: make(map[string]T, len(values)),
		names:  make(map[T]string, len(values)),
	}
	declared := make([]string, 0, len(values))
	for n := range values {
		declared = append(declared, n)
	}
	sort.Strings(declared)
	for _, n := range declared {
		v := values[n]
		e.lookup[e.normalize(n)] = v
		if _, taken := e.names[v]; !taken {
			e.names[v] = n
		}
	}
	return e
}

type enumConverter[T comparable] struct {
	name   string
	opts   enumOptions
	lookup map[string]T
	names  map[T]string
}

func (e *enumConverter[T]) Name() string { return e.name }

func (e *enumConverter[T]) normalize(s string) string {
	if e.opts.foldCase {
		return strings.ToLower(strcase.SnakeCase(s))
	}
	if e.opts.caseInsensitive {
		return strings.ToLower(s)
	}
	return s
}

func (e *enumConverter[T]) Format(v T) string {
	if n, ok := e.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%v", v)
}

func (e *enumConverter[T]) Parse(s string) (T, error) {
	var zero T
	if s == "" {
		return zero, emptyErr(e.name)
	}
	v, ok := e.lookup[e.normalize(s)]
	if !ok {
		return zero, invalid(e.name, s, errUnknownName)
	}
	return v, nil
}
