// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// locale.go — BCP 47 language tag, ISO 4217 currency, and IANA character
// set converters built on golang.org/x/text.

package textconv

import (
	"errors"

	"golang.org/x/text/currency"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"
)

var errUnsupportedCharset = errors.New("charset registered but not supported")

// LanguageTag converts BCP 47 language tags ("en-US", "sr-Latn"). Parse
// canonicalizes, so "en-us" formats back as "en-US".
type LanguageTag struct{}

func (LanguageTag) Name() string { return "language" }

func (LanguageTag) Format(v language.Tag) string { return v.String() }

func (c LanguageTag) Parse(s string) (language.Tag, error) {
	if s == "" {
		return language.Und, emptyErr(c.Name())
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, invalid(c.Name(), s, err)
	}
	return tag, nil
}

// CurrencyUnit converts ISO 4217 currency codes ("USD", "EUR"). Parse is
// case-insensitive; the canonical form is upper case.
type CurrencyUnit struct{}

func (CurrencyUnit) Name() string { return "currency" }

func (CurrencyUnit) Format(v currency.Unit) string { return v.String() }

func (c CurrencyUnit) Parse(s string) (currency.Unit, error) {
	if s == "" {
		return currency.XXX, emptyErr(c.Name())
	}
	u, err := currency.ParseISO(s)
	if err != nil {
		return currency.XXX, invalid(c.Name(), s, err)
	}
	return u, nil
}

// Charset converts character encodings by IANA name ("UTF-8", "ISO-8859-1").
// Format returns the canonical IANA name, or the empty string for encodings
// the index cannot name.
type Charset struct{}

func (Charset) Name() string { return "charset" }

func (Charset) Format(v encoding.Encoding) string {
	if v == nil {
		return ""
	}
	name, err := ianaindex.IANA.Name(v)
	if err != nil {
		return ""
	}
	return name
}

func (c Charset) Parse(s string) (encoding.Encoding, error) {
	if s == "" {
		return nil, emptyErr(c.Name())
	}
	enc, err := ianaindex.IANA.Encoding(s)
	if err != nil {
		return nil, invalid(c.Name(), s, err)
	}
	if enc == nil {
		return nil, invalid(c.Name(), s, errUnsupportedCharset)
	}
	return enc, nil
}
