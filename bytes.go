// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// bytes.go — byte-slice and byte-count converters: Base64 (standard and
// URL-safe), hex, and humanized data sizes.

package textconv

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Base64 converts byte slices using standard base64 with padding. The empty
// string is the valid encoding of an empty slice.
type Base64 struct{}

func (Base64) Name() string { return "base64" }

func (Base64) Format(v []byte) string { return base64.StdEncoding.EncodeToString(v) }

func (c Base64) Parse(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, invalid(c.Name(), s, err)
	}
	return b, nil
}

// Base64URL is Base64 with the URL-safe alphabet.
type Base64URL struct{}

func (Base64URL) Name() string { return "base64url" }

func (Base64URL) Format(v []byte) string { return base64.URLEncoding.EncodeToString(v) }

func (c Base64URL) Parse(s string) ([]byte, error) {
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, invalid(c.Name(), s, err)
	}
	return b, nil
}

// Hex converts byte slices to lowercase hexadecimal.
type Hex struct{}

func (Hex) Name() string { return "hex" }

func (Hex) Format(v []byte) string { return hex.EncodeToString(v) }

func (c Hex) Parse(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, invalid(c.Name(), s, err)
	}
	return b, nil
}

// DataSize converts byte counts to humanized IEC strings ("1.5 MiB"). Parse
// also accepts SI suffixes ("1.5 MB") and bare digits. Format prefers the
// IEC rendering but falls back to bare digits when rounding would lose the
// exact count.
type DataSize struct{}

func (DataSize) Name() string { return "datasize" }

func (DataSize) Format(v uint64) string {
	s := humanize.IBytes(v)
	if n, err := humanize.ParseBytes(s); err == nil && n == v {
		return s
	}
	return strconv.FormatUint(v, 10)
}

func (c DataSize) Parse(s string) (uint64, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, invalid(c.Name(), s, err)
	}
	return n, nil
}
