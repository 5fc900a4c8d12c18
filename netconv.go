// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// netconv.go — URL, form-encoding, IP address/port, UUID, and filesystem
// path converters.

package textconv

import (
	"errors"
	"net/netip"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	errNoScheme  = errors.New("URL must be absolute")
	errNulInPath = errors.New("path contains NUL byte")
)

// URL converts URLs via net/url. Parse requires a scheme, so relative
// references are rejected. A nil URL formats as the empty string.
type URL struct{}

func (URL) Name() string { return "url" }

func (URL) Format(v *url.URL) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (c URL) Parse(s string) (*url.URL, error) {
	if s == "" {
		return nil, emptyErr(c.Name())
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, invalid(c.Name(), s, err)
	}
	if u.Scheme == "" {
		return nil, invalid(c.Name(), s, errNoScheme)
	}
	return u, nil
}

// FormValue converts strings to and from application/x-www-form-urlencoded
// escaping ("a b" <-> "a+b"). Accepts the empty string.
type FormValue struct{}

func (FormValue) Name() string { return "form-value" }

func (FormValue) Format(v string) string { return url.QueryEscape(v) }

func (c FormValue) Parse(s string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", invalid(c.Name(), s, err)
	}
	return out, nil
}

// Addr converts IP addresses (v4 or v6) via net/netip.
type Addr struct{}

func (Addr) Name() string { return "addr" }

func (Addr) Format(v netip.Addr) string { return v.String() }

func (c Addr) Parse(s string) (netip.Addr, error) {
	if s == "" {
		return netip.Addr{}, emptyErr(c.Name())
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, invalid(c.Name(), s, err)
	}
	return a, nil
}

// AddrPort converts address:port pairs via net/netip.
type AddrPort struct{}

func (AddrPort) Name() string { return "addrport" }

func (AddrPort) Format(v netip.AddrPort) string { return v.String() }

func (c AddrPort) Parse(s string) (netip.AddrPort, error) {
	if s == "" {
		return netip.AddrPort{}, emptyErr(c.Name())
	}
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return netip.AddrPort{}, invalid(c.Name(), s, err)
	}
	return ap, nil
}

// UUID converts UUIDs; the canonical form is lowercase hyphenated. Parse
// accepts every textual form the uuid package does (braced, URN, raw hex).
type UUID struct{}

func (UUID) Name() string { return "uuid" }

func (UUID) Format(v uuid.UUID) string { return v.String() }

func (c UUID) Parse(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.UUID{}, emptyErr(c.Name())
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, invalid(c.Name(), s, err)
	}
	return u, nil
}

// Path converts filesystem paths. Parse rejects NUL bytes and cleans the
// path, so Format(Parse(s)) == s only for already-clean input.
type Path struct{}

func (Path) Name() string { return "path" }

func (Path) Format(v string) string { return v }

func (c Path) Parse(s string) (string, error) {
	if s == "" {
		return "", emptyErr(c.Name())
	}
	if strings.ContainsRune(s, 0) {
		return "", invalid(c.Name(), s, errNulInPath)
	}
	return filepath.Clean(s), nil
}
