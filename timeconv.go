// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// timeconv.go — temporal converters: RFC 3339 instants (with optional
// clock-relative parsing), civil dates and times, durations, epoch
// milliseconds, time zones, months, and weekdays.

package textconv

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/AndrewDonelson/textconv/internal/clock"
)

// Clock supplies the current time for relative Instant parsing.
// clock.Real{} is the production implementation.
type Clock = clock.Clock

// RealClock returns the system clock.
func RealClock() Clock { return clock.Real{} }

const (
	layoutDate      = "2006-01-02"
	layoutTimeOfDay = "15:04:05"
	layoutDateTime  = "2006-01-02T15:04:05"
	layoutYearMonth = "2006-01"
)

var (
	errBadRelative    = errors.New(`relative time must be "now", "now+<duration>", or "now-<duration>"`)
	errUnknownMonth   = errors.New("not a month name")
	errUnknownWeekday = errors.New("not a weekday name")
)

// Instant converts absolute timestamps in RFC 3339 form with nanoseconds;
// the canonical form is UTC. With a Clock set, Parse additionally accepts
// the relative forms "now", "now+<duration>", and "now-<duration>".
type Instant struct {
	Clock Clock
}

func (Instant) Name() string { return "instant" }

func (Instant) Format(v time.Time) string { return v.UTC().Format(time.RFC3339Nano) }

func (c Instant) Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, emptyErr(c.Name())
	}
	if c.Clock != nil && strings.HasPrefix(s, "now") {
		return c.parseRelative(s)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, invalid(c.Name(), s, err)
	}
	return t, nil
}

func (c Instant) parseRelative(s string) (time.Time, error) {
	now := c.Clock.Now().UTC()
	rest := s[len("now"):]
	if rest == "" {
		return now, nil
	}
	if rest[0] != '+' && rest[0] != '-' {
		return time.Time{}, invalid(c.Name(), s, errBadRelative)
	}
	d, err := time.ParseDuration(rest[1:])
	if err != nil {
		return time.Time{}, invalid(c.Name(), s, err)
	}
	if rest[0] == '-' {
		d = -d
	}
	return now.Add(d), nil
}

// parseLayout is the shared strict path for the civil date/time converters.
func parseLayout(name, layout, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, emptyErr(name)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, invalid(name, s, err)
	}
	return t, nil
}

// Date converts calendar dates in ISO form, "2006-01-02".
type Date struct{}

func (Date) Name() string { return "date" }

func (Date) Format(v time.Time) string { return v.Format(layoutDate) }

func (c Date) Parse(s string) (time.Time, error) {
	return parseLayout(c.Name(), layoutDate, s)
}

// TimeOfDay converts wall-clock times, "15:04:05".
type TimeOfDay struct{}

func (TimeOfDay) Name() string { return "timeofday" }

func (TimeOfDay) Format(v time.Time) string { return v.Format(layoutTimeOfDay) }

func (c TimeOfDay) Parse(s string) (time.Time, error) {
	return parseLayout(c.Name(), layoutTimeOfDay, s)
}

// DateTime converts zone-less timestamps, "2006-01-02T15:04:05".
type DateTime struct{}

func (DateTime) Name() string { return "datetime" }

func (DateTime) Format(v time.Time) string { return v.Format(layoutDateTime) }

func (c DateTime) Parse(s string) (time.Time, error) {
	return parseLayout(c.Name(), layoutDateTime, s)
}

// YearMonth converts year-month pairs, "2006-01".
type YearMonth struct{}

func (YearMonth) Name() string { return "yearmonth" }

func (YearMonth) Format(v time.Time) string { return v.Format(layoutYearMonth) }

func (c YearMonth) Parse(s string) (time.Time, error) {
	return parseLayout(c.Name(), layoutYearMonth, s)
}

// UnixMillis converts instants to decimal milliseconds since the Unix epoch.
// Parsed values are returned in UTC.
type UnixMillis struct{}

func (UnixMillis) Name() string { return "unixmillis" }

func (UnixMillis) Format(v time.Time) string { return strconv.FormatInt(v.UnixMilli(), 10) }

func (c UnixMillis) Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, emptyErr(c.Name())
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, invalid(c.Name(), s, err)
	}
	return time.UnixMilli(n).UTC(), nil
}

// Duration converts time.Duration using Go's duration syntax ("1h30m").
type Duration struct{}

func (Duration) Name() string { return "duration" }

func (Duration) Format(v time.Duration) string { return v.String() }

func (c Duration) Parse(s string) (time.Duration, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, invalid(c.Name(), s, err)
	}
	return d, nil
}

// Location converts time zones by IANA name via time.LoadLocation; "UTC"
// and "Local" are accepted. A nil location formats as the empty string.
type Location struct{}

func (Location) Name() string { return "location" }

func (Location) Format(v *time.Location) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (c Location) Parse(s string) (*time.Location, error) {
	if s == "" {
		return nil, emptyErr(c.Name())
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, invalid(c.Name(), s, err)
	}
	return loc, nil
}

// Month converts time.Month by English name. Parse is case-insensitive and
// accepts three-letter abbreviations.
type Month struct{}

func (Month) Name() string { return "month" }

func (Month) Format(v time.Month) string { return v.String() }

func (c Month) Parse(s string) (time.Month, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	key := strings.ToLower(s)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if key == full || (len(key) == 3 && key == full[:3]) {
			return m, nil
		}
	}
	return 0, invalid(c.Name(), s, errUnknownMonth)
}

// Weekday converts time.Weekday by English name. Parse is case-insensitive
// and accepts three-letter abbreviations.
type Weekday struct{}

func (Weekday) Name() string { return "weekday" }

func (Weekday) Format(v time.Weekday) string { return v.String() }

func (c Weekday) Parse(s string) (time.Weekday, error) {
	if s == "" {
		return 0, emptyErr(c.Name())
	}
	key := strings.ToLower(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if key == full || (len(key) == 3 && key == full[:3]) {
			return d, nil
		}
	}
	return 0, invalid(c.Name(), s, errUnknownWeekday)
}
