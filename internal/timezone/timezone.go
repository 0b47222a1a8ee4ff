// Package timezone provides IANA timezone parsing and local-time helpers.
//
// All availability reasoning starts from a stored zone identifier and a
// reference instant; this package is the single place zone strings are
// resolved and validated.
package timezone

import (
	"time"

	"github.com/pkg/errors"
)

// DayFormat is the calendar-day key used by the activity counters.
const DayFormat = "2006-01-02"

// Parse resolves an IANA zone identifier (e.g. "America/New_York").
// An empty identifier and "UTC" both resolve to UTC.
func Parse(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", tz)
	}
	return loc, nil
}

// MustParse parses a zone identifier or panics. Use only for identifiers
// known valid at compile time (tests, defaults).
func MustParse(tz string) *time.Location {
	loc, err := Parse(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValid reports whether tz resolves to a known zone.
func IsValid(tz string) bool {
	_, err := Parse(tz)
	return err == nil
}

// LocalHour returns the wall-clock hour of now in the given zone.
func LocalHour(loc *time.Location, now time.Time) int {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Hour()
}

// Day returns the UTC calendar-day key for the given instant. Activity
// counters use a fixed reference clock, not the per-user zone.
func Day(now time.Time) string {
	return now.UTC().Format(DayFormat)
}

// DaysAgo returns the UTC calendar-day key n days before now.
func DaysAgo(now time.Time, n int) string {
	return now.UTC().AddDate(0, 0, -n).Format(DayFormat)
}

// StartOfDay returns 00:00:00 of now's calendar day in the given zone.
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
