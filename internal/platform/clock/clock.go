// Package clock answers "what day is it" for the configured study time zone.
package clock

import (
	"fmt"
	"strings"
	"time"
)

// Clock yields the current instant in a fixed location.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New loads the named IANA zone; an empty name means UTC.
func New(zone string) (*Clock, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return &Clock{loc: time.UTC, now: time.Now}, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load study timezone %q: %w", zone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Fixed returns a clock frozen at t, used by tests and the admin CLI.
func Fixed(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c *Clock) Location() *time.Location { return c.loc }

func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

// Today is the current calendar day as UTC midnight.
func (c *Clock) Today() time.Time { return DateOf(c.Now()) }

// Weekday is today's upper-case English weekday name, e.g. "MONDAY".
func (c *Clock) Weekday() string { return WeekdayName(c.Now().Weekday()) }

// DateOf drops the time of day, keeping t's calendar date in its own location,
// and returns it as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

const DateLayout = "2006-01-02"

func WeekdayName(d time.Weekday) string { return strings.ToUpper(d.String()) }
