package types

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// ClockTime is a time of day in 24-hour "HH:MM" form. Seconds are never stored.
type ClockTime string

const clockTimeLayout = "15:04"

// ErrInvalidClockTime is returned when a string is not a well-formed "HH:MM" value
var ErrInvalidClockTime = goerr.New("invalid clock time")

// ParseClockTime parses a strict zero-padded 24-hour "HH:MM" string
func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return "", goerr.Wrap(ErrInvalidClockTime, "expected HH:MM", goerr.V("time", s))
	}
	hour, ok := twoDigits(s[0], s[1])
	if !ok || hour > 23 {
		return "", goerr.Wrap(ErrInvalidClockTime, "hour out of range", goerr.V("time", s))
	}
	minute, ok := twoDigits(s[3], s[4])
	if !ok || minute > 59 {
		return "", goerr.Wrap(ErrInvalidClockTime, "minute out of range", goerr.V("time", s))
	}
	return ClockTime(s), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// ClockTimeOf truncates t to the minute and formats it as "HH:MM" in t's location
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Format(clockTimeLayout))
}

// Validate checks if the clock time is well-formed
func (c ClockTime) Validate() error {
	_, err := ParseClockTime(string(c))
	return err
}

// String returns the string representation of the clock time
func (c ClockTime) String() string {
	return string(c)
}

// Format12h renders the clock time as "9:00 AM" style text.
// Malformed values are returned unchanged.
func (c ClockTime) Format12h() string {
	if c.Validate() != nil {
		return string(c)
	}
	hour, _ := twoDigits(c[0], c[1])
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, c[3:], suffix)
}
