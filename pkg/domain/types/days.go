package types

import (
	"fmt"
	"slices"
	"time"
)

// DayTag is a recurrence tag: either Daily or a weekday abbreviation
type DayTag string

const (
	DayDaily DayTag = "Daily"
	DayMon   DayTag = "Mon"
	DayTue   DayTag = "Tue"
	DayWed   DayTag = "Wed"
	DayThu   DayTag = "Thu"
	DayFri   DayTag = "Fri"
	DaySat   DayTag = "Sat"
	DaySun   DayTag = "Sun"
)

var weekdayTags = [7]DayTag{DaySun, DayMon, DayTue, DayWed, DayThu, DayFri, DaySat}

// DayTagOf returns the abbreviation tag of a weekday
func DayTagOf(w time.Weekday) DayTag {
	return weekdayTags[w]
}

// IsValid checks if the day tag is valid
func (d DayTag) IsValid() bool {
	if d == DayDaily {
		return true
	}
	for _, tag := range weekdayTags {
		if d == tag {
			return true
		}
	}
	return false
}

// weekdayIndex orders tags Mon..Sun, with Daily first
func (d DayTag) weekdayIndex() int {
	if d == DayDaily {
		return 0
	}
	for i, tag := range weekdayTags {
		if d == tag {
			// Sunday sorts last
			return (i+6)%7 + 1
		}
	}
	return -1
}

// Days is an ordered set of recurrence tags: either {Daily} or a subset of weekdays
type Days []DayTag

// DefaultCustomDays is the weekday subset assigned to any non-daily frequency
func DefaultCustomDays() Days {
	return Days{DayMon, DayWed, DayFri}
}

// ParseDays validates and normalizes a list of tags into calendar order.
// Daily cannot be combined with weekday tags, and duplicates are rejected.
func ParseDays(tags []string) (Days, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("at least one day tag is required")
	}

	seen := make(map[DayTag]bool, len(tags))
	days := make(Days, 0, len(tags))
	for _, s := range tags {
		tag := DayTag(s)
		if !tag.IsValid() {
			return nil, fmt.Errorf("invalid day tag: %s", s)
		}
		if seen[tag] {
			return nil, fmt.Errorf("duplicate day tag: %s", s)
		}
		seen[tag] = true
		days = append(days, tag)
	}

	if seen[DayDaily] && len(days) > 1 {
		return nil, fmt.Errorf("daily cannot be combined with weekday tags")
	}

	slices.SortFunc(days, func(a, b DayTag) int {
		return a.weekdayIndex() - b.weekdayIndex()
	})
	return days, nil
}

// Includes reports whether the set covers the given weekday
func (d Days) Includes(w time.Weekday) bool {
	want := DayTagOf(w)
	for _, tag := range d {
		if tag == DayDaily || tag == want {
			return true
		}
	}
	return false
}

// Strings returns the tags as plain strings
func (d Days) Strings() []string {
	out := make([]string, len(d))
	for i, tag := range d {
		out[i] = string(tag)
	}
	return out
}

// Frequency is the user-facing recurrence choice made at creation time
type Frequency string

const (
	FrequencyDaily  Frequency = "Daily"
	FrequencyCustom Frequency = "Custom"
)

// Days expands the frequency into its recurrence set.
// Daily (or empty) yields {Daily}; any other value yields the default custom subset.
func (f Frequency) Days() Days {
	if f == "" || f == FrequencyDaily {
		return Days{DayDaily}
	}
	return DefaultCustomDays()
}
