// Package types implements special types for spendwise.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidMonth is returned when a string is not a month key in YYYY-MM format.
var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

var monthPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// MonthKey is a month in a specific year, formatted as YYYY-MM.
//
// It is the grouping unit for all spend and budget aggregation. Since the
// format sorts lexicographically in chronological order, MonthKeys can be
// compared and sorted as plain strings.
type MonthKey string

// NewMonthKey returns the MonthKey for a year and month.
func NewMonthKey(year int, month time.Month) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", year, month))
}

// MonthKeyOf returns the first seven characters of an ISO 8601 date string.
//
// This is a string prefix, not a calendar computation. A date stored at UTC
// midnight keeps its month regardless of the local timezone.
func MonthKeyOf(iso string) MonthKey {
	if len(iso) < 7 {
		return MonthKey(iso)
	}

	return MonthKey(iso[:7])
}

// CurrentMonthKey returns the MonthKey of t in UTC.
func CurrentMonthKey(t time.Time) MonthKey {
	return MonthKeyOf(t.UTC().Format(time.RFC3339))
}

// ParseMonthKey parses a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	m := MonthKey(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w, got '%s'", ErrInvalidMonth, s)
	}

	return m, nil
}

// Valid reports whether the MonthKey is a well-formed YYYY-MM string.
func (m MonthKey) Valid() bool {
	return monthPattern.MatchString(string(m))
}

// String returns the month key.
func (m MonthKey) String() string {
	return string(m)
}
