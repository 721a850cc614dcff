package types

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"strings"
	"time"
)

var fullDatePattern = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// Date is the calendar date of a transaction.
//
// Dates are always kept in UTC. A date submitted as "2006-01-02" is stored
// at UTC midnight of that day.
type Date time.Time

// NewDate returns the Date at UTC midnight of the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a string in either "2006-01-02" or RFC3339 format.
func ParseDate(s string) (Date, error) {
	pattern := time.RFC3339Nano
	if fullDatePattern.MatchString(s) {
		pattern = time.DateOnly
	}

	t, err := time.Parse(pattern, s)
	if err != nil {
		return Date{}, err
	}

	return Date(t.UTC()), nil
}

// Time returns the Date as time.Time in UTC.
func (d Date) Time() time.Time {
	return time.Time(d).UTC()
}

// String returns the ISO 8601 representation of the date in UTC, e.g.
// 2024-03-05T00:00:00Z.
func (d Date) String() string {
	return d.Time().Format(time.RFC3339Nano)
}

// MonthKey returns the month key of the date, the first seven characters
// of its ISO 8601 representation.
func (d Date) MonthKey() MonthKey {
	return MonthKeyOf(d.String())
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// Equal reports whether d and e represent the same instant.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time().MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Empty strings and null leave the date at its zero value.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value any) error {
	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	*d = Date(nullTime.Time.UTC())
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return d.Time(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "time"
}
