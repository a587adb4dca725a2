package domain

import (
	"time"
)

// DateLayout is the calendar date format used by input documents.
const DateLayout = "2006-01-02"

// Non-padded month and day, as in "2015-07-4".
const looseDateLayout = "2006-1-2"

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err == nil {
		return d, nil
	}
	if d, looseErr := time.Parse(looseDateLayout, value); looseErr == nil {
		return d, nil
	}
	return time.Time{}, &ValidationError{Field: field, Value: value, Reason: "expected YYYY-MM-DD", Err: err}
}
