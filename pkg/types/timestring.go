package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire and storage format for slot times.
const timeLayout = "15:04"

var (
	// ErrInvalidTimeFormat is returned when a value does not match HH:MM.
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOverflow is returned when time arithmetic crosses the day boundary.
	ErrTimeOverflow = errors.New("types: time arithmetic out of day range")
)

// TimeString represents a time of day in 24-hour "HH:MM" form.
// It is the canonical slot-time type across the API, the engine and storage.
type TimeString string

// NewTimeString builds a TimeString from the time-of-day component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero reports whether the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(ts))
	}
	return nil
}

// minutes converts the value to minutes since midnight.
// Returns an error for malformed values.
func (ts TimeString) minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns the time m minutes later on the same day.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := ts.minutes()
	if err != nil {
		return "", err
	}

	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOverflow, ts, m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether ts is strictly earlier than other.
// Malformed values compare as not-before.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether ts is strictly later than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(ts)
}

// Scan implements sql.Scanner. Accepts TIME columns (time.Time),
// strings and byte slices.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case string:
		parsed, err := parseDBTime(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := parseDBTime(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// Value implements driver.Valuer.
func (ts TimeString) Value() (driver.Value, error) {
	if ts == "" {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// parseDBTime handles both "HH:MM" and the "HH:MM:SS" form postgres
// returns for TIME columns.
func parseDBTime(s string) (TimeString, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return NewTimeString(t), nil
	}
	return NewTimeStringFromString(s)
}
