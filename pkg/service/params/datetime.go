package params

import (
	"errors"
	"fmt"
	"time"
)

// Parse failures are split into two kinds so validation messages can tell
// a malformed encoding apart from an out-of-range component.
var (
	ErrFormat = errors.New("malformed value")
	ErrValue  = errors.New("value out of range")
)

// Date is a parsed YYYYMMDD value. It keeps the components exactly as
// supplied instead of normalizing through time.Time, because day-of-month
// is range-checked but not calendar-checked (20230230 parses; see
// ParseDate).
type Date struct {
	Year  int
	Month int
	Day   int
}

// TimeOfDay is a parsed HHMM or HHMMSS value.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// At combines the date with a time of day into a concrete instant in the
// local timezone. Calendar-invalid dates normalize here, at the backend
// boundary, the same way the upstream SDKs treat them.
func (d Date) At(t TimeOfDay) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour, t.Minute, t.Second, 0, time.Local)
}

// Time returns the date at midnight local time.
func (d Date) Time() time.Time {
	return d.At(TimeOfDay{})
}

// ParseDate decodes an 8-digit YYYYMMDD string. Month must be 1-12 and day
// 1-31; whether the day exists in that month is deliberately not checked.
// Callers supply approximate dates and the backend tolerates them, so
// tightening this would be a behavior change.
func ParseDate(s string) (Date, error) {
	if len(s) != 8 || !allDigits(s) {
		return Date{}, fmt.Errorf("%w: date must be exactly 8 digits (YYYYMMDD), got %q", ErrFormat, s)
	}
	d := Date{
		Year:  digits(s[0:4]),
		Month: digits(s[4:6]),
		Day:   digits(s[6:8]),
	}
	if d.Month < 1 || d.Month > 12 {
		return Date{}, fmt.Errorf("%w: month %02d is not in 01-12", ErrValue, d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return Date{}, fmt.Errorf("%w: day %02d is not in 01-31", ErrValue, d.Day)
	}
	return d, nil
}

// ParseTime decodes a 4-digit HHMM or 6-digit HHMMSS string. Seconds
// default to 0 in the 4-digit form.
func ParseTime(s string) (TimeOfDay, error) {
	if (len(s) != 4 && len(s) != 6) || !allDigits(s) {
		return TimeOfDay{}, fmt.Errorf("%w: time must be 4 (HHMM) or 6 (HHMMSS) digits, got %q", ErrFormat, s)
	}
	t := TimeOfDay{
		Hour:   digits(s[0:2]),
		Minute: digits(s[2:4]),
	}
	if len(s) == 6 {
		t.Second = digits(s[4:6])
	}
	if t.Hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %02d is not in 00-23", ErrValue, t.Hour)
	}
	if t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %02d is not in 00-59", ErrValue, t.Minute)
	}
	if t.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: second %02d is not in 00-59", ErrValue, t.Second)
	}
	return t, nil
}

// ParseDatetime composes a date string with an optional time string.
// An empty time string means midnight.
func ParseDatetime(dateStr, timeStr string) (time.Time, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	var t TimeOfDay
	if timeStr != "" {
		t, err = ParseTime(timeStr)
		if err != nil {
			return time.Time{}, err
		}
	}
	return d.At(t), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// digits converts a validated ASCII digit run; callers check allDigits
// first.
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
