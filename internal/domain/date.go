package domain

import (
	"fmt"
	"time"
)

// DateKey is the canonical YYYY-MM-DD form of a calendar date.
// ISO-8601 keys sort lexicographically in calendar order, so keys can be
// compared as plain strings.
type DateKey string

// FormatDate returns the canonical key of the civil date of t (in t's location).
func FormatDate(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", y, int(m), d))
}

// ParseDateKey parses a YYYY-MM-DD string into midnight of that date in loc.
func ParseDateKey(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Valid reports whether k is a well-formed, existing calendar date.
func (k DateKey) Valid() bool {
	_, err := time.Parse(DateFormat, string(k))
	return err == nil
}

// Year returns the year part of a valid key, or 0.
func (k DateKey) Year() int {
	t, err := time.Parse(DateFormat, string(k))
	if err != nil {
		return 0
	}
	return t.Year()
}

func (k DateKey) String() string {
	return string(k)
}

// StartOfDay truncates t to local midnight, keeping its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of civil days from `from` to `to`.
// Time-of-day and DST shifts are ignored.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// DateRef is either an absolute date or an offset from "today".
// Relative refs are resolved against the evaluation-time clock, never cached.
type DateRef struct {
	Key          DateKey // absolute date; empty for relative refs
	OffsetDays   int
	OffsetMonths int
}

// AbsoluteDate references a fixed calendar date.
func AbsoluteDate(key DateKey) DateRef {
	return DateRef{Key: key}
}

// RelativeDate references today shifted by the given months and days.
func RelativeDate(days, months int) DateRef {
	return DateRef{OffsetDays: days, OffsetMonths: months}
}

// IsRelative reports whether the ref depends on the current date.
func (r DateRef) IsRelative() bool {
	return r.Key == ""
}

// Resolve returns midnight of the referenced date in now's location.
// An unparsable absolute key resolves to the zero time; see Validate.
func (r DateRef) Resolve(now time.Time) time.Time {
	if r.IsRelative() {
		return StartOfDay(now).AddDate(0, r.OffsetMonths, r.OffsetDays)
	}
	t, err := ParseDateKey(string(r.Key), now.Location())
	if err != nil {
		return time.Time{}
	}
	return t
}

// ResolveKey is Resolve followed by FormatDate.
func (r DateRef) ResolveKey(now time.Time) DateKey {
	return FormatDate(r.Resolve(now))
}

// ResolveDateTime is Resolve keeping the time of day of now.
func (r DateRef) ResolveDateTime(now time.Time) time.Time {
	day := r.Resolve(now)
	if day.IsZero() {
		return day
	}
	return day.Add(now.Sub(StartOfDay(now)))
}

// Validate checks absolute keys and offset magnitudes.
func (r DateRef) Validate() error {
	if !r.IsRelative() {
		if !r.Key.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidDate, r.Key)
		}
		return nil
	}
	days := r.OffsetDays + r.OffsetMonths*31
	if days > MaxOffsetDays || days < -MaxOffsetDays {
		return fmt.Errorf("%w: offset of %d months %d days is out of range", ErrInvalidDate, r.OffsetMonths, r.OffsetDays)
	}
	return nil
}

func (r DateRef) String() string {
	if !r.IsRelative() {
		return string(r.Key)
	}
	return fmt.Sprintf("today%+dm%+dd", r.OffsetMonths, r.OffsetDays)
}
