package domain

import (
	"sort"
	"time"
)

// Holiday is a single public holiday entry
type Holiday struct {
	Date DateKey
	Name string
}

// HolidaySet is an immutable set of holidays for one calendar year.
// The zero value is an empty set, which is the fail-open state: no holidays known.
type HolidaySet struct {
	year  int
	names map[DateKey]string
}

// NewHolidaySet builds a set from date keys to holiday names. The map is copied.
func NewHolidaySet(year int, names map[DateKey]string) HolidaySet {
	copied := make(map[DateKey]string, len(names))
	for k, v := range names {
		copied[k] = v
	}
	return HolidaySet{year: year, names: copied}
}

// EmptyHolidaySet returns a set with no holidays for the given year.
func EmptyHolidaySet(year int) HolidaySet {
	return HolidaySet{year: year}
}

// Year returns the calendar year the set was loaded for.
func (h HolidaySet) Year() int {
	return h.year
}

// Len returns the number of holidays in the set.
func (h HolidaySet) Len() int {
	return len(h.names)
}

// IsEmpty reports whether no holidays are known.
func (h HolidaySet) IsEmpty() bool {
	return len(h.names) == 0
}

// Contains reports whether the civil date of t is a holiday.
func (h HolidaySet) Contains(t time.Time) bool {
	return h.ContainsKey(FormatDate(t))
}

// ContainsKey reports whether key is a holiday.
func (h HolidaySet) ContainsKey(key DateKey) bool {
	_, ok := h.names[key]
	return ok
}

// Name returns the holiday name for the civil date of t, or "".
func (h HolidaySet) Name(t time.Time) string {
	return h.names[FormatDate(t)]
}

// Holidays returns all holidays sorted by date.
func (h HolidaySet) Holidays() []Holiday {
	result := make([]Holiday, 0, len(h.names))
	for k, name := range h.names {
		result = append(result, Holiday{Date: k, Name: name})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}
