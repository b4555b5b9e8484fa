package domain

import "time"

var tokyo = time.FixedZone("Asia/Tokyo", 9*60*60)

// d is a test helper to construct civil dates in the calendar location.
func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, tokyo)
}

// everyDay calls fn for each date in [from, to].
func everyDay(from, to time.Time, fn func(time.Time)) {
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		fn(cur)
	}
}
