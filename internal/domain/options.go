package domain

import (
	"iter"

	"github.com/m04kA/SMC-PickerService/pkg/types"
)

// Options yields every time from w.Min to w.Max inclusive, stepping by
// granularity minutes. The sequence is restartable and yields nothing when
// Min > Max. Non-positive granularity is treated as one minute.
func Options(w TimeWindow, granularity int) iter.Seq[types.TimeString] {
	if granularity <= 0 {
		granularity = DefaultOptionGranularityMinutes
	}
	return func(yield func(types.TimeString) bool) {
		if w.Min.IsAfter(w.Max) {
			return
		}
		for cur := w.Min; !cur.IsAfter(w.Max); {
			if !yield(cur) {
				return
			}
			next, err := cur.AddMinutes(granularity)
			if err != nil {
				// past 23:59
				return
			}
			cur = next
		}
	}
}

// BuildOptions collects Options into HH:MM strings.
func BuildOptions(w TimeWindow, granularity int) []string {
	result := make([]string, 0)
	for t := range Options(w, granularity) {
		result = append(result, t.String())
	}
	return result
}
