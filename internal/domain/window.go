package domain

import (
	"fmt"

	"github.com/m04kA/SMC-PickerService/pkg/types"
)

// TimeWindow is a time-of-day range, both ends inclusive
type TimeWindow struct {
	Min types.TimeString
	Max types.TimeString
}

// NewTimeWindow parses both ends and validates ordering.
func NewTimeWindow(min, max string) (TimeWindow, error) {
	lo, err := types.NewTimeStringFromString(min)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: min: %v", ErrInvalidWindow, err)
	}
	hi, err := types.NewTimeStringFromString(max)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: max: %v", ErrInvalidWindow, err)
	}
	w := TimeWindow{Min: lo, Max: hi}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

// Validate checks both ends are well-formed and Min <= Max.
func (w TimeWindow) Validate() error {
	if _, err := types.NewTimeStringFromString(w.Min.String()); err != nil {
		return fmt.Errorf("%w: min: %v", ErrInvalidWindow, err)
	}
	if _, err := types.NewTimeStringFromString(w.Max.String()); err != nil {
		return fmt.Errorf("%w: max: %v", ErrInvalidWindow, err)
	}
	if w.Min.IsAfter(w.Max) {
		return fmt.Errorf("%w: %s is after %s", ErrInvalidWindow, w.Min, w.Max)
	}
	return nil
}

// IsZero reports whether the window was never set.
func (w TimeWindow) IsZero() bool {
	return w.Min.IsZero() && w.Max.IsZero()
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Min) && !t.IsAfter(w.Max)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Min, w.Max)
}
