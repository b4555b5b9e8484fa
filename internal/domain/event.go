package domain

import (
	"fmt"
	"strings"
)

// EventKind is a widget lifecycle hook
type EventKind string

const (
	EventRender EventKind = "render" // a day cell is being drawn
	EventChange EventKind = "change" // selected value changed
	EventClose  EventKind = "close"  // popup closed
	EventReady  EventKind = "ready"  // instance finished initialising
)

// ParseEventKind validates a hook name.
func ParseEventKind(s string) (EventKind, error) {
	switch k := EventKind(strings.ToLower(strings.TrimSpace(s))); k {
	case EventRender, EventChange, EventClose, EventReady:
		return k, nil
	default:
		return "", fmt.Errorf("unknown event %q", s)
	}
}

// DayState is the render decision for one calendar day
type DayState struct {
	Date        DateKey
	Holiday     bool
	HolidayName string
	Disabled    bool // blacked out
	InRange     bool // within min/max bounds
}

// Selectable reports whether the user may pick the day.
func (d DayState) Selectable() bool {
	return d.InRange && !d.Disabled
}

// State is a short label used for logging and metrics.
func (d DayState) State() string {
	switch {
	case !d.InRange:
		return "out_of_range"
	case d.Disabled:
		return "disabled"
	case d.Holiday:
		return "holiday"
	default:
		return "selectable"
	}
}
