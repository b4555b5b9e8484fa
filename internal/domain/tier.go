package domain

import (
	"fmt"
	"strings"
	"time"
)

// TierKind discriminates time tier predicates
type TierKind int

const (
	TierProximity TierKind = iota + 1 // date is FromDays..ToDays after today
	TierWeekday                       // date falls on Weekday
	TierDefault                       // always matches
)

func (k TierKind) String() string {
	switch k {
	case TierProximity:
		return "proximity"
	case TierWeekday:
		return "weekday"
	case TierDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParseTierKind is the inverse of TierKind.String.
func ParseTierKind(s string) (TierKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "proximity":
		return TierProximity, nil
	case "weekday":
		return TierWeekday, nil
	case "default":
		return TierDefault, nil
	default:
		return 0, fmt.Errorf("%w: unknown tier kind %q", ErrInvalidTiers, s)
	}
}

// TimeTier maps dates matching its predicate to a time window
type TimeTier struct {
	Name     string
	Kind     TierKind
	FromDays int
	ToDays   int
	Weekday  time.Weekday
	Window   TimeWindow
}

// ProximityTier matches dates from..to calendar days after today (inclusive).
func ProximityTier(name string, from, to int, w TimeWindow) TimeTier {
	return TimeTier{Name: name, Kind: TierProximity, FromDays: from, ToDays: to, Window: w}
}

// WeekdayTier matches dates falling on wd.
func WeekdayTier(name string, wd time.Weekday, w TimeWindow) TimeTier {
	return TimeTier{Name: name, Kind: TierWeekday, Weekday: wd, Window: w}
}

// DefaultTier matches every date.
func DefaultTier(name string, w TimeWindow) TimeTier {
	return TimeTier{Name: name, Kind: TierDefault, Window: w}
}

// DefaultTiers is the standard policy: the next three days, then Sundays, then everything else.
func DefaultTiers() []TimeTier {
	return []TimeTier{
		ProximityTier("proximity", ProximityFromDays, ProximityToDays, ProximityWindow),
		WeekdayTier("sunday", time.Sunday, SundayWindow),
		DefaultTier("default", RegularWindow),
	}
}

// Matches evaluates the tier predicate for date as seen at now.
func (t TimeTier) Matches(date, now time.Time) bool {
	switch t.Kind {
	case TierProximity:
		days := DaysBetween(now, date)
		return days >= t.FromDays && days <= t.ToDays
	case TierWeekday:
		return date.Weekday() == t.Weekday
	case TierDefault:
		return true
	default:
		return false
	}
}

// ResolveWindow returns the first tier matching date. Relative days are
// computed from now on every call. ok is false only for tier lists that
// fail ValidateTiers.
func ResolveWindow(date, now time.Time, tiers []TimeTier) (tier TimeTier, ok bool) {
	for _, t := range tiers {
		if t.Matches(date, now) {
			return t, true
		}
	}
	return TimeTier{}, false
}

// ValidateTiers requires a non-empty list whose last tier always matches,
// and valid windows and bounds everywhere.
func ValidateTiers(tiers []TimeTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: empty tier list", ErrInvalidTiers)
	}
	for i, t := range tiers {
		if err := t.Window.Validate(); err != nil {
			return fmt.Errorf("%w: tier %d (%s): %v", ErrInvalidTiers, i, t.Name, err)
		}
		switch t.Kind {
		case TierProximity:
			if t.FromDays > t.ToDays {
				return fmt.Errorf("%w: tier %d (%s): from %d > to %d", ErrInvalidTiers, i, t.Name, t.FromDays, t.ToDays)
			}
		case TierWeekday:
			if t.Weekday < time.Sunday || t.Weekday > time.Saturday {
				return fmt.Errorf("%w: tier %d (%s): bad weekday %d", ErrInvalidTiers, i, t.Name, t.Weekday)
			}
		case TierDefault:
		default:
			return fmt.Errorf("%w: tier %d (%s): unknown kind", ErrInvalidTiers, i, t.Name)
		}
	}
	if last := tiers[len(tiers)-1]; last.Kind != TierDefault {
		return fmt.Errorf("%w: last tier %q must be a default tier", ErrInvalidTiers, last.Name)
	}
	return nil
}
