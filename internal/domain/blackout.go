package domain

import (
	"fmt"
	"strings"
	"time"
)

// RuleKind discriminates blackout rule variants
type RuleKind int

const (
	RuleExactDate RuleKind = iota + 1
	RuleRange
	RuleWeekday
)

func (k RuleKind) String() string {
	switch k {
	case RuleExactDate:
		return "date"
	case RuleRange:
		return "range"
	case RuleWeekday:
		return "weekday"
	default:
		return "unknown"
	}
}

// ParseRuleKind is the inverse of RuleKind.String.
func ParseRuleKind(s string) (RuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return RuleExactDate, nil
	case "range":
		return RuleRange, nil
	case "weekday":
		return RuleWeekday, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidRule, s)
	}
}

// BlackoutRule marks calendar dates unselectable.
// Only the fields relevant to Kind are meaningful.
type BlackoutRule struct {
	Kind    RuleKind
	Date    DateKey // RuleExactDate
	From    DateKey // RuleRange, inclusive
	To      DateKey // RuleRange, inclusive
	Weekday time.Weekday
}

// ExactDate blacks out a single date.
func ExactDate(key DateKey) BlackoutRule {
	return BlackoutRule{Kind: RuleExactDate, Date: key}
}

// DateRange blacks out every date in [from, to].
func DateRange(from, to DateKey) BlackoutRule {
	return BlackoutRule{Kind: RuleRange, From: from, To: to}
}

// OnWeekday blacks out every date falling on wd.
func OnWeekday(wd time.Weekday) BlackoutRule {
	return BlackoutRule{Kind: RuleWeekday, Weekday: wd}
}

// Matches reports whether the civil date of t is covered by the rule.
func (r BlackoutRule) Matches(t time.Time) bool {
	switch r.Kind {
	case RuleExactDate:
		return FormatDate(t) == r.Date
	case RuleRange:
		key := FormatDate(t)
		return r.From <= key && key <= r.To
	case RuleWeekday:
		return t.Weekday() == r.Weekday
	default:
		return false
	}
}

// Validate checks keys and range ordering.
func (r BlackoutRule) Validate() error {
	switch r.Kind {
	case RuleExactDate:
		if !r.Date.Valid() {
			return fmt.Errorf("%w: bad date %q", ErrInvalidRule, r.Date)
		}
	case RuleRange:
		if !r.From.Valid() || !r.To.Valid() {
			return fmt.Errorf("%w: bad range %q..%q", ErrInvalidRule, r.From, r.To)
		}
		if r.From > r.To {
			return fmt.Errorf("%w: inverted range %q..%q", ErrInvalidRule, r.From, r.To)
		}
	case RuleWeekday:
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
			return fmt.Errorf("%w: bad weekday %d", ErrInvalidRule, r.Weekday)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidRule, r.Kind)
	}
	return nil
}

func (r BlackoutRule) String() string {
	switch r.Kind {
	case RuleExactDate:
		return string(r.Date)
	case RuleRange:
		return fmt.Sprintf("%s..%s", r.From, r.To)
	case RuleWeekday:
		return r.Weekday.String()
	default:
		return "unknown"
	}
}

// IsBlackedOut reports whether any rule matches the civil date of t.
func IsBlackedOut(t time.Time, rules []BlackoutRule) bool {
	for _, r := range rules {
		if r.Matches(t) {
			return true
		}
	}
	return false
}

// BlackoutSpec is the configured form of a rule: its dates may be relative
// to today, so it must be resolved with the current clock before matching.
type BlackoutSpec struct {
	Kind    RuleKind
	Date    DateRef
	From    DateRef
	To      DateRef
	Weekday time.Weekday
}

// Resolve turns the spec into a concrete rule as of now.
func (s BlackoutSpec) Resolve(now time.Time) BlackoutRule {
	switch s.Kind {
	case RuleExactDate:
		return ExactDate(s.Date.ResolveKey(now))
	case RuleRange:
		return DateRange(s.From.ResolveKey(now), s.To.ResolveKey(now))
	case RuleWeekday:
		return OnWeekday(s.Weekday)
	default:
		return BlackoutRule{Kind: s.Kind}
	}
}

// Validate checks the spec's date refs and the resolved rule as of now.
func (s BlackoutSpec) Validate(now time.Time) error {
	switch s.Kind {
	case RuleExactDate:
		if err := s.Date.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRule, err)
		}
	case RuleRange:
		if err := s.From.Validate(); err != nil {
			return fmt.Errorf("%w: from: %v", ErrInvalidRule, err)
		}
		if err := s.To.Validate(); err != nil {
			return fmt.Errorf("%w: to: %v", ErrInvalidRule, err)
		}
	}
	return s.Resolve(now).Validate()
}

// ResolveBlackout resolves every spec as of now.
func ResolveBlackout(specs []BlackoutSpec, now time.Time) []BlackoutRule {
	rules := make([]BlackoutRule, len(specs))
	for i, s := range specs {
		rules[i] = s.Resolve(now)
	}
	return rules
}
