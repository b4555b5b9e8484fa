package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Capability is a bit set of optional picker behaviours
type Capability uint16

const (
	CapLocalized  Capability = 1 << iota // locale + display format
	CapRanged                            // min/max selectable dates
	CapHolidays                          // holiday highlighting
	CapBlackout                          // blackout rules disable dates
	CapTime                              // time of day selection with a static window
	CapTimeOnly                          // time selection without a calendar
	CapTieredTime                        // widget time window follows the tier policy
	CapSyncedTime                        // a separate time input follows the tier policy
	CapTimeList                          // a separate option list follows the tier policy
)

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapLocalized, "localized"},
	{CapRanged, "ranged"},
	{CapHolidays, "holidays"},
	{CapBlackout, "blackout"},
	{CapTime, "time"},
	{CapTimeOnly, "time_only"},
	{CapTieredTime, "tiered_time"},
	{CapSyncedTime, "synced_time"},
	{CapTimeList, "time_list"},
}

// Has reports whether every flag in f is set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// Names lists the set flags in declaration order.
func (c Capability) Names() []string {
	names := make([]string, 0)
	for _, cn := range capabilityNames {
		if c.Has(cn.cap) {
			names = append(names, cn.name)
		}
	}
	return names
}

func (c Capability) String() string {
	if c == 0 {
		return "plain"
	}
	return strings.Join(c.Names(), "|")
}

// ParseCapability maps a flag name to its bit.
func ParseCapability(name string) (Capability, error) {
	for _, cn := range capabilityNames {
		if cn.name == strings.ToLower(strings.TrimSpace(name)) {
			return cn.cap, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown capability %q", ErrInvalidConfig, name)
}

// ControlKind identifies the UI element bound to a picker
type ControlKind string

const (
	ControlTimeInput  ControlKind = "input"  // <input type="time">, receives min/max
	ControlOptionList ControlKind = "select" // <select>, receives an option list
)

// BoundControl is a UI element outside the widget, addressed by a stable id
type BoundControl struct {
	ID   string
	Kind ControlKind
}

// PickerConfig is the immutable configuration of one widget instance
type PickerConfig struct {
	ID           string // widget mount point, e.g. "js-datepicker-4"
	Capabilities Capability
	Locale       string
	DateFormat   string
	DefaultDate  *DateRef
	MinDate      *DateRef
	MaxDate      *DateRef
	Blackout     []BlackoutSpec
	TimeWindow   TimeWindow // static window for CapTime pickers
	Use24Hour    bool
	Control      *BoundControl

	OptionGranularityMinutes int
}

// Has reports whether the picker enables all flags in f.
func (c *PickerConfig) Has(f Capability) bool {
	return c.Capabilities.Has(f)
}

// NeedsHolidays reports whether the picker can only be built once holidays are loaded.
func (c *PickerConfig) NeedsHolidays() bool {
	return c.Has(CapHolidays)
}

// Granularity returns the option list step in minutes.
func (c *PickerConfig) Granularity() int {
	if c.OptionGranularityMinutes <= 0 {
		return DefaultOptionGranularityMinutes
	}
	return c.OptionGranularityMinutes
}

// Bounds resolves the selectable range as of now. Nil means unbounded.
func (c *PickerConfig) Bounds(now time.Time) (min, max *time.Time) {
	if !c.Has(CapRanged) {
		return nil, nil
	}
	if c.MinDate != nil {
		t := c.MinDate.Resolve(now)
		min = &t
	}
	if c.MaxDate != nil {
		t := c.MaxDate.Resolve(now)
		max = &t
	}
	return min, max
}

// Validate checks the configuration as of now and fails fast on
// inconsistencies that would otherwise silently produce wrong decisions.
func (c *PickerConfig) Validate(now time.Time) error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidConfig)
	}

	if c.Has(CapLocalized) {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("%w: picker %s: locale %q: %v", ErrInvalidConfig, c.ID, c.Locale, err)
		}
	}

	for name, ref := range map[string]*DateRef{"default_date": c.DefaultDate, "min_date": c.MinDate, "max_date": c.MaxDate} {
		if ref == nil {
			continue
		}
		if err := ref.Validate(); err != nil {
			return fmt.Errorf("%w: picker %s: %s: %v", ErrInvalidConfig, c.ID, name, err)
		}
	}

	if c.Has(CapRanged) {
		if c.MinDate == nil && c.MaxDate == nil {
			return fmt.Errorf("%w: picker %s: ranged picker needs min_date or max_date", ErrInvalidConfig, c.ID)
		}
		if min, max := c.Bounds(now); min != nil && max != nil && min.After(*max) {
			return fmt.Errorf("%w: picker %s: min_date %s is after max_date %s",
				ErrInvalidConfig, c.ID, FormatDate(*min), FormatDate(*max))
		}
	}

	if c.Has(CapBlackout) {
		if len(c.Blackout) == 0 {
			return fmt.Errorf("%w: picker %s: blackout enabled without rules", ErrInvalidConfig, c.ID)
		}
		for i, spec := range c.Blackout {
			if err := spec.Validate(now); err != nil {
				return fmt.Errorf("%w: picker %s: rule %d: %v", ErrInvalidConfig, c.ID, i, err)
			}
		}
	}

	if c.Has(CapTime) && !c.TimeWindow.IsZero() {
		if err := c.TimeWindow.Validate(); err != nil {
			return fmt.Errorf("%w: picker %s: %v", ErrInvalidConfig, c.ID, err)
		}
	}

	if c.Has(CapTieredTime) && !c.Has(CapTime) {
		return fmt.Errorf("%w: picker %s: tiered_time requires time", ErrInvalidConfig, c.ID)
	}

	if c.Has(CapTimeOnly) && !c.Has(CapTime) {
		return fmt.Errorf("%w: picker %s: time_only requires time", ErrInvalidConfig, c.ID)
	}

	if c.Has(CapSyncedTime) && c.Has(CapTimeList) {
		return fmt.Errorf("%w: picker %s: synced_time and time_list are exclusive", ErrInvalidConfig, c.ID)
	}

	if err := c.validateControl(); err != nil {
		return err
	}

	if c.OptionGranularityMinutes < 0 {
		return fmt.Errorf("%w: picker %s: negative option granularity", ErrInvalidConfig, c.ID)
	}

	return nil
}

func (c *PickerConfig) validateControl() error {
	var want ControlKind
	switch {
	case c.Has(CapSyncedTime):
		want = ControlTimeInput
	case c.Has(CapTimeList):
		want = ControlOptionList
	default:
		return nil
	}
	if c.Control == nil || strings.TrimSpace(c.Control.ID) == "" {
		return fmt.Errorf("%w: picker %s: a bound %s control is required", ErrInvalidConfig, c.ID, want)
	}
	if c.Control.Kind != want {
		return fmt.Errorf("%w: picker %s: control %s must be %q, got %q",
			ErrInvalidConfig, c.ID, c.Control.ID, want, c.Control.Kind)
	}
	return nil
}
