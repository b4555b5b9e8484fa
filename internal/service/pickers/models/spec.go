package models

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

// Request модели: конфигурация пикеров в виде, пригодном для TOML и JSON (jsonb в БД)

// PickerSpec описание одного экземпляра виджета
type PickerSpec struct {
	ID                       string             `toml:"id" json:"id"`
	Capabilities             []string           `toml:"capabilities" json:"capabilities"`
	Locale                   string             `toml:"locale" json:"locale,omitempty"`
	DateFormat               string             `toml:"date_format" json:"dateFormat,omitempty"`
	DefaultDate              *DateRefSpec       `toml:"default_date" json:"defaultDate,omitempty"`
	MinDate                  *DateRefSpec       `toml:"min_date" json:"minDate,omitempty"`
	MaxDate                  *DateRefSpec       `toml:"max_date" json:"maxDate,omitempty"`
	Blackout                 []BlackoutRuleSpec `toml:"blackout" json:"blackout,omitempty"`
	MinTime                  string             `toml:"min_time" json:"minTime,omitempty"`
	MaxTime                  string             `toml:"max_time" json:"maxTime,omitempty"`
	Time24hr                 bool               `toml:"time_24hr" json:"time24hr,omitempty"`
	Control                  *ControlSpec       `toml:"control" json:"control,omitempty"`
	OptionGranularityMinutes int                `toml:"option_granularity_minutes" json:"optionGranularityMinutes,omitempty"`
}

// DateRefSpec абсолютная дата (date) или смещение от сегодняшнего дня
type DateRefSpec struct {
	Date         string `toml:"date" json:"date,omitempty"`
	OffsetDays   int    `toml:"offset_days" json:"offsetDays,omitempty"`
	OffsetMonths int    `toml:"offset_months" json:"offsetMonths,omitempty"`
}

// BlackoutRuleSpec правило блокировки дат
// kind: date | range | weekday
type BlackoutRuleSpec struct {
	Kind    string       `toml:"kind" json:"kind"`
	Date    *DateRefSpec `toml:"date" json:"date,omitempty"`
	From    *DateRefSpec `toml:"from" json:"from,omitempty"`
	To      *DateRefSpec `toml:"to" json:"to,omitempty"`
	Weekday string       `toml:"weekday" json:"weekday,omitempty"`
}

// ControlSpec связанный элемент управления временем
// kind: input | select
type ControlSpec struct {
	ID   string `toml:"id" json:"id"`
	Kind string `toml:"kind" json:"kind"`
}

// TimeTierSpec уровень политики временных окон
// kind: proximity | weekday | default
type TimeTierSpec struct {
	Name     string `toml:"name" json:"name"`
	Kind     string `toml:"kind" json:"kind"`
	FromDays int    `toml:"from_days" json:"fromDays,omitempty"`
	ToDays   int    `toml:"to_days" json:"toDays,omitempty"`
	Weekday  string `toml:"weekday" json:"weekday,omitempty"`
	MinTime  string `toml:"min_time" json:"minTime"`
	MaxTime  string `toml:"max_time" json:"maxTime"`
}

// Методы конвертации

// ToDomain конвертирует описание пикера в domain модель
// Проверяет только формат полей; согласованность проверяет domain.PickerConfig.Validate
func (s *PickerSpec) ToDomain() (domain.PickerConfig, error) {
	cfg := domain.PickerConfig{
		ID:                       strings.TrimSpace(s.ID),
		DateFormat:               s.DateFormat,
		Use24Hour:                s.Time24hr,
		OptionGranularityMinutes: s.OptionGranularityMinutes,
	}

	for _, name := range s.Capabilities {
		c, err := domain.ParseCapability(name)
		if err != nil {
			return domain.PickerConfig{}, fmt.Errorf("picker %s: %w", s.ID, err)
		}
		cfg.Capabilities |= c
	}

	if s.Locale != "" {
		tag, err := language.Parse(s.Locale)
		if err != nil {
			return domain.PickerConfig{}, fmt.Errorf("%w: picker %s: locale %q: %v", domain.ErrInvalidConfig, s.ID, s.Locale, err)
		}
		cfg.Locale = tag.String()
	}

	cfg.DefaultDate = s.DefaultDate.toDomain()
	cfg.MinDate = s.MinDate.toDomain()
	cfg.MaxDate = s.MaxDate.toDomain()

	for i, r := range s.Blackout {
		rule, err := r.ToDomain()
		if err != nil {
			return domain.PickerConfig{}, fmt.Errorf("%w: picker %s: blackout %d: %v", domain.ErrInvalidConfig, s.ID, i, err)
		}
		cfg.Blackout = append(cfg.Blackout, rule)
	}

	if s.MinTime != "" || s.MaxTime != "" {
		w, err := domain.NewTimeWindow(s.MinTime, s.MaxTime)
		if err != nil {
			return domain.PickerConfig{}, fmt.Errorf("%w: picker %s: %v", domain.ErrInvalidConfig, s.ID, err)
		}
		cfg.TimeWindow = w
	}

	if s.Control != nil {
		cfg.Control = &domain.BoundControl{
			ID:   strings.TrimSpace(s.Control.ID),
			Kind: domain.ControlKind(strings.ToLower(strings.TrimSpace(s.Control.Kind))),
		}
	}

	return cfg, nil
}

func (s *DateRefSpec) toDomain() *domain.DateRef {
	if s == nil {
		return nil
	}
	var ref domain.DateRef
	if s.Date != "" {
		ref = domain.AbsoluteDate(domain.DateKey(s.Date))
	} else {
		ref = domain.RelativeDate(s.OffsetDays, s.OffsetMonths)
	}
	return &ref
}

// ToDomain конвертирует правило блокировки в domain модель
func (s *BlackoutRuleSpec) ToDomain() (domain.BlackoutSpec, error) {
	kind, err := domain.ParseRuleKind(s.Kind)
	if err != nil {
		return domain.BlackoutSpec{}, err
	}

	spec := domain.BlackoutSpec{Kind: kind}
	switch kind {
	case domain.RuleExactDate:
		if s.Date == nil {
			return domain.BlackoutSpec{}, fmt.Errorf("%w: date rule requires date", domain.ErrInvalidRule)
		}
		spec.Date = *s.Date.toDomain()
	case domain.RuleRange:
		if s.From == nil || s.To == nil {
			return domain.BlackoutSpec{}, fmt.Errorf("%w: range rule requires from and to", domain.ErrInvalidRule)
		}
		spec.From = *s.From.toDomain()
		spec.To = *s.To.toDomain()
	case domain.RuleWeekday:
		wd, err := ParseWeekday(s.Weekday)
		if err != nil {
			return domain.BlackoutSpec{}, fmt.Errorf("%w: %v", domain.ErrInvalidRule, err)
		}
		spec.Weekday = wd
	}
	return spec, nil
}

// ToDomain конвертирует уровень политики в domain модель
func (s *TimeTierSpec) ToDomain() (domain.TimeTier, error) {
	kind, err := domain.ParseTierKind(s.Kind)
	if err != nil {
		return domain.TimeTier{}, err
	}

	window, err := domain.NewTimeWindow(s.MinTime, s.MaxTime)
	if err != nil {
		return domain.TimeTier{}, fmt.Errorf("%w: tier %s: %v", domain.ErrInvalidTiers, s.Name, err)
	}

	switch kind {
	case domain.TierProximity:
		return domain.ProximityTier(s.Name, s.FromDays, s.ToDays, window), nil
	case domain.TierWeekday:
		wd, err := ParseWeekday(s.Weekday)
		if err != nil {
			return domain.TimeTier{}, fmt.Errorf("%w: tier %s: %v", domain.ErrInvalidTiers, s.Name, err)
		}
		return domain.WeekdayTier(s.Name, wd, window), nil
	default:
		return domain.DefaultTier(s.Name, window), nil
	}
}

// TiersToDomain конвертирует и проверяет список уровней
// Пустой список означает политику по умолчанию
func TiersToDomain(specs []TimeTierSpec) ([]domain.TimeTier, error) {
	if len(specs) == 0 {
		return domain.DefaultTiers(), nil
	}
	tiers := make([]domain.TimeTier, 0, len(specs))
	for i := range specs {
		tier, err := specs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	if err := domain.ValidateTiers(tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// ParseWeekday принимает полное или сокращенное английское название дня недели
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || name == full[:3] {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
