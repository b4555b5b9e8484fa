package pickers

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PickerService/internal/domain"
	"github.com/m04kA/SMC-PickerService/internal/service/pickers/models"
)

// Instance сконфигурированный экземпляр виджета
// После создания состояние не меняется и читается из разных горутин без блокировок
type Instance struct {
	handle   uuid.UUID
	config   domain.PickerConfig
	holidays domain.HolidaySet
	tiers    []domain.TimeTier
	clock    TimeProvider
	loc      *time.Location
}

// Handle уникальный идентификатор экземпляра в рамках процесса
func (i *Instance) Handle() uuid.UUID {
	return i.handle
}

// ID точка монтирования виджета
func (i *Instance) ID() string {
	return i.config.ID
}

// Config конфигурация экземпляра
func (i *Instance) Config() domain.PickerConfig {
	return i.config
}

// Location часовой пояс календаря
func (i *Instance) Location() *time.Location {
	return i.loc
}

// Now текущее время в часовом поясе календаря
func (i *Instance) Now() time.Time {
	return i.clock.Now().In(i.loc)
}

// DecorateDay решение об отрисовке одного дня (хук render)
// Относительные правила разрешаются на момент вызова
func (i *Instance) DecorateDay(date time.Time) domain.DayState {
	now := i.Now()
	return i.decorate(date, now, i.resolveBlackout(now))
}

// DecorateDays решения для диапазона [from, to] включительно
// Все дни оцениваются относительно одного момента времени; при from > to результат пуст
func (i *Instance) DecorateDays(from, to time.Time) []domain.DayState {
	from = domain.StartOfDay(from.In(i.loc))
	to = domain.StartOfDay(to.In(i.loc))
	if from.After(to) {
		return []domain.DayState{}
	}

	now := i.Now()
	rules := i.resolveBlackout(now)

	days := make([]domain.DayState, 0, domain.DaysBetween(from, to)+1)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		days = append(days, i.decorate(day, now, rules))
	}
	return days
}

func (i *Instance) resolveBlackout(now time.Time) []domain.BlackoutRule {
	if !i.config.Has(domain.CapBlackout) {
		return nil
	}
	return domain.ResolveBlackout(i.config.Blackout, now)
}

func (i *Instance) decorate(date, now time.Time, rules []domain.BlackoutRule) domain.DayState {
	day := domain.StartOfDay(date.In(i.loc))
	state := domain.DayState{
		Date:    domain.FormatDate(day),
		InRange: true,
	}

	if i.config.Has(domain.CapHolidays) && i.holidays.Contains(day) {
		state.Holiday = true
		state.HolidayName = i.holidays.Name(day)
	}

	if len(rules) > 0 {
		state.Disabled = domain.IsBlackedOut(day, rules)
	}

	min, max := i.config.Bounds(now)
	if min != nil && day.Before(*min) {
		state.InRange = false
	}
	if max != nil && day.After(*max) {
		state.InRange = false
	}

	return state
}

// HandleEvent реакция на хуки change, close и ready
// Без выбранной даты или без связанного элемента на странице событие ничего не меняет
func (i *Instance) HandleEvent(event domain.EventKind, selected []time.Time, controls ControlSet) models.EventResult {
	result := models.EventResult{
		PickerID: i.config.ID,
		Event:    string(event),
	}

	if event == domain.EventRender || len(selected) == 0 {
		return result
	}

	now := i.Now()
	date := domain.StartOfDay(selected[0].In(i.loc))
	result.Date = domain.FormatDate(date).String()

	tier, ok := domain.ResolveWindow(date, now, i.tiers)
	if !ok {
		return result
	}
	window := models.TimeRange{Min: tier.Window.Min.String(), Max: tier.Window.Max.String()}

	if event == domain.EventChange && i.config.Has(domain.CapTieredTime) {
		result.WidgetTime = &window
	}

	if ctrl := i.config.Control; ctrl != nil && controls.Has(ctrl.ID) {
		switch {
		case i.config.Has(domain.CapSyncedTime):
			result.Control = &models.ControlUpdate{
				ID:    ctrl.ID,
				Kind:  string(ctrl.Kind),
				Range: &window,
			}
		case i.config.Has(domain.CapTimeList):
			result.Control = &models.ControlUpdate{
				ID:      ctrl.ID,
				Kind:    string(ctrl.Kind),
				Options: domain.BuildOptions(tier.Window, i.config.Granularity()),
				Clear:   true,
			}
		}
	}

	if result.Applied() {
		result.Tier = tier.Name
	}
	return result
}

// Options объект настроек виджета на текущий момент
func (i *Instance) Options() models.WidgetOptions {
	now := i.Now()
	cfg := i.config

	opts := models.WidgetOptions{
		ID:                cfg.ID,
		Handle:            i.handle.String(),
		Capabilities:      cfg.Capabilities.Names(),
		Locale:            cfg.Locale,
		DateFormat:        cfg.DateFormat,
		EnableTime:        cfg.Has(domain.CapTime),
		NoCalendar:        cfg.Has(domain.CapTimeOnly),
		Time24hr:          cfg.Use24Hour,
		HighlightHolidays: cfg.Has(domain.CapHolidays),
		Hooks:             i.hooks(),
	}

	// Виджету только со временем нужна дата со временем суток, иначе он покажет 00:00
	if cfg.DefaultDate != nil {
		if cfg.Has(domain.CapTimeOnly) {
			opts.DefaultDate = cfg.DefaultDate.ResolveDateTime(now).Format(domain.DateTimeFormat)
		} else {
			opts.DefaultDate = cfg.DefaultDate.ResolveKey(now).String()
		}
	}

	min, max := cfg.Bounds(now)
	if min != nil {
		opts.MinDate = domain.FormatDate(*min).String()
	}
	if max != nil {
		opts.MaxDate = domain.FormatDate(*max).String()
	}

	for _, rule := range i.resolveBlackout(now) {
		opts.Disable = append(opts.Disable, disableEntry(rule))
	}

	if cfg.Has(domain.CapTime) && !cfg.TimeWindow.IsZero() {
		opts.MinTime = cfg.TimeWindow.Min.String()
		opts.MaxTime = cfg.TimeWindow.Max.String()
	}

	if cfg.Control != nil {
		opts.TimeControl = &models.ControlBinding{ID: cfg.Control.ID, Kind: string(cfg.Control.Kind)}
		if cfg.Has(domain.CapTimeList) {
			opts.TimeControl.Options = domain.BuildOptions(domain.FullDayWindow, cfg.Granularity())
		}
	}

	return opts
}

// hooks список событий, которые виджет должен пересылать
func (i *Instance) hooks() []string {
	hooks := make([]string, 0, 4)
	if i.config.Has(domain.CapHolidays) || i.config.Has(domain.CapBlackout) {
		hooks = append(hooks, string(domain.EventRender))
	}
	synced := i.config.Has(domain.CapSyncedTime) || i.config.Has(domain.CapTimeList)
	if synced || i.config.Has(domain.CapTieredTime) {
		hooks = append(hooks, string(domain.EventChange))
	}
	if synced {
		hooks = append(hooks, string(domain.EventClose), string(domain.EventReady))
	}
	return hooks
}

func disableEntry(rule domain.BlackoutRule) models.DisableEntry {
	switch rule.Kind {
	case domain.RuleExactDate:
		return models.DisableEntry{Date: rule.Date.String()}
	case domain.RuleRange:
		return models.DisableEntry{From: rule.From.String(), To: rule.To.String()}
	default:
		wd := int(rule.Weekday)
		return models.DisableEntry{Weekday: &wd}
	}
}
