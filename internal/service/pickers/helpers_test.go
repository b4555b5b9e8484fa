package pickers

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

var tokyo = time.FixedZone("Asia/Tokyo", 9*60*60)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, tokyo)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(dur time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(dur)
}

// staticLoader returns a fixed set immediately.
type staticLoader struct {
	names map[domain.DateKey]string
}

func (l staticLoader) Load(_ context.Context, year int) domain.HolidaySet {
	return domain.NewHolidaySet(year, l.names)
}

// gatedLoader blocks until release is closed or ctx is done.
type gatedLoader struct {
	started chan struct{}
	release chan struct{}
	names   map[domain.DateKey]string
}

func newGatedLoader(names map[domain.DateKey]string) *gatedLoader {
	return &gatedLoader{started: make(chan struct{}), release: make(chan struct{}), names: names}
}

func (l *gatedLoader) Load(ctx context.Context, year int) domain.HolidaySet {
	close(l.started)
	select {
	case <-l.release:
		return domain.NewHolidaySet(year, l.names)
	case <-ctx.Done():
		return domain.EmptyHolidaySet(year)
	}
}

var springHolidays = map[domain.DateKey]string{
	"2024-03-20": "春分の日",
	"2024-04-29": "昭和の日",
}

// friday is 2024-03-01 10:00 in Tokyo.
func friday() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 1, 10, 0, 0, 0, tokyo)}
}

func ref(days, months int) *domain.DateRef {
	r := domain.RelativeDate(days, months)
	return &r
}

func plainPicker(id string) domain.PickerConfig {
	return domain.PickerConfig{ID: id}
}

func rangedPicker(id string) domain.PickerConfig {
	return domain.PickerConfig{
		ID:           id,
		Capabilities: domain.CapRanged,
		MinDate:      ref(1, 0),
		MaxDate:      ref(0, 3),
		DefaultDate:  ref(1, 0),
	}
}

func holidayPicker(id string) domain.PickerConfig {
	cfg := rangedPicker(id)
	cfg.Capabilities |= domain.CapHolidays
	return cfg
}

func blackoutPicker(id string) domain.PickerConfig {
	return domain.PickerConfig{
		ID:           id,
		Capabilities: domain.CapBlackout,
		Blackout: []domain.BlackoutSpec{
			{Kind: domain.RuleExactDate, Date: domain.RelativeDate(1, 0)},
			{Kind: domain.RuleRange, From: domain.RelativeDate(5, 0), To: domain.RelativeDate(10, 0)},
			{Kind: domain.RuleWeekday, Weekday: time.Wednesday},
		},
	}
}

func tieredPicker(id string) domain.PickerConfig {
	return domain.PickerConfig{
		ID:           id,
		Capabilities: domain.CapTime | domain.CapTieredTime,
		TimeWindow:   domain.RegularWindow,
	}
}

func syncedPicker(id, control string) domain.PickerConfig {
	return domain.PickerConfig{
		ID:           id,
		Capabilities: domain.CapSyncedTime,
		Control:      &domain.BoundControl{ID: control, Kind: domain.ControlTimeInput},
	}
}

func listPicker(id, control string, granularity int) domain.PickerConfig {
	return domain.PickerConfig{
		ID:                       id,
		Capabilities:             domain.CapTimeList,
		Control:                  &domain.BoundControl{ID: control, Kind: domain.ControlOptionList},
		OptionGranularityMinutes: granularity,
	}
}
