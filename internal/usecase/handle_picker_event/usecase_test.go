package handle_picker_event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickerService/internal/domain"
	"github.com/m04kA/SMC-PickerService/internal/service/pickers"
)

var tokyo = time.FixedZone("Asia/Tokyo", 9*60*60)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type emptyLoader struct{}

func (emptyLoader) Load(_ context.Context, year int) domain.HolidaySet {
	return domain.EmptyHolidaySet(year)
}

type eventRecord struct {
	picker, event string
	applied       bool
}

type eventRecorder struct {
	calls []eventRecord
}

func (r *eventRecorder) RecordPickerEvent(pickerID, event string, applied bool) {
	r.calls = append(r.calls, eventRecord{pickerID, event, applied})
}

func newUseCase(t *testing.T) (*UseCase, *eventRecorder) {
	t.Helper()

	o, err := pickers.NewOrchestrator(emptyLoader{}, nil, tokyo,
		fixedClock{now: time.Date(2024, time.March, 1, 10, 0, 0, 0, tokyo)}, nopLogger{})
	require.NoError(t, err)

	err = o.Build(context.Background(), []domain.PickerConfig{
		{
			ID:           "js-datepicker-7",
			Capabilities: domain.CapTime | domain.CapTieredTime,
		},
		{
			ID:           "js-datepicker-8",
			Capabilities: domain.CapSyncedTime,
			Control:      &domain.BoundControl{ID: "js-time-8", Kind: domain.ControlTimeInput},
		},
	})
	require.NoError(t, err)

	rec := &eventRecorder{}
	return NewUseCase(o, rec, nopLogger{}), rec
}

func TestUseCase_Execute_TieredWidget(t *testing.T) {
	uc, rec := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		PickerID:      "js-datepicker-7",
		Event:         "change",
		SelectedDates: []time.Time{time.Date(2024, time.March, 10, 0, 0, 0, 0, tokyo)},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.WidgetTime)
	assert.Equal(t, "13:00", resp.WidgetTime.Min)
	assert.Equal(t, "20:00", resp.WidgetTime.Max)
	assert.Equal(t, "sunday", resp.Tier)
	assert.Equal(t, []eventRecord{{"js-datepicker-7", "change", true}}, rec.calls)
}

func TestUseCase_Execute_SyncedControl(t *testing.T) {
	uc, rec := newUseCase(t)
	tomorrow := []time.Time{time.Date(2024, time.March, 2, 0, 0, 0, 0, tokyo)}

	resp, err := uc.Execute(context.Background(), &Request{
		PickerID:      "js-datepicker-8",
		Event:         "ready",
		SelectedDates: tomorrow,
		Controls:      []string{"js-time-8"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Control)
	assert.Equal(t, "10:00", resp.Control.Range.Min)

	resp, err = uc.Execute(context.Background(), &Request{
		PickerID:      "js-datepicker-8",
		Event:         "ready",
		SelectedDates: tomorrow,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Control)

	assert.Equal(t, []eventRecord{
		{"js-datepicker-8", "ready", true},
		{"js-datepicker-8", "ready", false},
	}, rec.calls)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc, rec := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{PickerID: "js-datepicker-7", Event: "hover"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PickerID: "js-datepicker-7", Event: "render"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Event: "change"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		PickerID:      "js-datepicker-7",
		Event:         "change",
		SelectedDates: []time.Time{{}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PickerID: "js-datepicker-99", Event: "change"})
	assert.ErrorIs(t, err, ErrPickerNotFound)

	assert.Empty(t, rec.calls)
}
