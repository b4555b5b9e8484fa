package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

func TestPickerSpec_ToDomain(t *testing.T) {
	spec := PickerSpec{
		ID:           " js-datepicker-4 ",
		Capabilities: []string{"localized", "Blackout", "time"},
		Locale:       "ja-jp",
		DateFormat:   "Y.m.d（D）",
		DefaultDate:  &DateRefSpec{},
		Blackout: []BlackoutRuleSpec{
			{Kind: "date", Date: &DateRefSpec{OffsetDays: 1}},
			{Kind: "range", From: &DateRefSpec{OffsetDays: 5}, To: &DateRefSpec{OffsetDays: 10}},
			{Kind: "weekday", Weekday: "wed"},
			{Kind: "date", Date: &DateRefSpec{Date: "2024-12-31"}},
		},
		MinTime: "09:00",
		MaxTime: "18:00",
		Control: &ControlSpec{ID: "js-time-4", Kind: " INPUT "},
	}

	cfg, err := spec.ToDomain()
	require.NoError(t, err)

	assert.Equal(t, "js-datepicker-4", cfg.ID)
	assert.Equal(t, domain.CapLocalized|domain.CapBlackout|domain.CapTime, cfg.Capabilities)
	assert.Equal(t, "ja-JP", cfg.Locale)
	require.NotNil(t, cfg.DefaultDate)
	assert.True(t, cfg.DefaultDate.IsRelative())
	require.Len(t, cfg.Blackout, 4)
	assert.Equal(t, domain.RelativeDate(1, 0), cfg.Blackout[0].Date)
	assert.Equal(t, domain.RelativeDate(10, 0), cfg.Blackout[1].To)
	assert.Equal(t, time.Wednesday, cfg.Blackout[2].Weekday)
	assert.Equal(t, domain.AbsoluteDate("2024-12-31"), cfg.Blackout[3].Date)
	assert.Equal(t, "09:00-18:00", cfg.TimeWindow.String())
	require.NotNil(t, cfg.Control)
	assert.Equal(t, domain.ControlTimeInput, cfg.Control.Kind)
}

func TestPickerSpec_ToDomain_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec PickerSpec
		want error
	}{
		{"unknown capability", PickerSpec{ID: "p", Capabilities: []string{"teleport"}}, domain.ErrInvalidConfig},
		{"bad locale", PickerSpec{ID: "p", Locale: "not a locale!"}, domain.ErrInvalidConfig},
		{"bad rule kind", PickerSpec{ID: "p", Blackout: []BlackoutRuleSpec{{Kind: "month"}}}, domain.ErrInvalidConfig},
		{"range without end", PickerSpec{ID: "p", Blackout: []BlackoutRuleSpec{{Kind: "range", From: &DateRefSpec{}}}}, domain.ErrInvalidConfig},
		{"bad weekday", PickerSpec{ID: "p", Blackout: []BlackoutRuleSpec{{Kind: "weekday", Weekday: "funday"}}}, domain.ErrInvalidConfig},
		{"inverted window", PickerSpec{ID: "p", MinTime: "18:00", MaxTime: "09:00"}, domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.ToDomain()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTiersToDomain(t *testing.T) {
	t.Run("empty means default policy", func(t *testing.T) {
		tiers, err := TiersToDomain(nil)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultTiers(), tiers)
	})

	t.Run("configured", func(t *testing.T) {
		tiers, err := TiersToDomain([]TimeTierSpec{
			{Name: "soon", Kind: "proximity", FromDays: 0, ToDays: 2, MinTime: "11:00", MaxTime: "19:00"},
			{Name: "saturday", Kind: "weekday", Weekday: "Saturday", MinTime: "10:00", MaxTime: "16:00"},
			{Name: "rest", Kind: "default", MinTime: "09:00", MaxTime: "18:00"},
		})
		require.NoError(t, err)
		require.Len(t, tiers, 3)
		assert.Equal(t, domain.TierProximity, tiers[0].Kind)
		assert.Equal(t, 2, tiers[0].ToDays)
		assert.Equal(t, time.Saturday, tiers[1].Weekday)
		assert.Equal(t, domain.TierDefault, tiers[2].Kind)
	})

	t.Run("last tier must be default", func(t *testing.T) {
		_, err := TiersToDomain([]TimeTierSpec{
			{Name: "sunday", Kind: "weekday", Weekday: "sun", MinTime: "13:00", MaxTime: "20:00"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTiers)
	})

	t.Run("bad window", func(t *testing.T) {
		_, err := TiersToDomain([]TimeTierSpec{{Name: "rest", Kind: "default", MinTime: "25:00", MaxTime: "26:00"}})
		assert.ErrorIs(t, err, domain.ErrInvalidTiers)
	})
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"sunday": time.Sunday, "Sun": time.Sunday, " WED ": time.Wednesday, "saturday": time.Saturday,
	} {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseWeekday("")
	assert.Error(t, err)
}
