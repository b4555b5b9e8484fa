package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"padded", "09:00", "09:00", false},
		{"unpadded hour", "9:05", "09:05", false},
		{"last minute", "23:59", "23:59", false},
		{"midnight", "00:00", "00:00", false},
		{"hour out of range", "24:00", "", true},
		{"garbage", "noon", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 3, 1, 7, 4, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:04"), ts)
}

func TestAddMinutes(t *testing.T) {
	next, err := MustTimeString("10:59").AddMinutes(1)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), next)

	_, err = MustTimeString("23:59").AddMinutes(1)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = MustTimeString("00:00").AddMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestCompare(t *testing.T) {
	a := MustTimeString("09:00")
	b := MustTimeString("18:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}
