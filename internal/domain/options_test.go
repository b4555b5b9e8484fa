package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptions(t *testing.T) {
	w, err := NewTimeWindow("10:00", "10:05")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"10:00", "10:01", "10:02", "10:03", "10:04", "10:05"},
		BuildOptions(w, 1))
}

func TestBuildOptions_Granularity(t *testing.T) {
	assert.Equal(t,
		[]string{"09:00", "09:15", "09:30", "09:45", "10:00"},
		BuildOptions(TimeWindow{Min: "09:00", Max: "10:00"}, 15))

	// the last step may not land exactly on Max
	assert.Equal(t,
		[]string{"09:00", "09:25", "09:50"},
		BuildOptions(TimeWindow{Min: "09:00", Max: "10:00"}, 25))

	// non-positive granularity falls back to one minute
	assert.Len(t, BuildOptions(TimeWindow{Min: "09:00", Max: "09:09"}, 0), 10)
}

func TestBuildOptions_Bounds(t *testing.T) {
	full := BuildOptions(FullDayWindow, 1)
	require.Len(t, full, 24*60)
	assert.Equal(t, "00:00", full[0])
	assert.Equal(t, "23:59", full[len(full)-1])

	assert.Equal(t, []string{"23:59"}, BuildOptions(TimeWindow{Min: "23:59", Max: "23:59"}, 30))
	assert.Len(t, BuildOptions(RegularWindow, 1), 9*60+1)
}

func TestBuildOptions_InvertedWindow(t *testing.T) {
	got := BuildOptions(TimeWindow{Min: "20:00", Max: "10:00"}, 1)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOptions_Restartable(t *testing.T) {
	seq := Options(TimeWindow{Min: "12:00", Max: "12:02"}, 1)

	var first, second []string
	for ts := range seq {
		first = append(first, ts.String())
	}
	for ts := range seq {
		second = append(second, ts.String())
	}
	assert.Equal(t, first, second)

	// early break stops the sequence
	count := 0
	for range Options(FullDayWindow, 1) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
