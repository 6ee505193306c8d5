package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowOn(t *testing.T) {
	wh := WorkingHours{StartTime: "09:00", EndTime: "17:30"}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	start, end, err := wh.WindowOn(day)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC), end)
}

func TestWindowOn_InvalidClock(t *testing.T) {
	wh := WorkingHours{StartTime: "9am", EndTime: "17:00"}

	_, _, err := wh.WindowOn(time.Now())

	assert.Error(t, err)
}

func TestBreakOn(t *testing.T) {
	bs, be := "13:00", "14:00"
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	wh := WorkingHours{StartTime: "09:00", EndTime: "17:00", BreakStart: &bs, BreakEnd: &be}
	start, end, ok, err := wh.BreakOn(day)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), end)

	noBreak := WorkingHours{StartTime: "09:00", EndTime: "17:00"}
	_, _, ok, err = noBreak.BreakOn(day)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookingEffectiveEnd(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	withEnd := Booking{StartTime: start, EndTime: &end}
	assert.Equal(t, end, withEnd.EffectiveEnd())
	assert.Equal(t, 30*time.Minute, withEnd.Duration())

	openEnded := Booking{StartTime: start}
	assert.Equal(t, start.Add(DefaultDuration), openEnded.EffectiveEnd())
	assert.Equal(t, DefaultDuration, openEnded.Duration())
}
