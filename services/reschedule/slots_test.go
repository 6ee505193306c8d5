package reschedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbook/salon-booking/models"
)

func strPtr(s string) *string { return &s }

func TestFindNextAvailableSlot_NoScheduleReturnsNil(t *testing.T) {
	engine := newTestEngine(newFakeDB(), &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 9, 0), 30*time.Minute)

	assert.Nil(t, slot)
}

// A 60-minute search starting at 12:30 with a 13:00-14:00 break must land
// at 14:00; no result may overlap the break.
func TestFindNextAvailableSlot_SkipsBreakWindow(t *testing.T) {
	db := newFakeDB()
	fullWeek(db, 10, "09:00", "17:00", strPtr("13:00"), strPtr("14:00"))
	engine := newTestEngine(db, &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 12, 30), time.Hour)

	require.NotNil(t, slot)
	assert.Equal(t, at(monday, 14, 0), slot.Start)
	assert.Equal(t, at(monday, 15, 0), slot.End)
}

// A candidate colliding with an existing booking advances on the
// quarter-hour grid until it clears the booking.
func TestFindNextAvailableSlot_AvoidsExistingBooking(t *testing.T) {
	db := newFakeDB()
	fullWeek(db, 10, "09:00", "17:00", nil, nil)
	busy := &models.Booking{ProviderID: 10, CustomerID: 20, StartTime: at(monday, 10, 0), EndTime: ptr(at(monday, 11, 0)), Status: models.StatusConfirmed}
	busy.ID = 1
	db.bookings[1] = busy
	engine := newTestEngine(db, &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 9, 50), 30*time.Minute)

	require.NotNil(t, slot)
	assert.Equal(t, at(monday, 11, 0), slot.Start)
	assert.Equal(t, at(monday, 11, 30), slot.End)
}

// A booking with no recorded end time blocks its default duration.
func TestFindNextAvailableSlot_DefaultDurationBlocks(t *testing.T) {
	db := newFakeDB()
	fullWeek(db, 10, "09:00", "17:00", nil, nil)
	openEnded := &models.Booking{ProviderID: 10, CustomerID: 20, StartTime: at(monday, 10, 0), Status: models.StatusPending}
	openEnded.ID = 1
	db.bookings[1] = openEnded
	engine := newTestEngine(db, &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 10, 0), 30*time.Minute)

	require.NotNil(t, slot)
	// 10:00 + the default 60 minutes.
	assert.Equal(t, at(monday, 11, 0), slot.Start)
}

// The boundary clamps the first day's window; a search never returns a
// slot before it.
func TestFindNextAvailableSlot_ClampsToBoundary(t *testing.T) {
	db := newFakeDB()
	fullWeek(db, 10, "09:00", "17:00", nil, nil)
	engine := newTestEngine(db, &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 11, 45), 30*time.Minute)

	require.NotNil(t, slot)
	assert.Equal(t, at(monday, 11, 45), slot.Start)
}

// An off-grid boundary rounds up to the next quarter-hour candidate.
func TestFindNextAvailableSlot_AlignsOffGridBoundary(t *testing.T) {
	db := newFakeDB()
	fullWeek(db, 10, "09:00", "17:00", nil, nil)
	engine := newTestEngine(db, &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 9, 50), 30*time.Minute)

	require.NotNil(t, slot)
	assert.Equal(t, at(monday, 10, 0), slot.Start)
}

// A day with no workday rule rolls over to the next available day.
func TestFindNextAvailableSlot_MultiDayRollover(t *testing.T) {
	db := newFakeDB()
	// Monday is a day off; Tuesday is a normal workday.
	db.hours = append(db.hours,
		models.WorkingHours{ProviderID: 10, DayOfWeek: models.Monday, StartTime: "09:00", EndTime: "17:00", IsWorkDay: false},
		models.WorkingHours{ProviderID: 10, DayOfWeek: models.Tuesday, StartTime: "09:00", EndTime: "17:00", IsWorkDay: true},
	)
	engine := newTestEngine(db, &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 10, 0), time.Hour)

	require.NotNil(t, slot)
	tuesday := monday.AddDate(0, 0, 1)
	assert.Equal(t, at(tuesday, 9, 0), slot.Start)
	assert.Equal(t, at(tuesday, 10, 0), slot.End)
}

// A fully booked horizon exhausts all 14 days and returns nil.
func TestFindNextAvailableSlot_ExhaustsHorizon(t *testing.T) {
	db := newFakeDB()
	fullWeek(db, 10, "09:00", "10:00", nil, nil)
	engine := newTestEngine(db, &fakeSender{})

	// Nothing longer than the one-hour daily window can ever fit.
	slot := engine.FindNextAvailableSlot(10, at(monday, 9, 0), 2*time.Hour)

	assert.Nil(t, slot)
}

// The search never books through the end of the working window.
func TestFindNextAvailableSlot_RespectsWindowEnd(t *testing.T) {
	db := newFakeDB()
	fullWeek(db, 10, "09:00", "17:00", nil, nil)
	engine := newTestEngine(db, &fakeSender{})

	slot := engine.FindNextAvailableSlot(10, at(monday, 16, 45), time.Hour)

	require.NotNil(t, slot)
	// No room left on Monday after 16:45; first fit is Tuesday 09:00.
	tuesday := monday.AddDate(0, 0, 1)
	assert.Equal(t, at(tuesday, 9, 0), slot.Start)
}
