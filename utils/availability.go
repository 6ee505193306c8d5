package utils

import (
	"time"

	"github.com/glowbook/salon-booking/db"
	"github.com/glowbook/salon-booking/models"
)

// CheckAvailability checks if a provider is available for a given time slot
func CheckAvailability(providerID uint, startTime time.Time, duration time.Duration) (bool, error) {
	endTime := startTime.Add(duration)

	// Check if any conflicting bookings exist and lock them
	var existing models.Booking
	err := db.DB.Raw(`
		SELECT *
		FROM bookings
		WHERE provider_id = ? AND status IN ('pending', 'confirmed') AND (
			(start_time < ? AND COALESCE(end_time, start_time + interval '60 minutes') > ?) OR
			(start_time >= ? AND start_time < ?)
		) FOR UPDATE
		LIMIT 1
	`, providerID, endTime, startTime, startTime, endTime).
		Scan(&existing).Error

	// If there is any conflicting booking, return false
	if err == nil && existing.ID != 0 {
		return false, nil
	}

	// No conflict, slot is available
	return true, nil
}

// CheckWorkingDayAndHours checks that the booking is within the provider's
// working days and hours, including break handling.
func CheckWorkingDayAndHours(providerID uint, start time.Time) (bool, error) {
	var hours []models.WorkingHours
	if err := db.DB.Where("provider_id = ?", providerID).Find(&hours).Error; err != nil {
		return false, err
	}

	// Locate the rule for the booking's weekday (0 Sunday .. 6 Saturday)
	var rule *models.WorkingHours
	for i := range hours {
		if int(hours[i].DayOfWeek) == int(start.Weekday()) && hours[i].IsWorkDay {
			rule = &hours[i]
			break
		}
	}
	if rule == nil {
		return false, nil // Booking is outside working days
	}

	windowStart, windowEnd, err := rule.WindowOn(start)
	if err != nil {
		return false, err
	}
	if start.Before(windowStart) || start.After(windowEnd) {
		return false, nil // Booking is outside working hours
	}

	// If the booking starts during the break, it's invalid
	breakStart, breakEnd, ok, err := rule.BreakOn(start)
	if err != nil {
		return false, err
	}
	if ok && start.After(breakStart) && start.Before(breakEnd) {
		return false, nil // Booking is within break time
	}

	return true, nil
}
