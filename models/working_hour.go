package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WorkingHours is one weekly-recurring availability rule: the window a
// provider accepts bookings on a given day of the week, with an optional
// break carved out of it.
type WorkingHours struct {
	gorm.Model
	ProviderID uint      `json:"provider_id"`
	Provider   User      `json:"provider" gorm:"foreignKey:ProviderID"`
	DayOfWeek  DayOfWeek `json:"day_of_week"`
	StartTime  string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime    string    `json:"end_time"`   // Format "HH:MM" in 24h
	IsWorkDay  bool      `json:"is_work_day" gorm:"default:true"`
	BreakStart *string   `json:"break_start"` // Optional break start time
	BreakEnd   *string   `json:"break_end"`   // Optional break end time
}

// clockOn anchors an "HH:MM" clock string onto the given calendar day.
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// WindowOn returns the absolute working window for the given calendar day.
func (wh *WorkingHours) WindowOn(day time.Time) (start, end time.Time, err error) {
	if start, err = clockOn(day, wh.StartTime); err != nil {
		return
	}
	end, err = clockOn(day, wh.EndTime)
	return
}

// BreakOn returns the absolute break window for the given calendar day, or
// ok=false when the rule defines no break.
func (wh *WorkingHours) BreakOn(day time.Time) (start, end time.Time, ok bool, err error) {
	if wh.BreakStart == nil || wh.BreakEnd == nil {
		return
	}
	if start, err = clockOn(day, *wh.BreakStart); err != nil {
		return
	}
	if end, err = clockOn(day, *wh.BreakEnd); err != nil {
		return
	}
	ok = true
	return
}
