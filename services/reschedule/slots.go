package reschedule

import (
	"time"

	"go.uber.org/zap"

	"github.com/glowbook/salon-booking/models"
	"github.com/glowbook/salon-booking/utils"
)

const (
	// slotStep is the candidate-start granularity. Appointments in this
	// domain are short, so 15 minutes balances search cost against slot
	// precision.
	slotStep = 15 * time.Minute

	// searchDays bounds the forward search; it is the only circuit
	// breaker against unbounded work.
	searchDays = 14
)

// FindNextAvailableSlot scans the provider's calendar forward from the
// given boundary and returns the first interval of the requested length
// that overlaps neither a break window nor an existing active booking.
// Errors during the search surface as nil, the same as "fully booked".
func (e *DefaultEngine) FindNextAvailableSlot(providerID uint, after time.Time, duration time.Duration) *Slot {
	slot, err := e.findSlot(providerID, after, duration)
	if err != nil {
		utils.GetLogger().Error("slot search failed",
			zap.Uint("providerID", providerID), zap.Error(err))
		return nil
	}
	return slot
}

func (e *DefaultEngine) findSlot(providerID uint, after time.Time, duration time.Duration) (*Slot, error) {
	hours, err := e.Schedules.WorkingHours(providerID)
	if err != nil {
		return nil, err
	}
	if len(hours) == 0 {
		// Provider has no defined availability at all.
		return nil, nil
	}

	// Weekly template as a day-of-week keyed lookup.
	byDay := make(map[models.DayOfWeek]*models.WorkingHours, len(hours))
	for i := range hours {
		byDay[hours[i].DayOfWeek] = &hours[i]
	}

	for offset := 0; offset < searchDays; offset++ {
		day := after.AddDate(0, 0, offset)

		rule, ok := byDay[models.DayOfWeek(day.Weekday())]
		if !ok || !rule.IsWorkDay {
			continue
		}

		windowStart, windowEnd, err := rule.WindowOn(day)
		if err != nil {
			return nil, err
		}
		// Never hand out a slot before the requested boundary. Candidates
		// stay on the quarter-hour grid, so round the boundary up.
		if offset == 0 && after.After(windowStart) {
			windowStart = alignUp(after)
		}

		breakStart, breakEnd, hasBreak, err := rule.BreakOn(day)
		if err != nil {
			return nil, err
		}

		booked, err := e.Bookings.ActiveOnDay(providerID, day)
		if err != nil {
			return nil, err
		}
		if offset == 0 {
			// Bookings already underway at the boundary are either
			// finished or displaced by the same overrun and about to be
			// moved themselves; they must not block the search.
			booked = startingAtOrAfter(booked, after)
		}

		for candidate := windowStart; ; {
			candidateEnd := candidate.Add(duration)
			if candidateEnd.After(windowEnd) {
				break // no more room today
			}
			if hasBreak && candidate.Before(breakEnd) && candidateEnd.After(breakStart) {
				// Jump straight past the break rather than stepping
				// through it.
				candidate = breakEnd
				continue
			}
			if overlapsBooking(candidate, candidateEnd, booked) {
				candidate = candidate.Add(slotStep)
				continue
			}
			// First fit wins.
			return &Slot{Start: candidate, End: candidateEnd}, nil
		}
	}

	return nil, nil
}

// alignUp rounds an instant up to the next quarter-hour mark.
func alignUp(t time.Time) time.Time {
	aligned := t.Truncate(slotStep)
	if aligned.Before(t) {
		aligned = aligned.Add(slotStep)
	}
	return aligned
}

func startingAtOrAfter(bookings []models.Booking, boundary time.Time) []models.Booking {
	kept := bookings[:0]
	for i := range bookings {
		if !bookings[i].StartTime.Before(boundary) {
			kept = append(kept, bookings[i])
		}
	}
	return kept
}

// overlapsBooking reports whether [start, end) collides with any existing
// booking. A booking with no end time occupies its default duration.
func overlapsBooking(start, end time.Time, booked []models.Booking) bool {
	for i := range booked {
		if start.Before(booked[i].EffectiveEnd()) && end.After(booked[i].StartTime) {
			return true
		}
	}
	return false
}
