package reschedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/glowbook/salon-booking/db/repository"
	"github.com/glowbook/salon-booking/services/notification"
	"github.com/glowbook/salon-booking/utils"
)

// RescheduleReason is stamped on every booking this engine moves and is
// included verbatim in the customer notification text.
const RescheduleReason = "Previous appointment ran overtime"

// Slot is a candidate interval [Start, End) on a provider's calendar.
type Slot struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// Notice describes one successfully rescheduled booking; it is what a
// caller surfaces to operators or the UI.
type Notice struct {
	BookingID    uint      `json:"booking_id"`
	ClientPhone  string    `json:"client_phone"`
	ClientName   string    `json:"client_name"`
	ProviderName string    `json:"provider_name"`
	OriginalTime time.Time `json:"original_time"`
	NewTime      time.Time `json:"new_time"`
	TokenNumber  string    `json:"token_number"`
}

// Result is the structured outcome of one overrun resolution pass. The
// engine never returns a Go error to its caller; every failure mode folds
// into Success and Message.
type Result struct {
	Success     bool     `json:"success"`
	Rescheduled []Notice `json:"rescheduled_bookings"`
	Message     string   `json:"message"`
}

// Engine detects bookings displaced by an overrun and moves each one to
// the next feasible slot on the provider's calendar.
type Engine interface {
	// ResolveOverrunConflicts is invoked once per completed booking with
	// the instant the appointment actually finished.
	ResolveOverrunConflicts(ctx context.Context, completedBookingID uint, actualEnd time.Time) Result
	// FindNextAvailableSlot returns the first open interval of the given
	// length at or after the boundary, or nil when none exists within the
	// search horizon.
	FindNextAvailableSlot(providerID uint, after time.Time, duration time.Duration) *Slot
}

// DefaultEngine is the production implementation. All collaborators are
// injected; the engine itself holds no state beyond the lock table.
type DefaultEngine struct {
	Bookings  repository.BookingRepository
	Schedules repository.ScheduleRepository
	Users     repository.UserRepository
	SMS       notification.Sender
	Locks     Locker
}

func (e *DefaultEngine) ResolveOverrunConflicts(ctx context.Context, completedBookingID uint, actualEnd time.Time) Result {
	logger := utils.GetLogger()

	// 1. Load the completed booking; a missing id is a caller error.
	completed, err := e.Bookings.GetByID(completedBookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return Result{Success: false, Rescheduled: []Notice{}, Message: "Booking not found"}
	}
	if err != nil {
		return Result{Success: false, Rescheduled: []Notice{}, Message: fmt.Sprintf("failed to load booking: %v", err)}
	}

	// 2. Serialize the whole resolution per provider. Two concurrent
	// resolutions for one provider could otherwise each claim the same
	// free slot.
	unlock, err := e.Locks.Lock(completed.ProviderID)
	if err != nil {
		return Result{Success: false, Rescheduled: []Notice{}, Message: fmt.Sprintf("provider calendar busy: %v", err)}
	}
	defer unlock()

	// 3. The overrun window opens at the scheduled end. A booking with no
	// end time on file anchors the window at its scheduled start instead.
	scheduledEnd := completed.StartTime
	if completed.EndTime != nil {
		scheduledEnd = *completed.EndTime
	}

	// 4. Every active booking starting inside [scheduledEnd, actualEnd]
	// now collides with the overrun. Earlier starts resolve first: each
	// reschedule consumes calendar space the next search must avoid.
	conflicts, err := e.Bookings.ActiveInRange(completed.ProviderID, scheduledEnd, actualEnd)
	if err != nil {
		return Result{Success: false, Rescheduled: []Notice{}, Message: fmt.Sprintf("failed to load conflicting bookings: %v", err)}
	}
	if len(conflicts) == 0 {
		return Result{Success: true, Rescheduled: []Notice{}, Message: "No conflicts found"}
	}

	providerName := ""
	if provider, err := e.Users.GetByID(completed.ProviderID); err != nil {
		logger.Warn("reschedule: provider lookup failed",
			zap.Uint("providerID", completed.ProviderID), zap.Error(err))
	} else {
		providerName = provider.DisplayName()
	}

	notices := make([]Notice, 0, len(conflicts))
	for i := range conflicts {
		booking := &conflicts[i]

		// 5a. Search from the actual end of the overrunning appointment.
		slot := e.FindNextAvailableSlot(booking.ProviderID, actualEnd, booking.Duration())
		if slot == nil {
			// Non-fatal: the booking stays in its conflicting position
			// and is left out of the result list.
			logger.Warn("reschedule: no feasible slot, leaving booking in place",
				zap.Uint("bookingID", booking.ID),
				zap.Time("startTime", booking.StartTime))
			continue
		}

		// 5b. Move the booking in place. OriginalStartTime is write-once:
		// a booking moved twice keeps its very first scheduled time.
		previousStart := booking.StartTime
		if booking.OriginalStartTime == nil {
			booking.OriginalStartTime = &previousStart
		}
		booking.StartTime = slot.Start
		newEnd := slot.End
		booking.EndTime = &newEnd
		booking.WasRescheduled = true
		booking.RescheduleReason = RescheduleReason
		fromID := completed.ID
		booking.RescheduledFrom = &fromID

		if err := e.Bookings.UpdateSchedule(booking); err != nil {
			logger.Error("reschedule: failed to persist new slot",
				zap.Uint("bookingID", booking.ID), zap.Error(err))
			continue
		}

		notice := Notice{
			BookingID:    booking.ID,
			ProviderName: providerName,
			OriginalTime: previousStart,
			NewTime:      slot.Start,
			TokenNumber:  booking.TokenNumber,
		}
		if client, err := e.Users.GetByID(booking.CustomerID); err != nil {
			logger.Warn("reschedule: client lookup failed",
				zap.Uint("customerID", booking.CustomerID), zap.Error(err))
		} else {
			notice.ClientName = client.Name
			notice.ClientPhone = client.Phone
		}
		notices = append(notices, notice)

		// 5c. Notify the client. The booking change is already committed,
		// so a delivery failure is logged and swallowed.
		if err := e.notify(ctx, notice); err != nil {
			logger.Error("reschedule: notification failed",
				zap.Uint("bookingID", booking.ID), zap.Error(err))
		}
	}

	return Result{
		Success:     true,
		Rescheduled: notices,
		Message:     fmt.Sprintf("Rescheduled %d of %d conflicting booking(s)", len(notices), len(conflicts)),
	}
}
