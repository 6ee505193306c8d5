package repository

import (
	"errors"
	"time"

	"github.com/glowbook/salon-booking/models"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// BookingRepository is the persistence surface the rescheduling engine and
// booking flows consume. Implementations must return ErrNotFound (possibly
// wrapped) for missing records.
type BookingRepository interface {
	// GetByID loads one booking by its id.
	GetByID(id uint) (*models.Booking, error)

	// ActiveInRange returns the provider's pending and confirmed bookings
	// whose start time falls within [from, to] inclusive, ordered by start
	// time ascending.
	ActiveInRange(providerID uint, from, to time.Time) ([]models.Booking, error)

	// ActiveOnDay returns the provider's pending and confirmed bookings
	// starting within the calendar day containing the given instant,
	// ordered by start time ascending.
	ActiveOnDay(providerID uint, day time.Time) ([]models.Booking, error)

	// UpdateSchedule persists a booking's schedule and reschedule
	// provenance fields in place.
	UpdateSchedule(b *models.Booking) error
}

// ScheduleRepository reads provider weekly availability rules.
type ScheduleRepository interface {
	// WorkingHours returns the provider's workday rules (IsWorkDay = true).
	WorkingHours(providerID uint) ([]models.WorkingHours, error)
}

// UserRepository reads client and provider records for notification text.
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
}
