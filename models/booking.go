package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// DefaultDuration is assumed whenever a booking has no end time on file.
const DefaultDuration = 60 * time.Minute

type Booking struct {
	gorm.Model
	ProviderID  uint          `json:"provider_id"`
	Provider    User          `json:"provider" gorm:"foreignKey:ProviderID"`
	CustomerID  uint          `json:"customer_id"`
	Customer    User          `json:"customer" gorm:"foreignKey:CustomerID"`
	ServiceID   uint          `json:"service_id"`
	Service     Service       `json:"service" gorm:"foreignKey:ServiceID"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     *time.Time    `json:"end_time"` // nil means "assume DefaultDuration"
	Status      BookingStatus `json:"status"`
	TokenNumber string        `json:"token_number"`

	// Reschedule provenance, set the first time the overrun engine moves
	// this booking.
	OriginalStartTime *time.Time `json:"original_start_time"`
	WasRescheduled    bool       `json:"was_rescheduled"`
	RescheduleReason  string     `json:"reschedule_reason"`
	RescheduledFrom   *uint      `json:"rescheduled_from"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// EffectiveEnd returns the booking's end time, falling back to
// StartTime + DefaultDuration when no end time is on file.
func (b *Booking) EffectiveEnd() time.Time {
	if b.EndTime != nil {
		return *b.EndTime
	}
	return b.StartTime.Add(DefaultDuration)
}

// Duration returns the booked interval length, or DefaultDuration when the
// end time is missing.
func (b *Booking) Duration() time.Duration {
	if b.EndTime != nil {
		return b.EndTime.Sub(b.StartTime)
	}
	return DefaultDuration
}

// IsActive reports whether the booking still occupies calendar space.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}

	b.Status = newStatus
	return tx.Save(b).Error
}
