package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/glowbook/salon-booking/models"
)

type gormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository returns a BookingRepository backed by the given
// GORM connection.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Customer").Preload("Provider").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *gormBookingRepository) ActiveInRange(providerID uint, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("Customer").
		Where("provider_id = ?", providerID).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Order("start_time asc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) ActiveOnDay(providerID uint, day time.Time) ([]models.Booking, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := r.db.
		Where("provider_id = ?", providerID).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Order("start_time asc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepository) UpdateSchedule(b *models.Booking) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"start_time":          b.StartTime,
			"end_time":            b.EndTime,
			"original_start_time": b.OriginalStartTime,
			"was_rescheduled":     b.WasRescheduled,
			"reschedule_reason":   b.RescheduleReason,
			"rescheduled_from":    b.RescheduledFrom,
		}).Error
}
