package repository

import (
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking/models"
)

type gormScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository returns a ScheduleRepository backed by the given
// GORM connection.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &gormScheduleRepository{db: db}
}

func (r *gormScheduleRepository) WorkingHours(providerID uint) ([]models.WorkingHours, error) {
	var hours []models.WorkingHours
	err := r.db.
		Where("provider_id = ? AND is_work_day = ?", providerID, true).
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}
