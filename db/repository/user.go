package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/glowbook/salon-booking/models"
)

type gormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a UserRepository backed by the given GORM
// connection.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
