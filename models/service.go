package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is one bookable offering on a provider's menu (haircut, manicure,
// facial, ...). Duration drives the length of the slot a booking occupies.
type Service struct {
	gorm.Model
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration"`
	Cost        float64       `json:"cost"`
	ProviderID  uint          `json:"provider_id"`
	Provider    User          `json:"provider" gorm:"foreignKey:ProviderID"`
}
