package models

import (
	"time"
)

type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name"`
	Email            string         `json:"email" gorm:"unique"`
	Phone            string         `json:"phone"`
	Password         string         `json:"password,omitempty"`
	Role             UserRole       `json:"role" gorm:"default:client"`
	BusinessName     string         `json:"business_name,omitempty"` // providers only
	ProvidedServices []Service      `json:"provided_services,omitempty" gorm:"foreignKey:ProviderID"`
	Bookings         []Booking      `json:"bookings,omitempty" gorm:"foreignKey:ProviderID"`
	CustomerBookings []Booking      `json:"customer_bookings,omitempty" gorm:"foreignKey:CustomerID"`
	WorkingHours     []WorkingHours `json:"working_hours,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// DisplayName is the name used in customer-facing notification text: the
// business name for providers when one is on file, the personal name
// otherwise.
func (u *User) DisplayName() string {
	if u.BusinessName != "" {
		return u.BusinessName
	}
	return u.Name
}
