package db

import (
	"fmt"
	"log"

	"github.com/glowbook/salon-booking/models"
)

// Migrate runs AutoMigrate for all models. Init must have been called.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
