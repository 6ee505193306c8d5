package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/glowbook/salon-booking/db"
	"github.com/glowbook/salon-booking/models"
	"github.com/glowbook/salon-booking/services/reschedule"
	"github.com/glowbook/salon-booking/utils"
)

// Rescheduler resolves overrun conflicts after a booking completes. Wired
// in main.
var Rescheduler reschedule.Engine

// GetAllBookings returns bookings, optionally filtered by provider and an
// upcoming window.
func GetAllBookings(c *fiber.Ctx) error {
	query := db.DB.Preload("Service").Preload("Provider").Preload("Customer")

	if providerID := c.QueryInt("provider_id"); providerID > 0 {
		query = query.Where("provider_id = ?", providerID)
	}
	if c.Query("upcoming") == "true" {
		query = query.
			Where("start_time >= ?", time.Now()).
			Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
			Order("start_time asc")
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns one booking by ID
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Provider").Preload("Customer").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CreateBooking validates the requested slot against the provider's
// working hours and existing bookings, then books it.
func CreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Slot length comes from the booked service
	var service models.Service
	if err := db.DB.First(&service, booking.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	duration := service.Duration
	if duration <= 0 {
		duration = models.DefaultDuration
	}

	// Check that the slot is inside working hours and outside the break
	isWorkingHour, err := utils.CheckWorkingDayAndHours(booking.ProviderID, booking.StartTime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking working hours",
			Error:   err.Error(),
		})
	}
	if !isWorkingHour {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Booking is outside working hours or during break",
		})
	}

	// Check for availability
	available, err := utils.CheckAvailability(booking.ProviderID, booking.StartTime, duration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking availability",
			Error:   err.Error(),
		})
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available",
		})
	}

	endTime := booking.StartTime.Add(duration)
	booking.EndTime = &endTime
	booking.Status = models.StatusPending
	booking.TokenNumber = utils.GenerateTokenNumber()

	// Re-check inside the transaction to prevent a race with a competing
	// booking request.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		available, err := utils.CheckAvailability(booking.ProviderID, booking.StartTime, duration)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("time slot not available")
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available or failed to create booking",
			Error:   err.Error(),
		})
	}

	// Confirmation email is best effort
	var customer models.User
	if err := db.DB.First(&customer, booking.CustomerID).Error; err == nil && customer.Email != "" {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your booking has been created.</p>
			<ul>
				<li><strong>Service:</strong> %s</li>
				<li><strong>Start Time:</strong> %s</li>
				<li><strong>Token Number:</strong> %s</li>
			</ul>
		`, customer.Name, service.Name, booking.StartTime.Format("2006-01-02 15:04"), booking.TokenNumber)
		if err := utils.SendEmail(customer.Email, "Booking Confirmation", body); err != nil {
			log.Printf("Failed to send booking confirmation email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ConfirmBooking moves a pending booking to confirmed
func ConfirmBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if err := booking.UpdateStatus(db.DB, models.StatusConfirmed); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CancelBooking cancels a pending or confirmed booking
func CancelBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if err := booking.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CompleteBooking marks a booking completed and resolves any downstream
// conflicts its overrun caused. The response carries the engine result so
// the front desk sees which clients were moved.
func CompleteBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}

	type CompleteInput struct {
		ActualEndTime *time.Time `json:"actual_end_time"`
	}
	input := new(CompleteInput)
	if err := c.BodyParser(input); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	actualEnd := time.Now()
	if input.ActualEndTime != nil {
		actualEnd = *input.ActualEndTime
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	if err := booking.UpdateStatus(db.DB, models.StatusCompleted); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	result := Rescheduler.ResolveOverrunConflicts(c.Context(), booking.ID, actualEnd)
	return c.JSON(fiber.Map{
		"booking":    booking,
		"reschedule": result,
	})
}
