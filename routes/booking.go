package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/salon-booking/controllers"
	"github.com/glowbook/salon-booking/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings")
	booking.Get("/", controllers.GetAllBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Post("/", middleware.Protected(), controllers.CreateBooking)
	booking.Patch("/:id/confirm", middleware.Protected(), middleware.RequireRole("provider"), controllers.ConfirmBooking)
	booking.Patch("/:id/cancel", middleware.Protected(), controllers.CancelBooking)
	booking.Patch("/:id/complete", middleware.Protected(), middleware.RequireRole("provider"), controllers.CompleteBooking)
}
