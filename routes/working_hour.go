package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/salon-booking/controllers"
	"github.com/glowbook/salon-booking/middleware"
)

// SetupWorkingHourRoutes configures all working hour related routes
func SetupWorkingHourRoutes(app *fiber.App) {
	workingHour := app.Group("/working-hours")
	workingHour.Get("/", controllers.GetAllWorkingHours)
	workingHour.Get("/:id", controllers.GetWorkingHour)
	workingHour.Post("/", middleware.Protected(), middleware.RequireRole("provider"), controllers.CreateWorkingHour)
	workingHour.Patch("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.UpdateWorkingHour)
	workingHour.Delete("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.DeleteWorkingHour)
}
