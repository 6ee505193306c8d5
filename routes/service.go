package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowbook/salon-booking/controllers"
	"github.com/glowbook/salon-booking/middleware"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireRole("provider"), controllers.CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireRole("provider"), controllers.DeleteService)
}
