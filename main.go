package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/glowbook/salon-booking/controllers"
	"github.com/glowbook/salon-booking/cron"
	"github.com/glowbook/salon-booking/db"
	"github.com/glowbook/salon-booking/db/repository"
	"github.com/glowbook/salon-booking/redis"
	"github.com/glowbook/salon-booking/routes"
	"github.com/glowbook/salon-booking/services/notification"
	"github.com/glowbook/salon-booking/services/reschedule"
	"github.com/glowbook/salon-booking/utils"
)

func main() {
	utils.InitializeLogger()
	db.Init()
	db.Migrate()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	controllers.Rescheduler = buildRescheduler()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Glowbook booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupWorkingHourRoutes(app)

	cron.StartCronJobs()

	if err := app.Listen(":8000"); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// buildRescheduler wires the overrun-conflict engine against the live
// database, with Redis locking and an SMS webhook when configured.
func buildRescheduler() reschedule.Engine {
	var locks reschedule.Locker = &reschedule.LocalLocker{}
	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
		locks = &reschedule.RedisLocker{}
	}

	var sms notification.Sender = notification.NewNoopSender()
	if url := os.Getenv("SMS_WEBHOOK_URL"); url != "" {
		sms = notification.NewWebhookSender(url, os.Getenv("SMS_WEBHOOK_TOKEN"))
	}

	return &reschedule.DefaultEngine{
		Bookings:  repository.NewBookingRepository(db.DB),
		Schedules: repository.NewScheduleRepository(db.DB),
		Users:     repository.NewUserRepository(db.DB),
		SMS:       sms,
		Locks:     locks,
	}
}
