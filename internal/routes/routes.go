package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/reportesapp/backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	reportHandler *handlers.ReportHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	uploadDir string,
) {
	// General rate limit: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	app.Post("/reports", reportHandler.Create)
	app.Get("/reports", reportHandler.List)
	app.Get("/reports/user/:userId", reportHandler.ListByUser)

	app.Post("/users/google-login", userHandler.GoogleLogin)
	app.Post("/users", userHandler.Create)

	// Stored images are served straight from the upload directory.
	app.Static("/uploads", uploadDir)
}
