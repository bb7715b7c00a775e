// Package http exposes a small operational surface next to the bot: a
// health endpoint reporting whether the catalog loaded and how many
// products it holds.
package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/storebot/internal/domain/repository"
)

// NewApp builds the fiber application serving GET /health.
func NewApp(appName string, repo repository.ProductRepository) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  appName,
			"products": repo.Len(),
		})
	})
	return app
}
