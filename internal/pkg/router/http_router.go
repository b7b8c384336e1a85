package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/larder-app/larder/internal/pkg/middleware"
	"github.com/larder-app/larder/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Resolve the acting household for every request
	app.Use(middleware.HouseholdContext)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
