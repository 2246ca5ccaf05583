package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API surface. authGuard wraps everything under
// /upload; /auth and /health stay public.
func RegisterRoutes(app *fiber.App, authHandler *AuthHandler, photoHandler *PhotoHandler, authGuard fiber.Handler) {
	auth := app.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	upload := app.Group("/upload", authGuard)
	upload.Post("/", photoHandler.Upload)
	upload.Get("/", photoHandler.List)
	upload.Get("/:id", photoHandler.Get)
	upload.Patch("/:id", photoHandler.Patch)
	upload.Delete("/:id", photoHandler.Delete)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
}
