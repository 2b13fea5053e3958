package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/product-catalog/internal/api/dto"
	"github.com/spec-kit/product-catalog/internal/api/http/handlers"
	"github.com/spec-kit/product-catalog/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Products       *handlers.ProductsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Must run after the global middlewares
// and before the 404 fallback registered here.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/docs", ServeDocs)

	api := app.Group("/api")
	api.Get("/products", cfg.Products.List)
	api.Get("/products/:id", cfg.AuthMiddleware.Handle, cfg.Products.Get)
	api.Post("/signin", cfg.Users.Create)
	api.Post("/add-product", cfg.AuthMiddleware.Handle, cfg.Products.Add)
	api.Patch("/products/:id", cfg.AuthMiddleware.Handle, cfg.Products.Update)
	api.Delete("/products/:id", cfg.AuthMiddleware.Handle, cfg.Products.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
			Message: "Requested resource not found",
		})
	})
}
