// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"github.com/Ramiogue/dashboard-app2/internal/handlers"
	"github.com/Ramiogue/dashboard-app2/internal/identity"
	"github.com/Ramiogue/dashboard-app2/internal/middleware"
	"github.com/Ramiogue/dashboard-app2/internal/services/auth"
	"github.com/Ramiogue/dashboard-app2/internal/services/dashboard"
	"github.com/Ramiogue/dashboard-app2/internal/services/dataset"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, provider *identity.Provider, datasetSvc dataset.Service) {
	authService := auth.NewService(provider)
	authHandler := handlers.NewAuthHandler(authService)

	dashboardService := dashboard.NewService(datasetSvc)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Merchant Portal API",
			"version": "1.0.0",
		})
	})

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware()
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.LogoutUser)

	dash := protected.Group("/dashboard")
	dash.Get("/range", dashboardHandler.GetRange)
	dash.Get("/daily", dashboardHandler.GetDaily)
	dash.Get("/summary", dashboardHandler.GetSummary)
}
