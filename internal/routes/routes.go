package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/samajseva/registration-backend/internal/config"
	"github.com/samajseva/registration-backend/internal/handlers"
	"github.com/samajseva/registration-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	registrationHandler *handlers.RegistrationHandler,
	adminHandler *handlers.AdminHandler,
	authHandler *handlers.AuthHandler,
	dropdownHandler *handlers.DropdownHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public surface: submission form support
	api.Post("/registrations", registrationHandler.Submit)
	api.Get("/dropdown-options", dropdownHandler.GetOptions)
	api.Post("/dropdown-options", dropdownHandler.AddOption)

	// Login/refresh get a stricter rate limit (10 req/min per IP) and stay
	// outside the JWT guard, so both are registered per-route rather than
	// through the admin group.
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/admin/login", authLimiter, authHandler.Login)
	api.Post("/admin/refresh", authLimiter, authHandler.Refresh)

	// Admin surface (JWT required) - apply middleware to individual routes so
	// the guard never matches the public login path by prefix.
	jwt := middleware.JWTProtected(cfg)
	api.Post("/admin/logout", jwt, authHandler.Logout)
	api.Get("/admin/me", jwt, authHandler.Me)
	api.Post("/admin/users", jwt, authHandler.CreateAdmin)

	api.Get("/admin/registrations", jwt, adminHandler.ListRegistrations)
	api.Patch("/admin/registrations", jwt, adminHandler.ToggleVerified)
	api.Get("/admin/registrations/:id/photo", jwt, adminHandler.PhotoURL)
	api.Get("/admin/statistics", jwt, adminHandler.Statistics)
	api.Get("/admin/stats", jwt, adminHandler.CityStats)
}
