package routes

import (
	"time"

	"github.com/cloudshift360/site-backend/internal/auth"
	"github.com/cloudshift360/site-backend/internal/handlers"
	"github.com/cloudshift360/site-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	codec *auth.Codec,
	authHandler *handlers.AuthHandler,
	inquiryHandler *handlers.InquiryHandler,
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

	// Cookie sessions are resolved opportunistically; public routes see an
	// anonymous request instead of an error.
	api.Use(middleware.Session(codec))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	authGroup := api.Group("/auth")
	authGroup.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Public contact form
	api.Post("/inquiries", inquiryHandler.Submit)

	// Admin triage panel. JWTProtected answers UNAUTHORIZED before
	// AdminRequired can answer FORBIDDEN; the ordering is part of the
	// wire contract.
	admin := api.Group("/admin", middleware.JWTProtected(codec), middleware.AdminRequired())
	admin.Get("/inquiries", inquiryHandler.List)
	admin.Patch("/inquiries/:id/status", inquiryHandler.UpdateStatus)
}
