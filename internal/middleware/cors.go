package middleware

import (
	"github.com/cloudshift360/site-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		// Cookies only flow when origins are pinned; the wildcard default
		// stays credential-less.
		AllowCredentials: cfg.CORSOrigins != "*",
	})
}
