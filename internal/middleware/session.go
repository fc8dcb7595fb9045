package middleware

import (
	"github.com/cloudshift360/site-backend/internal/auth"
	"github.com/gofiber/fiber/v2"
)

const sessionLocal = "session"

// Session resolves the session cookie into claims when present and valid.
// It never rejects a request; public routes simply see no identity.
func Session(codec *auth.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(auth.CookieName); token != "" {
			if claims := codec.Verify(token); claims != nil {
				c.Locals(sessionLocal, claims)
			}
		}
		return c.Next()
	}
}

// SessionClaims returns the resolved claims, or nil for anonymous requests.
func SessionClaims(c *fiber.Ctx) *auth.SessionClaims {
	claims, _ := c.Locals(sessionLocal).(*auth.SessionClaims)
	return claims
}
