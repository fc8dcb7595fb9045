package middleware

import (
	"github.com/cloudshift360/site-backend/internal/auth"
	"github.com/cloudshift360/site-backend/internal/dto"
	"github.com/cloudshift360/site-backend/internal/models"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTProtected rejects requests without a valid session cookie. Malformed,
// forged, and expired tokens all collapse into the same UNAUTHORIZED reply.
func JWTProtected(codec *auth.Codec) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: codec.Secret()},
		TokenLookup: "cookie:" + auth.CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Code: "UNAUTHORIZED", Message: "Unauthorized: sign in required",
			})
		},
	})
}

// AdminRequired gates a route on the admin role. It must run after
// JWTProtected so an unauthenticated request fails with UNAUTHORIZED before
// any role check.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Code: "UNAUTHORIZED", Message: "Unauthorized: sign in required",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Code: "UNAUTHORIZED", Message: "Unauthorized: invalid claims",
			})
		}

		role, _ := claims["role"].(string)
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Code: "FORBIDDEN", Message: "Only admins can manage inquiries",
			})
		}
		return c.Next()
	}
}
