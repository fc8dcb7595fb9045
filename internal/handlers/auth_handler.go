package handlers

import (
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/cloudshift360/site-backend/internal/auth"
	"github.com/cloudshift360/site-backend/internal/dto"
	"github.com/cloudshift360/site-backend/internal/middleware"
	"github.com/cloudshift360/site-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	directory  services.UserDirectory
	codec      *auth.Codec
	sessionTTL time.Duration
}

func NewAuthHandler(directory services.UserDirectory, codec *auth.Codec, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{directory: directory, codec: codec, sessionTTL: sessionTTL}
}

// Login upserts the user keyed by email and issues a session cookie. The
// password is shape-checked only; identity proof is out of scope here and a
// credential-verification layer belongs in front of this endpoint.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return badRequest(c, "Invalid email address")
	}
	if len(req.Password) < 6 {
		return badRequest(c, "Password must be at least 6 characters")
	}

	name := strings.Split(req.Email, "@")[0]
	method := "email"
	user, err := h.directory.UpsertByOpenID(services.UpsertUser{
		OpenID:       req.Email,
		Name:         &name,
		Email:        &req.Email,
		LoginMethod:  &method,
		LastSignedIn: time.Now(),
	})
	if err != nil {
		slog.Error("login failed", "error", err)
		return internalError(c, "Login failed. Please try again.")
	}
	if user == nil {
		return internalError(c, "Login failed. Please try again.")
	}

	email := req.Email
	if user.Email != nil {
		email = *user.Email
	}
	displayName := ""
	if user.Name != nil {
		displayName = *user.Name
	}

	token, err := h.codec.Issue(auth.SessionClaims{
		UserID: user.OpenID,
		Email:  email,
		Name:   displayName,
		Role:   user.Role,
	}, h.sessionTTL)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		return internalError(c, "Login failed. Please try again.")
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		MaxAge:   int(h.sessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.JSON(dto.LoginResponse{
		Success: true,
		User: dto.UserResponse{
			ID:    user.OpenID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	})
}

// Logout clears the session cookie unconditionally.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

// Me returns the resolved user or JSON null, with no side effects. The
// directory row wins when available; a valid session still identifies itself
// from its claims when the store cannot be reached.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := middleware.SessionClaims(c)
	if claims == nil {
		return c.JSON(nil)
	}

	if user := h.directory.FindByOpenID(claims.UserID); user != nil {
		return c.JSON(dto.UserResponse{
			ID:    user.OpenID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		})
	}

	return c.JSON(dto.UserResponse{
		ID:    claims.UserID,
		Email: &claims.Email,
		Name:  &claims.Name,
		Role:  claims.Role,
	})
}
