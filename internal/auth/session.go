package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the fixed session cookie name shared with the frontend.
const CookieName = "cs360_session"

// SessionClaims is the payload carried by a session token. The role claim is
// trusted for authorization until the token expires or is reissued.
type SessionClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a single symmetric secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue produces a signed HS256 token valid from now until now+ttl.
func (c *Codec) Issue(claims SessionClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify returns the decoded claims, or nil on any structural, signature, or
// expiry failure. Callers cannot distinguish the failure modes; the detail is
// only logged so the response never acts as a verification oracle.
func (c *Codec) Verify(tokenString string) *SessionClaims {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		slog.Warn("session token rejected", "error", err)
		return nil
	}
	return claims
}

// Secret exposes the signing key for route guards that parse tokens themselves.
func (c *Codec) Secret() []byte {
	return c.secret
}
