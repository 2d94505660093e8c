package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/hall-complaints/pkg/util"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

const principalKey = "auth_principal"

// Principal identifies the authenticated operator for the request.
type Principal struct {
	Email string
}

// SessionMiddleware guards admin routes behind the session cookie.
type SessionMiddleware struct {
	tokens *TokenManager
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. The token comes from
// the session cookie; a bearer header is accepted for non-browser clients.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := c.Cookies(SessionCookie)
	if tokenStr == "" {
		tokenStr = bearerToken(c.Get("Authorization"))
	}
	if tokenStr == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	claims, err := m.tokens.ParseToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired session")
	}

	c.Locals(principalKey, &Principal{Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated operator.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
