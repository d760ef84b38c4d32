package middleware

import (
	"strings"

	"learnhub/internal/domain"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	// SessionCookie is the name of the HttpOnly cookie carrying the JWT.
	SessionCookie = "session"

	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "

	// IdentityKey is the fiber locals key holding the authenticated
	// domain.Identity.
	IdentityKey = "identity"
)

// extractToken reads the session token from the cookie or, failing that,
// from a Bearer authorization header.
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookie); token != "" {
		return token
	}
	authHeader := c.Get(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerSchema) {
		return strings.TrimPrefix(authHeader, BearerSchema)
	}
	return ""
}

// RequireAuth protects routes by requiring a valid, non-revoked session
// token. The resolved identity is stored in the request locals.
func RequireAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return domain.NewUnauthenticatedError("Authentication required")
		}

		identity, err := authService.ValidateToken(c.Context(), token)
		if err != nil {
			return err
		}

		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

// RequireRole restricts a route to the given roles. It must run after
// RequireAuth.
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromCtx(c)
		if identity == nil {
			return domain.NewUnauthenticatedError("Authentication required")
		}
		for _, role := range roles {
			if identity.Role == role {
				return c.Next()
			}
		}
		return domain.NewForbiddenError("Insufficient permissions")
	}
}

// IdentityFromCtx returns the authenticated identity, or nil when the
// request is anonymous.
func IdentityFromCtx(c *fiber.Ctx) *domain.Identity {
	identity, ok := c.Locals(IdentityKey).(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}
