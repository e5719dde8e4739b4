package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "dsiku_backend/internals/helpers/auth"
)

func bearerToken(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}

func hydrate(c *fiber.Ctx, claims *helperAuth.AuthClaims) {
	c.Locals(helperAuth.LocUserID, claims.ID)
	c.Locals(helperAuth.LocUserRole, claims.Role)
	c.Locals(helperAuth.LocUserName, claims.Name)
	c.Locals(helperAuth.LocUserNumber, claims.Number)
	if claims.OrganizationID != "" {
		c.Locals(helperAuth.LocOrganizationID, claims.OrganizationID)
	}
}

// AuthJWT requires a valid Bearer token and hydrates the identity locals.
func AuthJWT(secret string) fiber.Handler {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		panic("AuthJWT: secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		claims, err := helperAuth.ParseAuthToken(secret, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		hydrate(c, claims)
		return c.Next()
	}
}

// OptionalAuthJWT hydrates locals when a valid token is present but lets
// unauthenticated requests through. Used on routes that fall back to
// phone+role identity resolution from the request payload.
func OptionalAuthJWT(secret string) fiber.Handler {
	secret = strings.TrimSpace(secret)

	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" || secret == "" {
			return c.Next()
		}
		if claims, err := helperAuth.ParseAuthToken(secret, raw); err == nil {
			hydrate(c, claims)
		}
		return c.Next()
	}
}
