package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/pkg/jwt"
)

// Locals key for the authenticated identity in Fiber.
const LocalIdentity = "identity"

// IdentityVerifier re-checks a parsed token against current account state
// (active flag, token version). nil skips the check.
type IdentityVerifier func(ctx context.Context, id jwt.Identity) error

// AuthMiddleware validates the Bearer JWT and stores the identity in
// c.Locals for the handlers behind it.
func AuthMiddleware(jwtSecret string, verify IdentityVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		if verify != nil {
			if err := verify(c.Context(), id); err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "STALE_TOKEN", Message: "token no longer valid"})
			}
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// RequireRole allows only the listed roles past (after AuthMiddleware).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "insufficient role"})
	}
}

func identity(c *fiber.Ctx) jwt.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return jwt.Identity{}
	}
	id, _ := v.(jwt.Identity)
	return id
}

// GetUserID returns the authenticated user id (after AuthMiddleware).
func GetUserID(c *fiber.Ctx) string { return identity(c).UserID }

// GetUsername returns the authenticated username.
func GetUsername(c *fiber.Ctx) string { return identity(c).Username }

// GetRole returns the authenticated role.
func GetRole(c *fiber.Ctx) string { return identity(c).Role }

// GetPlantID returns the plant the user is pinned to; empty for admins.
func GetPlantID(c *fiber.Ctx) string { return identity(c).PlantID }
