package serverutils

import (
	"strings"

	"notekeep-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIdLocalKey = "user_id"

// AuthRequired extracts the bearer token, validates it and stores the caller's
// identity in ctx.Locals. It never touches any store; handlers behind it can
// trust CallerId.
func AuthRequired(tokens *token.Manager) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token format"})
		}

		identity, err := tokens.Validate(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		ctx.Locals(userIdLocalKey, identity.UserId)
		return ctx.Next()
	}
}

// CallerId returns the authenticated user id placed by AuthRequired.
func CallerId(ctx *fiber.Ctx) uuid.UUID {
	if id, ok := ctx.Locals(userIdLocalKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
