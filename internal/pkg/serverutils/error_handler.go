package serverutils

import (
	"errors"

	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps errors escaping handlers onto the response
// taxonomy. Unclassified errors are logged and surface as a generic 500 so no
// internal detail leaks to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if kind, ok := apperror.KindOf(err); ok {
			return ctx.Status(statusForKind(kind)).JSON(fiber.Map{"error": err.Error()})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindConflict:
		return fiber.StatusConflict
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
