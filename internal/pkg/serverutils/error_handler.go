package serverutils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"innovation-hub-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware converts service errors into HTTP responses.
// Controllers just return errors, the mapping lives here.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message, nil))
		}

		switch {
		case errors.Is(err, apperror.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error(), nil))
		case errors.Is(err, apperror.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error(), nil))
		case errors.Is(err, apperror.ErrUnauthorized):
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(err.Error(), nil))
		case errors.Is(err, apperror.ErrConflict):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error(), nil))
		case errors.Is(err, apperror.ErrAnalysisInProgress):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error(), nil))
		case errors.Is(err, apperror.ErrProviderUnavailable):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(err.Error(), nil))
		}

		log.Printf("[ERROR] Unhandled error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error", nil))
	}
}
