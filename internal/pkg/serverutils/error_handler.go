package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ratesignal-be/internal/apperrors"
)

// ErrorHandlerMiddleware maps the app error taxonomy onto HTTP statuses.
// ValidationError -> 400, NotFound -> 404, StorageUnavailable -> 503,
// anything else -> 500 with a generic message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(ve.Error()))
		}

		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(nf.Error()))
		}

		var su *apperrors.StorageUnavailableError
		if errors.As(err, &su) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse("storage temporarily unavailable"))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
