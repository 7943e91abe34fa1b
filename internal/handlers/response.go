package handlers

import (
	"errors"

	"grocery/internal/errs"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// writeError maps service errors to HTTP statuses. Unexpected errors are
// logged and reported without details.
func writeError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":       "error",
			"errorMessage": ve.Message,
			"code":         ve.Code,
			"field":        ve.Field,
		})
	case errors.Is(err, errs.ErrInvalidInput), errors.Is(err, errs.ErrAlreadyExists):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid credentials")
	default:
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.Error(err),
		)
		return errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":       "error",
		"errorMessage": msg,
	})
}

func success(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": msg,
	})
}

// parseBody decodes the request body into out or writes a 400 response.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return true, nil
}
