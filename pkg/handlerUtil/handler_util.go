package handlerUtil

import (
	"errors"

	"DentScanGolang/pkg/log"
	"DentScanGolang/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle translates domain errors into JSON responses. Every domain
// sentinel carries its HTTP status, so anything else is a 500.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unhandled internal error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]fiber.Map, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fiber.Map{
				"field": fieldErr.Field(),
				"rule":  fieldErr.Tag(),
			})
		}

		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Request validation failed")

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Warn("Malformed request body")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Malformed request body",
	})
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
	}).Warn("Unauthorized request")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
		"error": "Request timed out",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}
