package presenters

import (
	"errors"
	"strings"

	"emenu/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Message: message,
		Errors:  errorDetail(err),
	})
}

// errorDetail flattens validation failures into a field -> reason map so API
// callers get per-field feedback instead of a single opaque string.
func errorDetail(err error) any {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[strings.ToLower(fe.Field())] = validationReason(fe)
		}
		return fields
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	return err.Error()
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
