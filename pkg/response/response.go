package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "mobilicity/pkg/errors"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Ack mirrors the acknowledgement bodies the frontend expects: state
// conflicts (duplicate registration, duplicate booking) travel in a 200
// response, not as an HTTP error.
type Ack struct {
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message,omitempty"`
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "email":
			message = field + " must be a valid email address"
		case "oneof":
			message = field + " must be one of: " + err.Param()
		case "gt":
			message = field + " must be greater than " + err.Param()
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{
			Code:    "VALIDATION_ERROR",
			Message: message,
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid input data",
	})
}
