package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the request-level error taxonomy. Anything that is not an
// AppError is treated as internal and its cause is never surfaced to callers.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// ErrUnauthorized is returned for every request without a resolvable session.
// The message is fixed; callers cannot distinguish a missing token from an
// invalid or revoked one.
var ErrUnauthorized = &AppError{
	Status:  fiber.StatusUnauthorized,
	Message: "Unauthorized",
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusNotFound,
		Message: message,
	}
}
