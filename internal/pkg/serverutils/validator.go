package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and maps the
// first failure to the fixed per-field message of the API contract
// ("Content is required", "Title is required", ...).
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return NewValidationError("Invalid request")
	}

	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		return NewValidationError(fmt.Sprintf("%s is required", fieldErr.Field()))
	case "email":
		return NewValidationError("Email is invalid")
	case "min":
		return NewValidationError(fmt.Sprintf("%s is too short", fieldErr.Field()))
	default:
		return NewValidationError(fmt.Sprintf("%s is invalid", fieldErr.Field()))
	}
}
