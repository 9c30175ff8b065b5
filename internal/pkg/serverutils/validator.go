package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"innovation-hub-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks the `validate:` tags on a request DTO and wraps any
// failure in the validation sentinel so the error handler returns a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validationf("invalid request body")
	}

	var fields []string
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperror.Validationf("invalid fields: %s", strings.Join(fields, ", "))
}
