package serverutils

import (
	"fmt"
	"strings"

	"notekeep-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and folds the
// failures into a single ValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Wrap(apperror.KindValidation, "invalid request", err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s is invalid (%s)", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
	}
	return apperror.Validation(strings.Join(messages, "; "))
}
