package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "land-marketplace-service/pkg/errors"
)

// New returns a validator that reports json field names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s and converts failures into a single ValidationError.
func Struct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return FormatError(err)
	}
	return nil
}

// FormatError converts validator.ValidationErrors into a human-readable ValidationError.
// Other errors are returned unchanged.
func FormatError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		case "gt":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param()))
		case "nefield":
			messages = append(messages, fmt.Sprintf("%s must differ from %s", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}

	field := ""
	if len(validationErrors) == 1 {
		field = validationErrors[0].Field()
	}
	return apperrors.NewValidationError(field, "validation failed: "+strings.Join(messages, ", "))
}
