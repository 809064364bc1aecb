package web

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validationFields turns validator errors into the field map the API returns for bad input.
func validationFields(err error) map[string][]string {
	fields := make(map[string][]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["body"] = append(fields["body"], err.Error())

		return fields
	}

	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = append(fields[fieldErr.Field()], describe(fieldErr))
	}

	return fields
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("provide %s", fieldErr.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fieldErr.Field(), fieldErr.Tag())
	}
}
