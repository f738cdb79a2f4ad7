package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/backend/internal/interfaces/http/dto"
)

// SetupValidator makes validation errors report json field names.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FormatValidationErrors turns validator errors into response details.
// Non-validator errors collapse into a single generic detail.
func FormatValidationErrors(err error) []dto.ValidationDetail {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.ValidationDetail{{Field: "body", Message: "malformed request body"}}
	}

	details := make([]dto.ValidationDetail, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, dto.ValidationDetail{
			Field:   fieldErr.Field(),
			Message: validationMessage(fieldErr),
		})
	}
	return details
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "uuid":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed validation: %s", fieldErr.Tag())
	}
}
