package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/textile/backend/internal/interfaces/http/dto"
)

// SetupValidator configures the gin binding validator: JSON tag names in
// error messages and decimal comparison validators (dgt, dgte).
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("dgt", decimalGreaterThan); err != nil {
		return err
	}
	if err := v.RegisterValidation("dgte", decimalGreaterThanOrEqual); err != nil {
		return err
	}
	return nil
}

func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	default:
		return decimal.Zero, false
	}
}

func decimalGreaterThan(fl validator.FieldLevel) bool {
	value, ok := decimalValue(fl)
	if !ok {
		return false
	}
	threshold, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThan(threshold)
}

func decimalGreaterThanOrEqual(fl validator.FieldLevel) bool {
	value, ok := decimalValue(fl)
	if !ok {
		return false
	}
	threshold, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThanOrEqual(threshold)
}

// FormatValidationErrors converts validator errors into response details
func FormatValidationErrors(err error) []dto.ValidationDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.ValidationDetail{{Field: "request", Message: err.Error()}}
	}

	details := make([]dto.ValidationDetail, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, dto.ValidationDetail{
			Field:   fieldErr.Field(),
			Message: getValidationMessage(fieldErr),
		})
	}
	return details
}

func getValidationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "dgt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "dgte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match the date format %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fe.Tag())
	}
}
