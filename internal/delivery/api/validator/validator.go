// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	domainerrors "shaka/internal/domain/errors"
	"shaka/internal/errors"

	"github.com/go-playground/validator/v10"
)

// isoLayouts are the accepted ISO-8601 forms, most specific first.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// RequestValidator validates request DTOs and reports violations by JSON field name.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator registered on the echo instance
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseISODate(fl.Field().String())

		return err == nil
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	fields := make([]domainerrors.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerrors.FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// ParseISODate parses a calendar date or an RFC 3339 date-time.
func ParseISODate(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("%q is not an ISO-8601 date", value)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must not be less than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must not be greater than %s", fe.Param())
	case "isodate":
		return "must be a valid ISO 8601 date string"
	case "url":
		return "must be a URL address"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
