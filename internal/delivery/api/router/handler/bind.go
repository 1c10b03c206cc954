package handler

import (
	"encoding/json"
	"io"
	"reflect"
	"sort"

	domainerrors "shaka/internal/domain/errors"
	"shaka/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/labstack/echo/v4"
)

// bindStrict decodes a JSON object body into dst. Unknown keys are rejected and
// declared fields are coerced from compatible JSON types ("3" into an int),
// booleans never become strings or numbers.
func bindStrict(c echo.Context, dst any) error {
	var raw map[string]any
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return domainerrors.ErrInvalidInput.WithCause(err)
	}
	if raw == nil {
		return domainerrors.ErrInvalidInput
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domainerrors.ErrInvalidInput.WithCause(errors.New("unexpected data after JSON object"))
	}

	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       rejectBoolCoercion,
		Metadata:         &md,
		Result:           dst,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	decodeErr := decoder.Decode(raw)

	var violations []domainerrors.FieldViolation
	for _, name := range decodeErrorFields(decodeErr) {
		violations = append(violations, domainerrors.FieldViolation{Field: name, Message: "has an invalid type"})
	}

	sort.Strings(md.Unused)
	for _, key := range md.Unused {
		violations = append(violations, domainerrors.FieldViolation{Field: key, Message: "should not exist"})
	}

	if len(violations) > 0 {
		return domainerrors.NewValidationError(violations...)
	}
	if decodeErr != nil {
		return domainerrors.ErrInvalidInput.WithCause(decodeErr)
	}

	return nil
}

// rejectBoolCoercion stops weak decoding from turning true/false into "1"/"0" or 1/0.
func rejectBoolCoercion(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Bool {
		return data, nil
	}
	for to.Kind() == reflect.Pointer {
		to = to.Elem()
	}

	switch to.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil, errors.Errorf("cannot use boolean as %s", to.Kind())
	default:
		return data, nil
	}
}

// decodeErrorFields walks mapstructure's joined errors and returns the failing keys.
func decodeErrorFields(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var names []string
		for _, e := range joined.Unwrap() {
			names = append(names, decodeErrorFields(e)...)
		}

		return names
	}

	var decErr *mapstructure.DecodeError
	if errors.As(err, &decErr) {
		return []string{decErr.Name()}
	}

	return nil
}
