package config

import (
	"net"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"shaka/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/bytes"
)

// databaseSchemes are the DATABASE_URL prefixes the persistence layer can open.
var databaseSchemes = []string{"mysql://", "postgres://", "postgresql://", "sqlite:", "file:"}

// Violation is one rejected environment key.
type Violation struct {
	Key     string
	Message string
}

// ConfigError lists every invalid or missing environment key.
type ConfigError struct {
	Violations []Violation
}

func (e *ConfigError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Key+": "+v.Message)
	}

	return "invalid environment configuration: " + strings.Join(parts, "; ")
}

var knownKeys = func() map[string]struct{} {
	keys := make(map[string]struct{})
	t := reflect.TypeOf(rawEnv{})
	for i := range t.NumField() {
		keys[t.Field(i).Tag.Get("koanf")] = struct{}{}
	}

	return keys
}()

var (
	envValidator     *validator.Validate
	envValidatorOnce sync.Once
)

func getEnvValidator() *validator.Validate {
	envValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return fld.Tag.Get("koanf")
		})
		_ = v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))

			return err == nil && n > 0
		})
		_ = v.RegisterValidation("bytesize", func(fl validator.FieldLevel) bool {
			_, err := bytes.Parse(fl.Field().String())

			return err == nil
		})
		_ = v.RegisterValidation("dburl", func(fl validator.FieldLevel) bool {
			return isDatabaseURL(fl.Field().String())
		})
		_ = v.RegisterValidation("dburllist", func(fl validator.FieldLevel) bool {
			for _, item := range splitList(fl.Field().String()) {
				if !isDatabaseURL(item) {
					return false
				}
			}

			return true
		})
		_ = v.RegisterValidation("cidrlist", func(fl validator.FieldLevel) bool {
			for _, item := range splitList(fl.Field().String()) {
				if _, _, err := net.ParseCIDR(item); err != nil {
					return false
				}
			}

			return true
		})
		envValidator = v
	})

	return envValidator
}

func validateRaw(raw *rawEnv) error {
	err := getEnvValidator().Struct(raw)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate env config failed")
	}

	cfgErr := &ConfigError{}
	for _, fe := range fieldErrs {
		cfgErr.Violations = append(cfgErr.Violations, Violation{
			Key:     fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return cfgErr
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when RATE_LIMIT_STORE=redis"
	case "posint":
		return "must be a positive integer, got " + strconv.Quote(fe.Value().(string))
	case "oneof":
		return "must be one of [" + fe.Param() + "], got " + strconv.Quote(fe.Value().(string))
	case "url":
		return "must be a valid URL"
	case "bytesize":
		return "must be a size such as 100KB or 1MB, got " + strconv.Quote(fe.Value().(string))
	case "dburl", "dburllist":
		return "must use one of the schemes " + strings.Join(databaseSchemes, ", ")
	case "cidrlist":
		return "must be a comma-separated list of CIDR ranges, got " + strconv.Quote(fe.Value().(string))
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func isDatabaseURL(value string) bool {
	for _, scheme := range databaseSchemes {
		if strings.HasPrefix(value, scheme) && len(value) > len(scheme) {
			return true
		}
	}

	return false
}
