package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "loglevel" accepts the slog level names, case-insensitively.
	if err := validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, ok := logLevels[strings.ToLower(fl.Field().String())]
		return ok
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
