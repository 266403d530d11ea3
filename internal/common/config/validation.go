package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Nach0t/siss/internal/common/logging"
)

// LogValidationErrors logs each field error inside a validator error in a
// form that names the offending config key.
func LogValidationErrors(err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err != nil {
			logging.Errorf("ConfigError: %v", err)
		}
		return
	}
	for _, fieldError := range validationErrors {
		fieldName := stripPrefix(fieldError.Namespace())
		switch tag := fieldError.Tag(); tag {
		case "required":
			logging.Errorf("ConfigError: Field %s is required but was not found", fieldName)
		default:
			logging.Errorf("ConfigError: Field %s has invalid value %v: %s", fieldName, fieldError.Value(), tag)
		}
	}
}

// stripPrefix removes the root struct name from a validator namespace, e.g.
// "RunConfig.Queue.Capacity" becomes "Queue.Capacity".
func stripPrefix(s string) string {
	if idx := strings.Index(s, "."); idx != -1 {
		return s[idx+1:]
	}
	return s
}
