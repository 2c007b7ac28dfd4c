package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/wavelink-comms/wavelink-auth/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config == nil {
		return errors.New(errors.ErrConfigInvalid, "configuration is nil")
	}

	// Validate struct tags
	if err := validate.Struct(config); err != nil {
		return formatValidationError(err)
	}

	// A signature secret without a method is fine (the generator
	// defaults to md5hash), but a method without a secret cannot sign
	// anything.
	if config.Credentials.SignatureMethod != "" && config.Credentials.SignatureSecret == "" {
		return errors.New(
			errors.ErrConfigMissingField,
			"signature_secret is required when signature_method is set",
		).WithField("signature_method", config.Credentials.SignatureMethod)
	}

	return nil
}

// formatValidationError formats validator errors into application errors
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(
			errors.ErrValidationFailed,
			err,
			"validation failed",
		)
	}

	// Surface the first validation error for simplicity
	if len(validationErrs) > 0 {
		fieldErr := validationErrs[0]
		code := errors.ErrValidationFailed
		if fieldErr.Tag() == "required" {
			code = errors.ErrMissingRequired
		}
		return errors.New(
			code,
			fmt.Sprintf("validation failed for field '%s'", fieldErr.Field()),
		).WithFields(map[string]interface{}{
			"field": fieldErr.Field(),
			"tag":   fieldErr.Tag(),
		})
	}

	return errors.New(errors.ErrValidationFailed, "validation failed")
}
