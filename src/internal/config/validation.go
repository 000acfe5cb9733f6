package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"

	"github.com/jutil-go/jutil/src/internal/log"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "log_level":
		return fmt.Sprintf("must be a log level name or a quoted number between \"1\" and \"%d\"", len(log.Levels()))
	case "help_template":
		return "must be a template with balanced {{ }} tags"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "log.level", "help.flag_template")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("log_level", validateLogLevel); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("help_template", validateHelpTemplate); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.Log == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "log",
			Message:   "configuration must contain 'log' section",
		})
	} else if err := validate.Struct(c.Log); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "log")...)
	}

	if c.Help == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "help",
			Message:   "configuration must contain 'help' section",
		})
	} else if err := validate.Struct(c.Help); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "help")...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func convertValidatorErrors(err error, prefix string) ValidationErrors {
	var result ValidationErrors

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{FieldPath: prefix, Message: err.Error()}}
	}

	for _, e := range validationErrs {
		result = append(result, ValidationError{
			FieldPath: prefix + "." + e.Field(),
			Message:   getValidationMessage(e),
		})
	}
	return result
}

// Custom validator: threshold name, alias or number
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := log.ParseLevel(fl.Field().String())
	return err == nil
}

// Custom validator: fasttemplate with balanced tags
func validateHelpTemplate(fl validator.FieldLevel) bool {
	_, err := fasttemplate.NewTemplate(fl.Field().String(), "{{", "}}")
	return err == nil
}
