package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Tag     string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "min":
		return fmt.Sprintf("%s is below its minimum", e.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the allowed values", e.Field)
	default:
		return fmt.Sprintf("%s failed validation", e.Field)
	}
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Validator validates configurations against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a configuration validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateConfig validates a configuration struct, translating any tag
// violations into ValidationErrors.
func (v *Validator) ValidateConfig(config *Config) error {
	if config == nil {
		return ValidationErrors{
			{
				Field:   "config",
				Tag:     "required",
				Message: "config is nil",
			},
		}
	}

	err := v.validate.Struct(config)
	if err == nil {
		return nil
	}

	var validationErrors ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			validationErrors = append(validationErrors, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Value(),
			})
		}
		return validationErrors
	}

	return ValidationErrors{{Message: err.Error()}}
}
