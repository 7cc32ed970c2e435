package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks configuration structs against their validate tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs the struct tags and folds any failures into one readable
// error naming each offending field.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, fmt.Sprintf("%s: %s rule failed (got '%v')", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(lines, "; "))
}

// ValidateConfig checks the full configuration.
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
