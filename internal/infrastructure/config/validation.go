package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

const crisisDateLayout = "2006-01-02"

// Validator wraps go-playground/validator with the campaign rules registered
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that also understands rating letters
// and the crisis window ordering
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("rating", validateRating)
	v.RegisterStructValidation(validateCrisisWindow, AcquisitionConfig{})
	return &Validator{validate: v}
}

// Validate checks a struct against its validate tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func validateRating(fl validator.FieldLevel) bool {
	_, err := shared.ParseRating(fl.Field().String())
	return err == nil
}

// validateCrisisWindow rejects a crisis that ends before it starts
func validateCrisisWindow(sl validator.StructLevel) {
	acq := sl.Current().Interface().(AcquisitionConfig)
	if acq.CrisisStart == "" || acq.CrisisEnd == "" {
		return
	}
	start, errStart := time.Parse(crisisDateLayout, acq.CrisisStart)
	end, errEnd := time.Parse(crisisDateLayout, acq.CrisisEnd)
	if errStart != nil || errEnd != nil {
		// datetime tag reports the bad format
		return
	}
	if end.Before(start) {
		sl.ReportError(acq.CrisisEnd, "CrisisEnd", "crisis_end", "after_crisis_start", "")
	}
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s: failed %s (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
