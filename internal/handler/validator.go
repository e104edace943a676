package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations
	_ = v.RegisterValidation("isodate", validateISODate)
	_ = v.RegisterValidation("intensity", validateIntensity)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "isodate":
			errs[field] = "Must be a valid date in YYYY-MM-DD format"
		case "intensity":
			errs[field] = "Must be one of LOW, MEDIUM, HIGH"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gtefield":
			errs[field] = fmt.Sprintf("Must not be below %s", strings.ToLower(e.Param()))
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateISODate accepts empty values and real calendar dates in
// YYYY-MM-DD form. "2026-02-30" fails, "2026-1-5" fails.
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	// time.Parse normalizes some malformed inputs; require round-trip equality
	return parsed.Format("2006-01-02") == value
}

// ValidIntensities defines the supported intensity levels
var ValidIntensities = map[string]bool{
	"LOW":    true,
	"MEDIUM": true,
	"HIGH":   true,
}

// validateIntensity checks the intensity enum, allowing empty
func validateIntensity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return ValidIntensities[value]
}
