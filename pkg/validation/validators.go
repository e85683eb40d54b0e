package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// E164-like phone: leading +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+[0-9]{7,15}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("control_type", ControlType)
	_ = v.RegisterValidation("e164_phone", E164Phone)
}

// ControlType restricts cache control messages to the two supported types.
func ControlType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "SKIP_WAITING", "CLEAR_CACHE":
		return true
	}
	return false
}

// E164Phone validates a normalized +<countrycode><number> phone string.
func E164Phone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// IsE164 reports whether a normalized phone number looks sendable.
func IsE164(s string) bool {
	return phoneRegex.MatchString(s)
}
