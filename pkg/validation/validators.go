package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Phone: optional country code prefix, then 10-12 digits
	phoneRegex = regexp.MustCompile(`^(\+\d{1,3})?\d{10,12}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_number", ContactNumber)
	_ = v.RegisterValidation("past_date", PastDate)
}

// NormalizePhone strips spaces and dashes so formatted numbers validate
func NormalizePhone(val string) string {
	val = strings.ReplaceAll(val, " ", "")
	return strings.ReplaceAll(val, "-", "")
}

// ContactNumber validates a 10-12 digit phone number with optional country code
func ContactNumber(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(NormalizePhone(val))
}

// PastDate validates a YYYY-MM-DD date that lies strictly in the past,
// year 1900 or later
func PastDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	d, err := time.Parse("2006-01-02", val)
	if err != nil {
		return false
	}
	if d.Year() < 1900 {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}
