package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"go-resume-collector/pkg/validation"
)

type phoneField struct {
	Number string `validate:"contact_number"`
}

type dateField struct {
	DOB string `validate:"past_date"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestContactNumber(t *testing.T) {
	v := newValidator()

	valid := []string{
		"9876543210",
		"+919876543210",
		"98765 43210",
		"987-654-3210-99",
		"",
	}
	for _, num := range valid {
		assert.NoError(t, v.Struct(phoneField{Number: num}), "expected %q to validate", num)
	}

	invalid := []string{
		"12345",
		"abcdefghij",
		"98765432101234567",
	}
	for _, num := range invalid {
		assert.Error(t, v.Struct(phoneField{Number: num}), "expected %q to fail", num)
	}
}

func TestPastDate(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(dateField{DOB: "1995-06-15"}))
	assert.Error(t, v.Struct(dateField{DOB: "2999-01-01"}), "future date")
	assert.Error(t, v.Struct(dateField{DOB: "1850-01-01"}), "before 1900")
	assert.Error(t, v.Struct(dateField{DOB: "15-06-1995"}), "wrong format")
	assert.Error(t, v.Struct(dateField{DOB: "not-a-date"}))
}
