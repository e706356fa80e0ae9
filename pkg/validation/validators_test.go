package validation_test

import (
	"testing"

	"recruitment-portal-api/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestPersonNumber(t *testing.T) {
	v := newValidator()

	valid := []string{"19900101-1234", "20041231-0001"}
	for _, s := range valid {
		assert.NoError(t, v.Var(s, "person_number"), "%q should be valid", s)
	}

	invalid := []string{"", "19900101", "199001011234", "1990-0101-1234", "19900101-12345", "abcdefgh-1234"}
	for _, s := range invalid {
		assert.Error(t, v.Var(s, "person_number"), "%q should be invalid", s)
	}
}

func TestISODate(t *testing.T) {
	v := newValidator()

	valid := []string{"2026-06-01", "2024-02-29"}
	for _, s := range valid {
		assert.NoError(t, v.Var(s, "iso_date"), "%q should be valid", s)
	}

	// 2026-02-29 matches the pattern but is not a real calendar date
	invalid := []string{"", "2026-6-1", "01/06/2026", "2026-13-01", "2026-02-29"}
	for _, s := range invalid {
		assert.Error(t, v.Var(s, "iso_date"), "%q should be invalid", s)
	}
}

func TestParseDate(t *testing.T) {
	d, err := validation.ParseDate("2026-06-01")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = validation.ParseDate("not-a-date")
	assert.Error(t, err)
}
