package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Swedish person number: YYYYMMDD-XXXX
	personNumberRegex = regexp.MustCompile(`^\d{8}-\d{4}$`)

	// Calendar date: YYYY-MM-DD
	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const dateLayout = "2006-01-02"

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("person_number", PersonNumber)
	_ = v.RegisterValidation("iso_date", ISODate)
}

// PersonNumber validates the YYYYMMDD-XXXX person number format
func PersonNumber(fl validator.FieldLevel) bool {
	return personNumberRegex.MatchString(fl.Field().String())
}

// ISODate validates that a string is a real calendar date in YYYY-MM-DD form
func ISODate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if !isoDateRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse(dateLayout, val)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD string previously accepted by ISODate.
func ParseDate(val string) (time.Time, error) {
	return time.Parse(dateLayout, val)
}
