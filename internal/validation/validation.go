// Package validation provides the declarative field-check pipeline run
// ahead of each mutating handler. Rules are ordered per route; Run
// accumulates every failure so the client sees all of them at once.
package validation

import (
	"regexp"
	"strings"

	"github.com/spec-kit/product-catalog/pkg/util"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Check evaluates a single field rule. Nil means the rule passed.
type Check func() *util.FieldError

// Run evaluates checks in order and accumulates failures.
func Run(checks ...Check) []util.FieldError {
	var errs []util.FieldError
	for _, check := range checks {
		if fieldErr := check(); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}
	return errs
}

// Required fails when the trimmed value is empty.
func Required(field, value, message string) Check {
	return func() *util.FieldError {
		if strings.TrimSpace(value) == "" {
			return &util.FieldError{Field: field, Message: message}
		}
		return nil
	}
}

// Email fails when the value does not look like an email address.
func Email(field, value, message string) Check {
	return func() *util.FieldError {
		if !emailPattern.MatchString(value) {
			return &util.FieldError{Field: field, Message: message}
		}
		return nil
	}
}

// MinLength fails when the value is shorter than min.
func MinLength(field, value string, min int, message string) Check {
	return func() *util.FieldError {
		if len(value) < min {
			return &util.FieldError{Field: field, Message: message}
		}
		return nil
	}
}

// MinFloat fails when the value is below min.
func MinFloat(field string, value, min float64, message string) Check {
	return func() *util.FieldError {
		if value < min {
			return &util.FieldError{Field: field, Message: message}
		}
		return nil
	}
}

// RequiredIfPresent applies Required only when the field appeared in the
// request body.
func RequiredIfPresent(field string, value *string, message string) Check {
	return func() *util.FieldError {
		if value == nil {
			return nil
		}
		return Required(field, *value, message)()
	}
}

// MinFloatIfPresent applies MinFloat only when the field appeared in the
// request body.
func MinFloatIfPresent(field string, value *float64, min float64, message string) Check {
	return func() *util.FieldError {
		if value == nil {
			return nil
		}
		return MinFloat(field, *value, min, message)()
	}
}
