// Package validation holds the input checks used by the API handlers
// and the purchase wizard.
package validation

import (
	"fmt"
	"strings"
)

// Validator collects field errors during request validation.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator.
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = message
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string field is not blank.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, fmt.Sprintf("O campo '%s' é obrigatório", field))
}

// First returns one of the collected error messages, for APIs that
// report a single message string.
func (v *Validator) First() string {
	for _, msg := range v.Errors {
		return msg
	}
	return ""
}
