package validator

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ValidationError represents a single failed field with translation support.
type ValidationError struct {
	Field             string
	Kind              ErrorKind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Kinds returns the error kinds reported for field.
func (ve ValidationErrors) Kinds(field string) []ErrorKind {
	var kinds []ErrorKind
	for _, err := range ve {
		if err.Field == field {
			kinds = append(kinds, err.Kind)
		}
	}
	return kinds
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule bound to a field.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Check runs v against value and binds the outcome to field, so that several
// validators can be combined with Apply.
func Check(field string, v Validator, value Value) Rule {
	outcome := v.Validate(value)
	return Rule{
		Check: outcome.IsValid,
		Error: outcome.ValidationError(field),
	}
}

// ValidationError converts a failed outcome into a field error.
func (o Outcome) ValidationError(field string) ValidationError {
	if o.IsValid() {
		return ValidationError{Field: field}
	}

	values := make(map[string]any, len(o.Vars)+1)
	maps.Copy(values, o.Vars)
	values["field"] = field

	return ValidationError{
		Field:             field,
		Kind:              o.Kind,
		Message:           o.Message(),
		TranslationKey:    "validation." + string(o.Kind),
		TranslationValues: values,
	}
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
