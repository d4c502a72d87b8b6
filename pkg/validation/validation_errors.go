package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule identifies a failed rule as "Field.tag", e.g. "Message.min".
func Rule(e validator.FieldError) string {
	return e.StructField() + "." + e.Tag()
}

// MapErrors converts validator errors into the error registered for each
// failed rule. Order follows struct field order and duplicates are dropped.
// Anything that is not a validator.ValidationErrors is returned as is.
func MapErrors(err error, rules map[string]error) []error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []error{err}
	}

	var mapped []error
	seen := make(map[error]bool)
	for _, e := range validationErrors {
		m, ok := rules[Rule(e)]
		if !ok {
			m = fmt.Errorf("%s: validation failed (%s)", formatCamelCase(e.StructField()), e.Tag())
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		mapped = append(mapped, m)
	}
	return mapped
}

// Messages flattens errs into their texts.
func Messages(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
