package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Validation primitives shared by both entities. Each returns a
// *ValidationError with a message the access layer can surface as-is.

// validateOneOf checks membership in a fixed, ordered set of tokens.
func validateOneOf(field, value string, allowed []string) error {
	for _, token := range allowed {
		if value == token {
			return nil
		}
	}
	return newValidationError(field, "must be one of: "+strings.Join(allowed, ", "))
}

// validateRequired checks that a text field is present and non-empty.
func validateRequired(field, value string) error {
	if value == "" {
		return newValidationError(field, "is required")
	}
	return nil
}

// validateNonNegative checks that a numeric field is >= 0.
func validateNonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return newValidationError(field, "must be non-negative")
	}
	return nil
}
