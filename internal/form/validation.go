// Package form holds the input rules of the password form: the length field
// is required and must lie between MinLength and MaxLength.
package form

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinLength = 4
	MaxLength = 16

	// FieldPasswordLength is the field name reported in length errors.
	FieldPasswordLength = "passwordLength"
)

// ValidationError is a user-facing field error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseLength validates the raw text typed into the length field.
func ParseLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ValidationError{Field: FieldPasswordLength, Message: "Length is required"}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: FieldPasswordLength, Message: "Length must be a number"}
	}

	if err := ValidateLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateLength checks n against the allowed range.
func ValidateLength(n int) error {
	if n < MinLength {
		return ValidationError{Field: FieldPasswordLength, Message: fmt.Sprintf("Should be a min of %d characters", MinLength)}
	}
	if n > MaxLength {
		return ValidationError{Field: FieldPasswordLength, Message: fmt.Sprintf("Should be a max of %d characters", MaxLength)}
	}
	return nil
}
