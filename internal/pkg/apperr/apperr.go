// Package apperr declares the error kinds shared by the domain, application and transport layers.
// Lower layers wrap one of the sentinels with fmt.Errorf("...: %w", apperr.ErrX) and the REST
// layer maps it to a status code with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint would be violated
	ErrConflict = errors.New("already exists")
	// ErrValidation is returned when input fails validation
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned for missing or invalid credentials
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller lacks the required role
	ErrForbidden = errors.New("forbidden")
)

// NotFound wraps ErrNotFound with the entity name and id
func NotFound(entity string, id interface{}) error {
	return fmt.Errorf("%s with ID %v %w", entity, id, ErrNotFound)
}

// Invalid wraps ErrValidation with a message
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// FromValidator flattens validator errors to "Field: X, Tag: Y" entries wrapped in ErrValidation.
func FromValidator(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: [%s]", ErrValidation, strings.Join(messages, "; "))
	}

	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// IsUniqueViolation reports whether a driver error is a unique constraint violation.
// Postgres (23505), MySQL (1062) and SQLite messages are recognized.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint failed")
}
