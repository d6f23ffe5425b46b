package apperrors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// ErrNotFound marks lookups that matched no row, including rows hidden
// from the requesting user by ownership scoping.
var ErrNotFound = errors.New("not found")

// ValidationError is a client input error. Message carries a single
// rejection reason; Fields carries per-field reasons for payloads.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, field+": "+reason)
	}
	return strings.Join(parts, "; ")
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewFieldValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// ConstraintError is a database uniqueness violation translated into a
// client-facing message.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func IsConstraint(err error) bool {
	var target *ConstraintError
	return errors.As(err, &target)
}

// IsUniqueViolation recognizes unique constraint failures from both
// postgres and the sqlite driver used in tests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// TranslateWrite converts a unique violation from an insert or update
// into a ConstraintError with the given message. Other errors pass
// through unchanged.
func TranslateWrite(err error, message string) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return &ConstraintError{Message: message}
	}
	return err
}
