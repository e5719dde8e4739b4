// Sentinel error taxonomy for the screening backend. Handlers and services
// return (or wrap) these so the transport layer can map every failure to a
// stable error_code; nothing else may escape a handler.
package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrIdentityNotFound: no identity record matches phone (+role).
	ErrIdentityNotFound = errors.New("no identity found for phone number")

	// ErrForbidden: organization boundary violated.
	ErrForbidden = errors.New("access denied: cannot access data outside your organization")

	// ErrNotFound: an entity referenced by a natural key does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict: uniqueness violation (organization name, UDISE, phone).
	ErrConflict = errors.New("already exists")

	// ErrHasDependents: delete blocked by live references.
	ErrHasDependents = errors.New("entity still has active references")

	// ErrValidationFailed: missing or malformed required field.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInternalInconsistency: a multi-document write completed partially.
	// Logged and surfaced as a generic failure, never swallowed.
	ErrInternalInconsistency = errors.New("partial write: data may be inconsistent, retry the operation")
)

// Code returns the machine-checkable discriminator for err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrIdentityNotFound):
		return "IDENTITY_NOT_FOUND"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrHasDependents):
		return "HAS_DEPENDENTS"
	case errors.Is(err, ErrValidationFailed):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrInternalInconsistency):
		return "INTERNAL_INCONSISTENCY"
	default:
		return "INTERNAL_ERROR"
	}
}

// Status maps err onto an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrIdentityNotFound):
		return fiber.StatusForbidden
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrHasDependents):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrValidationFailed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// NotFoundf wraps ErrNotFound naming the missing entity.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Conflictf wraps ErrConflict naming the duplicated field.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}

// Validationf wraps ErrValidationFailed with a field-level message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidationFailed)
}

// HasDependents wraps ErrHasDependents listing the non-empty reference
// categories, e.g. "teachers: 2, children: 5".
func HasDependents(counts map[string]int64) error {
	parts := make([]string, 0, len(counts))
	for category, n := range counts {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", category, n))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	sort.Strings(parts)
	return fmt.Errorf("%s (%s): %w", "remove references first", strings.Join(parts, ", "), ErrHasDependents)
}
