package errs

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCodeAndStatus(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{ErrIdentityNotFound, "IDENTITY_NOT_FOUND", fiber.StatusForbidden},
		{ErrForbidden, "FORBIDDEN", fiber.StatusForbidden},
		{ErrNotFound, "NOT_FOUND", fiber.StatusNotFound},
		{ErrConflict, "CONFLICT", fiber.StatusConflict},
		{ErrHasDependents, "HAS_DEPENDENTS", fiber.StatusBadRequest},
		{ErrValidationFailed, "VALIDATION_FAILED", fiber.StatusBadRequest},
		{ErrInternalInconsistency, "INTERNAL_INCONSISTENCY", fiber.StatusInternalServerError},
		{errors.New("anything else"), "INTERNAL_ERROR", fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, Code(tc.err), tc.err.Error())
		assert.Equal(t, tc.status, Status(tc.err), tc.err.Error())
	}
}

func TestWrappersKeepSentinel(t *testing.T) {
	err := NotFoundf("school %q", "GPS Anand Nagar")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `school "GPS Anand Nagar"`)

	err = Conflictf("admin with phone %q", "9876543210")
	assert.ErrorIs(t, err, ErrConflict)

	err = Validationf("age %d out of range", 21)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "VALIDATION_FAILED", Code(err))
}

func TestHasDependents(t *testing.T) {
	err := HasDependents(map[string]int64{
		"teachers":      2,
		"children":      5,
		"admins":        0,
		"professionals": 1,
	})
	assert.ErrorIs(t, err, ErrHasDependents)
	// zero-count categories are omitted, remainder is sorted
	assert.Contains(t, err.Error(), "children: 5, professionals: 1, teachers: 2")
	assert.NotContains(t, err.Error(), "admins")
}

func TestHasDependentsAllZero(t *testing.T) {
	assert.NoError(t, HasDependents(map[string]int64{"teachers": 0}))
	assert.NoError(t, HasDependents(nil))
}
