package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dsiku_backend/internals/constants"
	"dsiku_backend/internals/helpers/errs"
)

func TestAddToSet(t *testing.T) {
	set := []string{}
	set = AddToSet(set, "a")
	set = AddToSet(set, "b")
	assert.Equal(t, []string{"a", "b"}, set)

	// idempotent
	set = AddToSet(set, "a")
	assert.Equal(t, []string{"a", "b"}, set)
}

func TestRemoveFromSet(t *testing.T) {
	set := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c"}, RemoveFromSet(set, "b"))

	// absent value is a no-op
	assert.Equal(t, []string{"a", "b", "c"}, RemoveFromSet(set, "x"))

	// duplicates all go
	assert.Equal(t, []string{"b"}, RemoveFromSet([]string{"a", "b", "a"}, "a"))

	assert.Empty(t, RemoveFromSet(nil, "a"))
}

func TestMirrored(t *testing.T) {
	school := []string{"pro-1", "pro-2"}
	pro := []string{"school-1"}

	// recorded on both sides: nothing left to write
	assert.True(t, Mirrored(school, "pro-1", pro, "school-1"))

	// one-sided links still need repair, so they are not mirrored
	assert.False(t, Mirrored(school, "pro-2", pro, "school-9"))
	assert.False(t, Mirrored(school, "pro-9", pro, "school-1"))

	assert.False(t, Mirrored(nil, "pro-1", nil, "school-1"))
}

func TestCanAssignAdminOrgLevelUnbounded(t *testing.T) {
	many := []string{"School A", "School B", "School C"}
	assert.NoError(t, CanAssignAdmin(constants.RoleOrganizationAdmin, many, "School D"))
	assert.NoError(t, CanAssignAdmin(constants.RoleNGOAdmin, many, "School D"))
}

func TestCanAssignAdminSchoolAdminSingleSchool(t *testing.T) {
	assert.NoError(t, CanAssignAdmin(constants.RoleSchoolAdmin, nil, "School A"))

	// re-assigning the same school is idempotent
	assert.NoError(t, CanAssignAdmin(constants.RoleSchoolAdmin, []string{"School A"}, "School A"))

	// a second school is refused
	err := CanAssignAdmin(constants.RoleSchoolAdmin, []string{"School A"}, "School B")
	assert.ErrorIs(t, err, errs.ErrValidationFailed)
}
