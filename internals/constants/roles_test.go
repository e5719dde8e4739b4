package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleNGOAdmin, NormalizeRole("NGO Master"))
	assert.Equal(t, RoleSchoolAdmin, NormalizeRole("Admin"))
	assert.Equal(t, RoleOrganizationAdmin, NormalizeRole("OrganizationAdmin"))
	assert.Equal(t, RoleParent, NormalizeRole("Parent"))

	// unmapped labels pass through unchanged
	assert.Equal(t, "Clerk", NormalizeRole("Clerk"))
	assert.Equal(t, "", NormalizeRole(""))
}

func TestDenormalizeRole(t *testing.T) {
	assert.Equal(t, "NGO Master", DenormalizeRole(RoleNGOAdmin))
	assert.Equal(t, "Admin", DenormalizeRole(RoleSchoolAdmin))
	assert.Equal(t, "Teacher", DenormalizeRole(RoleTeacher))
	assert.Equal(t, "Clerk", DenormalizeRole("Clerk"))
}

func TestNormalizeDenormalizeRoundTrip(t *testing.T) {
	for _, role := range AllRoles {
		assert.Equal(t, role, NormalizeRole(DenormalizeRole(role)), role)
	}
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleOrganizationAdmin, RoleParent))
	assert.True(t, HasPermission(RoleNGOAdmin, RoleSchoolAdmin))
	assert.True(t, HasPermission(RoleTeacher, RoleTeacher))

	assert.False(t, HasPermission(RoleParent, RoleTeacher))
	assert.False(t, HasPermission(RoleSchoolAdmin, RoleNGOAdmin))

	// unknown roles never grant permission, either side
	assert.False(t, HasPermission("Clerk", RoleParent))
	assert.False(t, HasPermission(RoleOrganizationAdmin, "Clerk"))
	assert.False(t, HasPermission("", ""))
}

func TestRoleHierarchyCoversAllRoles(t *testing.T) {
	assert.Len(t, RoleHierarchy, len(AllRoles))
	seen := map[int]string{}
	for _, role := range AllRoles {
		level, ok := RoleHierarchy[role]
		assert.True(t, ok, role)
		_, dup := seen[level]
		assert.False(t, dup, "duplicate level %d", level)
		seen[level] = role
	}
}

func TestRoleGroups(t *testing.T) {
	for _, role := range AdminRoles {
		assert.True(t, IsAdminRole(role), role)
		assert.False(t, IsUserRole(role), role)
	}
	for _, role := range SubmitterRoles {
		assert.True(t, IsUserRole(role), role)
		assert.False(t, IsAdminRole(role), role)
	}
}
