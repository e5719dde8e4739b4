package constants

// Backend role labels (stored in the database).
const (
	RoleOrganizationAdmin = "OrganizationAdmin"
	RoleNGOAdmin          = "NGOAdmin"
	RoleSchoolAdmin       = "SchoolAdmin"
	RoleProfessional      = "Professional"
	RoleTeacher           = "Teacher"
	RoleParent            = "Parent"
)

// Frontend role labels (what clients send and display).
const (
	FrontendOrganizationAdmin = "OrganizationAdmin"
	FrontendNGOMaster         = "NGO Master"
	FrontendAdmin             = "Admin"
	FrontendProfessional      = "Professional"
	FrontendTeacher           = "Teacher"
	FrontendParent            = "Parent"
)

var roleMapping = map[string]string{
	FrontendOrganizationAdmin: RoleOrganizationAdmin,
	FrontendNGOMaster:         RoleNGOAdmin,
	FrontendAdmin:             RoleSchoolAdmin,
	FrontendProfessional:      RoleProfessional,
	FrontendTeacher:           RoleTeacher,
	FrontendParent:            RoleParent,
}

var reverseRoleMapping = map[string]string{
	RoleOrganizationAdmin: FrontendOrganizationAdmin,
	RoleNGOAdmin:          FrontendNGOMaster,
	RoleSchoolAdmin:       FrontendAdmin,
	RoleProfessional:      FrontendProfessional,
	RoleTeacher:           FrontendTeacher,
	RoleParent:            FrontendParent,
}

// RoleHierarchy orders roles by seniority; 1 is the most senior.
var RoleHierarchy = map[string]int{
	RoleOrganizationAdmin: 1,
	RoleNGOAdmin:          2,
	RoleSchoolAdmin:       3,
	RoleProfessional:      4,
	RoleTeacher:           5,
	RoleParent:            6,
}

// NormalizeRole maps a frontend label to the backend label.
// Unmapped labels pass through unchanged.
func NormalizeRole(role string) string {
	if mapped, ok := roleMapping[role]; ok {
		return mapped
	}
	return role
}

// DenormalizeRole maps a backend label back to the frontend label.
// Unmapped labels pass through unchanged.
func DenormalizeRole(role string) string {
	if mapped, ok := reverseRoleMapping[role]; ok {
		return mapped
	}
	return role
}

// HasPermission reports whether actorRole is at least as senior as requiredRole.
// Unknown roles never grant permission.
func HasPermission(actorRole, requiredRole string) bool {
	actorLevel, okActor := RoleHierarchy[actorRole]
	requiredLevel, okRequired := RoleHierarchy[requiredRole]
	return okActor && okRequired && actorLevel <= requiredLevel
}

func IsAdminRole(role string) bool {
	switch role {
	case RoleOrganizationAdmin, RoleNGOAdmin, RoleSchoolAdmin:
		return true
	}
	return false
}

func IsUserRole(role string) bool {
	switch role {
	case RoleProfessional, RoleTeacher, RoleParent:
		return true
	}
	return false
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOrganizationAdmin,
		RoleNGOAdmin,
		RoleSchoolAdmin,
		RoleProfessional,
		RoleTeacher,
		RoleParent,
	}

	// AdminRoles is also the identity-probe order for admin accounts.
	AdminRoles = []string{
		RoleOrganizationAdmin,
		RoleNGOAdmin,
		RoleSchoolAdmin,
	}

	SubmitterRoles = []string{
		RoleProfessional,
		RoleTeacher,
		RoleParent,
	}
)
