package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminModel covers the three administrative roles (OrganizationAdmin,
// NGOAdmin, SchoolAdmin). Assigned schools are stored by NAME here while the
// school side stores admin ids; renaming a school breaks the link silently
// (known gap, see the assignment service).
type AdminModel struct {
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"admin_id"`

	AdminName   string `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminNumber string `gorm:"column:admin_number;type:varchar(20);not null;uniqueIndex" json:"admin_number"`
	AdminRole   string `gorm:"column:admin_role;type:varchar(30);not null;index" json:"admin_role"`

	AdminOrganizationID uuid.UUID `gorm:"column:admin_organization_id;type:uuid;not null;index" json:"admin_organization_id"`

	// Legacy clients wrote either a JSON list or a comma-joined string here.
	// Always read it through AssignedSchools(); never consume the raw column.
	AdminAssignedSchoolList datatypes.JSON `gorm:"column:admin_assigned_school_list;type:jsonb;not null;default:'[]'" json:"admin_assigned_school_list"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

// AssignedSchools normalizes the stored assigned-school value to a list.
func (m *AdminModel) AssignedSchools() []string {
	return NormalizeSchoolList(m.AdminAssignedSchoolList)
}

// SetAssignedSchools stores the canonical list form.
func (m *AdminModel) SetAssignedSchools(schools []string) {
	if schools == nil {
		schools = []string{}
	}
	raw, _ := json.Marshal(schools)
	m.AdminAssignedSchoolList = datatypes.JSON(raw)
}

// NormalizeSchoolList accepts either a JSON array of strings or a JSON string
// holding a comma-joined list, and returns the canonical []string form.
// Anything else normalizes to empty.
func NormalizeSchoolList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, s := range list {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		return out
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		parts := strings.Split(joined, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				out = append(out, t)
			}
		}
		return out
	}

	return []string{}
}
