package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SchoolModel holds the denormalized reference arrays for its side of the
// mirrored school<->professional and school<->admin relationships. All three
// arrays carry entity ids as strings.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_id"`

	SchoolName          string `gorm:"column:school_name;type:varchar(150);not null;index" json:"school_name"`
	SchoolAddress       string `gorm:"column:school_address;type:text;not null" json:"school_address"`
	SchoolUdiseNumber   string `gorm:"column:school_udise_number;type:varchar(30);not null;uniqueIndex" json:"school_udise_number"`
	SchoolContactNumber string `gorm:"column:school_contact_number;type:varchar(20);not null" json:"school_contact_number"`

	SchoolOrganizationID uuid.UUID `gorm:"column:school_organization_id;type:uuid;not null;index" json:"school_organization_id"`

	SchoolTeachers              pq.StringArray `gorm:"column:school_teachers;type:text[];not null;default:'{}'" json:"school_teachers"`
	SchoolAssignedProfessionals pq.StringArray `gorm:"column:school_assigned_professionals;type:text[];not null;default:'{}'" json:"school_assigned_professionals"`
	SchoolAssignedAdmins        pq.StringArray `gorm:"column:school_assigned_admins;type:text[];not null;default:'{}'" json:"school_assigned_admins"`

	SchoolCreatedAt time.Time `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
