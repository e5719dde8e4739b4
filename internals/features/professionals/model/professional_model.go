package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProfessionalModel is an external clinician. The professional side of the
// school assignment stores school IDS, unlike admins who store school names.
type ProfessionalModel struct {
	ProfessionalID uuid.UUID `gorm:"column:professional_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"professional_id"`

	ProfessionalName       string `gorm:"column:professional_name;type:varchar(100);not null" json:"professional_name"`
	ProfessionalNumber     string `gorm:"column:professional_number;type:varchar(20);not null;index" json:"professional_number"`
	ProfessionalAddress    string `gorm:"column:professional_address;type:text;not null" json:"professional_address"`
	ProfessionalWorkEmail  string `gorm:"column:professional_work_email;type:varchar(150);not null" json:"professional_work_email"`
	ProfessionalClinicName string `gorm:"column:professional_clinic_name;type:varchar(150);not null" json:"professional_clinic_name"`

	// External identifier clients use on the assignment path ("96" and the like).
	ProfessionalCode string `gorm:"column:professional_code;type:varchar(30);not null;uniqueIndex" json:"professional_code"`

	ProfessionalOrganizationID uuid.UUID `gorm:"column:professional_organization_id;type:uuid;not null;index" json:"professional_organization_id"`

	ProfessionalAssignedSchools pq.StringArray `gorm:"column:professional_assigned_schools;type:text[];not null;default:'{}'" json:"professional_assigned_schools"`

	ProfessionalCreatedAt time.Time `gorm:"column:professional_created_at;autoCreateTime" json:"professional_created_at"`
	ProfessionalUpdatedAt time.Time `gorm:"column:professional_updated_at;autoUpdateTime" json:"professional_updated_at"`
}

func (ProfessionalModel) TableName() string {
	return "professionals"
}
