package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationModel is the top-level tenant boundary. Organizations are
// deactivated rather than hard-deleted; schools keep referencing them.
type OrganizationModel struct {
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"organization_id"`

	OrganizationName          string  `gorm:"column:organization_name;type:varchar(150);not null;uniqueIndex" json:"organization_name"`
	OrganizationDescription   *string `gorm:"column:organization_description;type:text" json:"organization_description,omitempty"`
	OrganizationAddress       string  `gorm:"column:organization_address;type:text;not null" json:"organization_address"`
	OrganizationContactNumber string  `gorm:"column:organization_contact_number;type:varchar(20);not null" json:"organization_contact_number"`
	OrganizationEmail         *string `gorm:"column:organization_email;type:varchar(150)" json:"organization_email,omitempty"`

	OrganizationCreatedBy uuid.UUID `gorm:"column:organization_created_by;type:uuid;not null;index" json:"organization_created_by"`
	OrganizationIsActive  bool      `gorm:"column:organization_is_active;not null;default:true;index" json:"organization_is_active"`

	// Hierarchy placeholder; depth > 1 is unused.
	OrganizationParentID *uuid.UUID `gorm:"column:organization_parent_id;type:uuid" json:"organization_parent_id,omitempty"`
	OrganizationLevel    string     `gorm:"column:organization_level;type:varchar(20);not null;default:'school'" json:"organization_level"`

	OrganizationCreatedAt time.Time `gorm:"column:organization_created_at;autoCreateTime" json:"organization_created_at"`
	OrganizationUpdatedAt time.Time `gorm:"column:organization_updated_at;autoUpdateTime" json:"organization_updated_at"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
