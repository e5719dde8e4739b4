package model

import (
	"time"

	"github.com/google/uuid"
)

// ChildModel doubles as the Parent identity record: a parent is whoever
// matches child_parent_phone, and the parent's organization context resolves
// transitively through the child's school.
type ChildModel struct {
	ChildID uuid.UUID `gorm:"column:child_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"child_id"`

	ChildName       string  `gorm:"column:child_name;type:varchar(100);not null" json:"child_name"`
	ChildRollNumber *string `gorm:"column:child_roll_number;type:varchar(30)" json:"child_roll_number,omitempty"`

	ChildSchoolID       *uuid.UUID `gorm:"column:child_school_id;type:uuid;index" json:"child_school_id,omitempty"`
	ChildOrganizationID uuid.UUID  `gorm:"column:child_organization_id;type:uuid;not null;index" json:"child_organization_id"`

	ChildParentName  *string `gorm:"column:child_parent_name;type:varchar(100)" json:"child_parent_name,omitempty"`
	ChildParentPhone *string `gorm:"column:child_parent_phone;type:varchar(20);index" json:"child_parent_phone,omitempty"`

	ChildClass *int `gorm:"column:child_class" json:"child_class,omitempty"`
	ChildAge   int  `gorm:"column:child_age;not null" json:"child_age"`

	ChildCreatedAt time.Time `gorm:"column:child_created_at;autoCreateTime" json:"child_created_at"`
	ChildUpdatedAt time.Time `gorm:"column:child_updated_at;autoUpdateTime" json:"child_updated_at"`
}

func (ChildModel) TableName() string {
	return "children"
}
