package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel carries its organization id denormalized from the school at
// creation time; identity resolution still derives it transitively.
type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`

	TeacherName  string `gorm:"column:teacher_name;type:varchar(100);not null" json:"teacher_name"`
	TeacherClass int    `gorm:"column:teacher_class;not null" json:"teacher_class"`
	TeacherPhone string `gorm:"column:teacher_phone;type:varchar(20);not null;index" json:"teacher_phone"`

	TeacherSchoolID       uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`
	TeacherOrganizationID uuid.UUID `gorm:"column:teacher_organization_id;type:uuid;not null;index" json:"teacher_organization_id"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
