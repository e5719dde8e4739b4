package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DrawingSection is one scored drawing (house, tree or person). Embedded
// three times with column prefixes. Image path is an opaque string; storage
// lives outside this service.
type DrawingSection struct {
	ImagePath   *string    `gorm:"column:image_path;type:text" json:"image_path,omitempty"`
	Score       float64    `gorm:"column:score;not null;default:0" json:"score"`
	ManualScore *float64   `gorm:"column:manual_score" json:"manual_score,omitempty"`
	LabeledBy   *string    `gorm:"column:labeled_by;type:varchar(20)" json:"labeled_by,omitempty"`
	LabeledAt   *time.Time `gorm:"column:labeled_at" json:"labeled_at,omitempty"`
}

// ReportModel is immutable after creation except for the manual-score fields
// of its drawing sections. School name, organization and clinic are frozen at
// submission time on purpose.
type ReportModel struct {
	ReportID uuid.UUID `gorm:"column:report_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`

	ReportClinicName string `gorm:"column:report_clinic_name;type:varchar(150)" json:"report_clinic_name"`
	ReportChildName  string `gorm:"column:report_child_name;type:varchar(100)" json:"report_child_name"`
	ReportAge        *int   `gorm:"column:report_age" json:"report_age,omitempty"`

	ReportSchoolID       *uuid.UUID `gorm:"column:report_school_id;type:uuid;index" json:"report_school_id,omitempty"`
	ReportSchoolName     string     `gorm:"column:report_school_name;type:varchar(150)" json:"report_school_name"`
	ReportOrganizationID *uuid.UUID `gorm:"column:report_organization_id;type:uuid;index" json:"report_organization_id,omitempty"`

	ReportOptionalNotes string `gorm:"column:report_optional_notes;type:text" json:"report_optional_notes"`
	ReportFlagForLabel  bool   `gorm:"column:report_flag_for_label;not null;default:false" json:"report_flag_for_label"`
	ReportLabelling     string `gorm:"column:report_labelling;type:text" json:"report_labelling"`

	House  DrawingSection `gorm:"embedded;embeddedPrefix:report_house_" json:"house"`
	Tree   DrawingSection `gorm:"embedded;embeddedPrefix:report_tree_" json:"tree"`
	Person DrawingSection `gorm:"embedded;embeddedPrefix:report_person_" json:"person"`

	ReportHouseAnswers  datatypes.JSONMap `gorm:"column:report_house_answers;type:jsonb" json:"report_house_answers"`
	ReportTreeAnswers   datatypes.JSONMap `gorm:"column:report_tree_answers;type:jsonb" json:"report_tree_answers"`
	ReportPersonAnswers datatypes.JSONMap `gorm:"column:report_person_answers;type:jsonb" json:"report_person_answers"`

	// Set only for parent/teacher submissions; professional "personal"
	// submissions carry no child reference.
	ReportChildID *uuid.UUID `gorm:"column:report_child_id;type:uuid;index" json:"report_child_id,omitempty"`

	ReportSubmittedRole  string    `gorm:"column:report_submitted_role;type:varchar(30);not null" json:"report_submitted_role"`
	ReportSubmittedPhone string    `gorm:"column:report_submitted_phone;type:varchar(20);not null;index" json:"report_submitted_phone"`
	ReportSubmittedAt    time.Time `gorm:"column:report_submitted_at;autoCreateTime" json:"report_submitted_at"`

	ReportCreatedAt time.Time `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt time.Time `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}
