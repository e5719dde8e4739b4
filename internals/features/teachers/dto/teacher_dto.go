package dto

import "strings"

type UploadTeacherRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,len=10,numeric"`
	Class      int    `json:"class" validate:"required,min=1,max=12"`
	SchoolName string `json:"schoolName" validate:"required"`

	// Caller identity when no token is presented.
	AdminPhone string `json:"adminPhone" validate:"omitempty"`
}

func (r *UploadTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.AdminPhone = strings.TrimSpace(r.AdminPhone)
}

type BulkTeacherRow struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Class int    `json:"class"`
}

type BulkUploadTeachersRequest struct {
	SchoolName string           `json:"schoolName" validate:"required"`
	AdminPhone string           `json:"adminPhone" validate:"omitempty"`
	Teachers   []BulkTeacherRow `json:"teachers" validate:"required,min=1,dive"`
}

func (r *BulkUploadTeachersRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.AdminPhone = strings.TrimSpace(r.AdminPhone)
	for i := range r.Teachers {
		r.Teachers[i].Name = strings.TrimSpace(r.Teachers[i].Name)
		r.Teachers[i].Phone = strings.TrimSpace(r.Teachers[i].Phone)
	}
}

// RowFailure reports one rejected bulk row; the remaining rows still land.
type RowFailure struct {
	Row    int    `json:"row"`
	Phone  string `json:"phone,omitempty"`
	Reason string `json:"reason"`
}
