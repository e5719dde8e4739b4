package dto

import "strings"

type UploadChildRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Age            int     `json:"age" validate:"required,min=3,max=18"`
	Class          *int    `json:"class" validate:"omitempty,min=1,max=12"`
	RollNumber     *string `json:"rollNumber" validate:"omitempty,max=30"`
	ParentName     *string `json:"parentName" validate:"omitempty,max=100"`
	ParentPhone    *string `json:"parentPhone" validate:"omitempty,len=10,numeric"`
	SchoolName     string  `json:"schoolName" validate:"omitempty"`
	OrganizationID string  `json:"organizationId" validate:"omitempty,uuid"`

	// Caller identity when no token is presented.
	AdminPhone string `json:"adminPhone" validate:"omitempty"`
}

func (r *UploadChildRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.AdminPhone = strings.TrimSpace(r.AdminPhone)
	if r.ParentName != nil {
		n := strings.TrimSpace(*r.ParentName)
		r.ParentName = &n
	}
	if r.ParentPhone != nil {
		p := strings.TrimSpace(*r.ParentPhone)
		r.ParentPhone = &p
	}
	if r.RollNumber != nil {
		rn := strings.TrimSpace(*r.RollNumber)
		r.RollNumber = &rn
	}
}

type BulkChildRow struct {
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Class       *int    `json:"class"`
	RollNumber  *string `json:"rollNumber"`
	ParentName  *string `json:"parentName"`
	ParentPhone *string `json:"parentPhone"`
}

type BulkUploadChildrenRequest struct {
	SchoolName string         `json:"schoolName" validate:"required"`
	AdminPhone string         `json:"adminPhone" validate:"omitempty"`
	Children   []BulkChildRow `json:"children" validate:"required,min=1,dive"`
}

func (r *BulkUploadChildrenRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.AdminPhone = strings.TrimSpace(r.AdminPhone)
	for i := range r.Children {
		r.Children[i].Name = strings.TrimSpace(r.Children[i].Name)
	}
}

type RowFailure struct {
	Row    int    `json:"row"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}
