package dto

import (
	"strings"

	"dsiku_backend/internals/features/schools/model"
)

type CreateSchoolRequest struct {
	SchoolName     string `json:"schoolName" validate:"required,min=2,max=150"`
	Address        string `json:"address" validate:"required"`
	UdiseNumber    string `json:"udiseNumber" validate:"required,min=5,max=30"`
	ContactNumber  string `json:"contactNumber" validate:"required,min=7,max=20"`
	OrganizationID string `json:"organizationId" validate:"required,uuid"`

	// Optional initial professional assignment by external code.
	ProfessionalID *string `json:"professionalID" validate:"omitempty"`
}

func (r *CreateSchoolRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.Address = strings.TrimSpace(r.Address)
	r.UdiseNumber = strings.TrimSpace(r.UdiseNumber)
	r.ContactNumber = strings.TrimSpace(r.ContactNumber)
	if r.ProfessionalID != nil {
		p := strings.TrimSpace(*r.ProfessionalID)
		r.ProfessionalID = &p
	}
}

// AssignProfessionalRequest keys the school by name and the professional by
// external code; both spellings are what the clients already send.
type AssignProfessionalRequest struct {
	SchoolName     string `json:"schoolName" validate:"required"`
	ProfessionalID string `json:"professionalID" validate:"required"`
}

func (r *AssignProfessionalRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.ProfessionalID = strings.TrimSpace(r.ProfessionalID)
}

// AssignAdminRequest keys the school by name and the admin by phone number.
type AssignAdminRequest struct {
	SchoolName string `json:"schoolName" validate:"required"`
	AdminPhone string `json:"adminPhone" validate:"required"`
}

func (r *AssignAdminRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.AdminPhone = strings.TrimSpace(r.AdminPhone)
}

type SchoolResponse struct {
	SchoolID              string   `json:"schoolId"`
	SchoolName            string   `json:"schoolName"`
	Address               string   `json:"address"`
	UdiseNumber           string   `json:"udiseNumber"`
	ContactNumber         string   `json:"contactNumber"`
	OrganizationID        string   `json:"organizationId"`
	Teachers              []string `json:"teachers"`
	AssignedProfessionals []string `json:"assignedProfessionals"`
	AssignedAdmins        []string `json:"assignedAdmins"`
}

func ToSchoolResponse(m model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:              m.SchoolID.String(),
		SchoolName:            m.SchoolName,
		Address:               m.SchoolAddress,
		UdiseNumber:           m.SchoolUdiseNumber,
		ContactNumber:         m.SchoolContactNumber,
		OrganizationID:        m.SchoolOrganizationID.String(),
		Teachers:              append([]string{}, m.SchoolTeachers...),
		AssignedProfessionals: append([]string{}, m.SchoolAssignedProfessionals...),
		AssignedAdmins:        append([]string{}, m.SchoolAssignedAdmins...),
	}
}
