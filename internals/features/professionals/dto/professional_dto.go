package dto

import (
	"strings"

	"dsiku_backend/internals/features/professionals/model"
)

type CreateProfessionalRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Address        string `json:"address" validate:"required"`
	WorkEmail      string `json:"workEmail" validate:"required,email"`
	ClinicName     string `json:"clinicName" validate:"required,max=150"`
	ProfessionalID string `json:"professionalID" validate:"required,min=1,max=30"`
	OrganizationID string `json:"organizationId" validate:"required,uuid"`
}

func (r *CreateProfessionalRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.WorkEmail = strings.TrimSpace(r.WorkEmail)
	r.ClinicName = strings.TrimSpace(r.ClinicName)
	r.ProfessionalID = strings.TrimSpace(r.ProfessionalID)
}

type ProfessionalResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	WorkEmail       string   `json:"workEmail"`
	ClinicName      string   `json:"clinicName"`
	ProfessionalID  string   `json:"professionalID"`
	OrganizationID  string   `json:"organizationId"`
	AssignedSchools []string `json:"assignedSchools"`
}

func ToProfessionalResponse(m model.ProfessionalModel, schoolNames []string) ProfessionalResponse {
	if schoolNames == nil {
		schoolNames = []string{}
	}
	return ProfessionalResponse{
		ID:              m.ProfessionalID.String(),
		Name:            m.ProfessionalName,
		Phone:           m.ProfessionalNumber,
		Address:         m.ProfessionalAddress,
		WorkEmail:       m.ProfessionalWorkEmail,
		ClinicName:      m.ProfessionalClinicName,
		ProfessionalID:  m.ProfessionalCode,
		OrganizationID:  m.ProfessionalOrganizationID.String(),
		AssignedSchools: schoolNames,
	}
}
