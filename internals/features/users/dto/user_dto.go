package dto

import (
	"strings"

	"dsiku_backend/internals/features/users/model"
)

type CreateAdminRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Phone          string   `json:"phone" validate:"required,min=7,max=20"`
	Role           string   `json:"role" validate:"required"`
	OrganizationID string   `json:"organizationId" validate:"required,uuid"`
	Schools        []string `json:"schools" validate:"omitempty,dive,min=1"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Role = strings.TrimSpace(r.Role)
	out := make([]string, 0, len(r.Schools))
	for _, s := range r.Schools {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	r.Schools = out
}

// EditProfileRequest is role-dispatched: only the fields valid for the
// resolved identity kind are applied, the rest are ignored.
type EditProfileRequest struct {
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role" validate:"omitempty"`

	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	NewPhone   *string `json:"newPhone" validate:"omitempty,min=7,max=20"`
	Address    *string `json:"address" validate:"omitempty"`
	WorkEmail  *string `json:"workEmail" validate:"omitempty,email"`
	ClinicName *string `json:"clinicName" validate:"omitempty,max=150"`
	Class      *int    `json:"class" validate:"omitempty,min=1,max=12"`
}

func (r *EditProfileRequest) Normalize() {
	r.Phone = strings.TrimSpace(r.Phone)
	r.Role = strings.TrimSpace(r.Role)
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
	if r.NewPhone != nil {
		p := strings.TrimSpace(*r.NewPhone)
		r.NewPhone = &p
	}
}

type DeleteUserRequest struct {
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role" validate:"omitempty"`
}

func (r *DeleteUserRequest) Normalize() {
	r.Phone = strings.TrimSpace(r.Phone)
	r.Role = strings.TrimSpace(r.Role)
}

type AdminResponse struct {
	AdminID         string   `json:"adminId"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Role            string   `json:"role"`
	OrganizationID  string   `json:"organizationId"`
	AssignedSchools []string `json:"assignedSchools"`
}

func ToAdminResponse(m model.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:         m.AdminID.String(),
		Name:            m.AdminName,
		Phone:           m.AdminNumber,
		Role:            m.AdminRole,
		OrganizationID:  m.AdminOrganizationID.String(),
		AssignedSchools: m.AssignedSchools(),
	}
}
