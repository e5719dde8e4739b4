package dto

import (
	"strings"

	"dsiku_backend/internals/features/organizations/model"
)

type CreateOrganizationRequest struct {
	Name          string  `json:"name" validate:"required,min=3,max=150"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
	Address       string  `json:"address" validate:"required"`
	ContactNumber string  `json:"contactNumber" validate:"required,min=7,max=20"`
	Email         *string `json:"email" validate:"omitempty,email"`

	// Caller identity; must resolve to an NGOAdmin.
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role" validate:"omitempty"`
}

func (r *CreateOrganizationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.ContactNumber = strings.TrimSpace(r.ContactNumber)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Email != nil {
		e := strings.TrimSpace(*r.Email)
		r.Email = &e
	}
}

type UpdateOrganizationRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=3,max=150"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
	Address       *string `json:"address" validate:"omitempty"`
	ContactNumber *string `json:"contactNumber" validate:"omitempty,min=7,max=20"`
	Email         *string `json:"email" validate:"omitempty,email"`
	IsActive      *bool   `json:"isActive"`
}

func (r *UpdateOrganizationRequest) Normalize() {
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
	if r.Address != nil {
		a := strings.TrimSpace(*r.Address)
		r.Address = &a
	}
	if r.ContactNumber != nil {
		cn := strings.TrimSpace(*r.ContactNumber)
		r.ContactNumber = &cn
	}
}

type OrganizationResponse struct {
	OrganizationID string  `json:"organizationId"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Address        string  `json:"address"`
	ContactNumber  string  `json:"contactNumber"`
	Email          *string `json:"email,omitempty"`
	IsActive       bool    `json:"isActive"`
	Level          string  `json:"level"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`

	// Filled on detail reads only.
	SchoolCount *int64 `json:"schoolCount,omitempty"`
}

func ToOrganizationResponse(m model.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: m.OrganizationID.String(),
		Name:           m.OrganizationName,
		Description:    m.OrganizationDescription,
		Address:        m.OrganizationAddress,
		ContactNumber:  m.OrganizationContactNumber,
		Email:          m.OrganizationEmail,
		IsActive:       m.OrganizationIsActive,
		Level:          m.OrganizationLevel,
		CreatedAt:      m.OrganizationCreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      m.OrganizationUpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// OrganizationStatsResponse is the aggregate block for /:id/stats.
type OrganizationStatsResponse struct {
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Schools        int64  `json:"schools"`
	Admins         int64  `json:"admins"`
	Professionals  int64  `json:"professionals"`
	Teachers       int64  `json:"teachers"`
	Children       int64  `json:"children"`
	Reports        int64  `json:"reports"`
}
