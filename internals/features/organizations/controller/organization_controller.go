package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dsiku_backend/internals/constants"
	"dsiku_backend/internals/features/organizations/dto"
	"dsiku_backend/internals/features/organizations/model"
	schoolModel "dsiku_backend/internals/features/schools/model"
	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

// Create registers a tenant. Only NGOAdmin callers may create organizations;
// the name is matched case-sensitively after trimming.
func (ctl *OrganizationController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	caller, err := helperAuth.ResolveIdentity(ctl.DB, req.Phone, req.Role)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}
	if caller.Role != constants.RoleNGOAdmin {
		return helper.JsonTaxonomyError(c, errs.ErrForbidden)
	}

	var count int64
	if err := ctl.DB.Model(&model.OrganizationModel{}).
		Where("organization_name = ?", req.Name).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check organization name")
	}
	if count > 0 {
		return helper.JsonTaxonomyError(c, errs.Conflictf("organization %q", req.Name))
	}

	org := model.OrganizationModel{
		OrganizationName:          req.Name,
		OrganizationDescription:   req.Description,
		OrganizationAddress:       req.Address,
		OrganizationContactNumber: req.ContactNumber,
		OrganizationEmail:         req.Email,
		OrganizationCreatedBy:     caller.ID,
	}
	if err := ctl.DB.Create(&org).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create organization")
	}

	return helper.JsonCreated(c, "Organization created", dto.ToOrganizationResponse(org))
}

func (ctl *OrganizationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.OrganizationModel{})
	if active := strings.TrimSpace(c.Query("isActive")); active != "" {
		db = db.Where("organization_is_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		db = db.Where("LOWER(organization_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if creator := strings.TrimSpace(c.Query("createdBy")); creator != "" {
		db = db.Where("organization_created_by = ?", creator)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count organizations")
	}

	var rows []model.OrganizationModel
	if err := db.Order("organization_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list organizations")
	}

	out := make([]dto.OrganizationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToOrganizationResponse(m))
	}
	return helper.JsonList(c, "Organizations fetched", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *OrganizationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("organizationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
	}

	var org model.OrganizationModel
	if err := ctl.DB.First(&org, "organization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("organization %s", id))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}

	var schoolCount int64
	if err := ctl.DB.Model(&schoolModel.SchoolModel{}).
		Where("school_organization_id = ?", id).
		Count(&schoolCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schools")
	}

	resp := dto.ToOrganizationResponse(org)
	resp.SchoolCount = &schoolCount
	return helper.JsonOK(c, "Organization fetched", resp)
}

// Update applies partial changes. Identity and audit columns are never
// client-writable; a name change re-checks uniqueness.
func (ctl *OrganizationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("organizationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
	}

	var req dto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var org model.OrganizationModel
	if err := ctl.DB.First(&org, "organization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("organization %s", id))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}

	if req.Name != nil && *req.Name != org.OrganizationName {
		var count int64
		if err := ctl.DB.Model(&model.OrganizationModel{}).
			Where("organization_name = ? AND organization_id <> ?", *req.Name, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check organization name")
		}
		if count > 0 {
			return helper.JsonTaxonomyError(c, errs.Conflictf("organization %q", *req.Name))
		}
		org.OrganizationName = *req.Name
	}
	if req.Description != nil {
		org.OrganizationDescription = req.Description
	}
	if req.Address != nil {
		org.OrganizationAddress = *req.Address
	}
	if req.ContactNumber != nil {
		org.OrganizationContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		org.OrganizationEmail = req.Email
	}
	if req.IsActive != nil {
		org.OrganizationIsActive = *req.IsActive
	}

	if err := ctl.DB.Save(&org).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update organization")
	}
	return helper.JsonUpdated(c, "Organization updated", dto.ToOrganizationResponse(org))
}

// Delete deactivates the organization. Refused while any school still
// references it; schools must be removed or moved first.
func (ctl *OrganizationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("organizationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
	}

	var org model.OrganizationModel
	if err := ctl.DB.First(&org, "organization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("organization %s", id))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}

	var schoolCount int64
	if err := ctl.DB.Model(&schoolModel.SchoolModel{}).
		Where("school_organization_id = ?", id).
		Count(&schoolCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schools")
	}
	if schoolCount > 0 {
		return helper.JsonTaxonomyError(c, errs.HasDependents(map[string]int64{"schools": schoolCount}))
	}

	if err := ctl.DB.Model(&org).
		Update("organization_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate organization")
	}
	return helper.JsonDeleted(c, "Organization deactivated", fiber.Map{"organizationId": id.String()})
}

func (ctl *OrganizationController) Schools(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("organizationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
	}
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&schoolModel.SchoolModel{}).
		Where("school_organization_id = ?", id)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schools")
	}

	var rows []schoolModel.SchoolModel
	if err := db.Order("school_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list schools")
	}

	return helper.JsonList(c, "Schools fetched", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// Stats aggregates entity counts for a tenant dashboard.
func (ctl *OrganizationController) Stats(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("organizationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
	}

	var org model.OrganizationModel
	if err := ctl.DB.First(&org, "organization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("organization %s", id))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}

	stats := dto.OrganizationStatsResponse{
		OrganizationID: id.String(),
		Name:           org.OrganizationName,
	}

	type countQuery struct {
		dest  *int64
		table string
		col   string
	}
	queries := []countQuery{
		{&stats.Schools, "schools", "school_organization_id"},
		{&stats.Admins, "admins", "admin_organization_id"},
		{&stats.Professionals, "professionals", "professional_organization_id"},
		{&stats.Teachers, "teachers", "teacher_organization_id"},
		{&stats.Children, "children", "child_organization_id"},
		{&stats.Reports, "reports", "report_organization_id"},
	}
	for _, q := range queries {
		if err := ctl.DB.Table(q.table).
			Where(q.col+" = ?", id).
			Count(q.dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate stats")
		}
	}

	return helper.JsonOK(c, "Organization stats fetched", stats)
}
