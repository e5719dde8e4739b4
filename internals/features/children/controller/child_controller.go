package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dsiku_backend/internals/features/children/dto"
	"dsiku_backend/internals/features/children/model"
	schoolModel "dsiku_backend/internals/features/schools/model"
	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

type ChildController struct {
	DB *gorm.DB
}

func NewChildController(db *gorm.DB) *ChildController {
	return &ChildController{DB: db}
}

func (ctl *ChildController) findSchool(name string) (*schoolModel.SchoolModel, error) {
	var school schoolModel.SchoolModel
	if err := ctl.DB.Where("school_name = ?", name).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("school %q", name)
		}
		return nil, err
	}
	return &school, nil
}

// Upload registers one child. School enrollment is optional: a parent can
// register a child directly under an organization before any school links it.
func (ctl *ChildController) Upload(c *fiber.Ctx) error {
	var req dto.UploadChildRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	child := model.ChildModel{
		ChildName:        req.Name,
		ChildAge:         req.Age,
		ChildClass:       req.Class,
		ChildRollNumber:  req.RollNumber,
		ChildParentName:  req.ParentName,
		ChildParentPhone: req.ParentPhone,
	}

	switch {
	case req.SchoolName != "":
		school, err := ctl.findSchool(req.SchoolName)
		if err != nil {
			return helper.JsonTaxonomyError(c, err)
		}
		child.ChildSchoolID = &school.SchoolID
		child.ChildOrganizationID = school.SchoolOrganizationID
	case req.OrganizationID != "":
		orgID, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
		}
		child.ChildOrganizationID = orgID
	default:
		return helper.JsonTaxonomyError(c, errs.Validationf("schoolName or organizationId is required"))
	}

	if err := ctl.DB.Create(&child).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create child")
	}
	return helper.JsonCreated(c, "Child uploaded", child)
}

// BulkUpload registers many children under one school; rows with an age
// outside 3-18 are rejected individually.
func (ctl *ChildController) BulkUpload(c *fiber.Ctx) error {
	var req dto.BulkUploadChildrenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	school, err := ctl.findSchool(req.SchoolName)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	created := make([]model.ChildModel, 0, len(req.Children))
	failures := make([]dto.RowFailure, 0)
	for i, row := range req.Children {
		switch {
		case row.Name == "":
			failures = append(failures, dto.RowFailure{Row: i + 1, Reason: "name is required"})
			continue
		case row.Age < 3 || row.Age > 18:
			failures = append(failures, dto.RowFailure{Row: i + 1, Name: row.Name, Reason: fmt.Sprintf("age %d out of range 3-18", row.Age)})
			continue
		}

		child := model.ChildModel{
			ChildName:           row.Name,
			ChildAge:            row.Age,
			ChildClass:          row.Class,
			ChildRollNumber:     row.RollNumber,
			ChildParentName:     row.ParentName,
			ChildParentPhone:    row.ParentPhone,
			ChildSchoolID:       &school.SchoolID,
			ChildOrganizationID: school.SchoolOrganizationID,
		}
		if err := ctl.DB.Create(&child).Error; err != nil {
			failures = append(failures, dto.RowFailure{Row: i + 1, Name: row.Name, Reason: "insert failed"})
			continue
		}
		created = append(created, child)
	}

	return helper.JsonCreated(c, "Bulk child upload processed", fiber.Map{
		"uploaded": len(created),
		"failed":   len(failures),
		"children": created,
		"failures": failures,
	})
}

// List filters by parent phone, school name or organization, in that order
// of precedence.
func (ctl *ChildController) List(c *fiber.Ctx) error {
	if parentPhone := strings.TrimSpace(c.Query("parentPhone")); parentPhone != "" {
		var children []model.ChildModel
		if err := ctl.DB.Where("child_parent_phone = ?", parentPhone).
			Order("child_name ASC").
			Find(&children).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list children")
		}
		return helper.JsonOK(c, "Children fetched", children)
	}

	if schoolName := strings.TrimSpace(c.Query("schoolName")); schoolName != "" {
		school, err := ctl.findSchool(schoolName)
		if err != nil {
			return helper.JsonTaxonomyError(c, err)
		}
		var children []model.ChildModel
		if err := ctl.DB.Where("child_school_id = ?", school.SchoolID).
			Order("child_class ASC, child_name ASC").
			Find(&children).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list children")
		}
		return helper.JsonOK(c, "Children fetched", children)
	}

	orgID, _ := c.Locals(helperAuth.LocOrganizationID).(string)
	if q := strings.TrimSpace(c.Query("organizationId")); q != "" {
		orgID = q
	}
	if orgID == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("parentPhone, schoolName or organization context is required"))
	}

	var children []model.ChildModel
	if err := ctl.DB.Where("child_organization_id = ?", orgID).
		Order("child_name ASC").
		Find(&children).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list children")
	}
	return helper.JsonOK(c, "Children fetched", children)
}

// Delete removes a child record. Screening reports keep their frozen copy of
// the child's details; the child reference just dangles by design.
func (ctl *ChildController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid child id")
	}

	var child model.ChildModel
	if err := ctl.DB.First(&child, "child_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("child %s", id))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch child")
	}

	if err := ctl.DB.Delete(&child).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete child")
	}
	return helper.JsonDeleted(c, "Child deleted", fiber.Map{"childId": id.String()})
}
