package controller

import (
	"errors"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	childModel "dsiku_backend/internals/features/children/model"
	orgModel "dsiku_backend/internals/features/organizations/model"
	"dsiku_backend/internals/features/schools/dto"
	"dsiku_backend/internals/features/schools/model"
	"dsiku_backend/internals/features/schools/service"
	teacherModel "dsiku_backend/internals/features/teachers/model"
	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// Create registers a school under an active organization. UDISE numbers are
// globally unique. An optional professionalID triggers the initial mirrored
// assignment right after creation.
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var org orgModel.OrganizationModel
	if err := ctl.DB.First(&org, "organization_id = ?", req.OrganizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("organization %s", req.OrganizationID))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch organization")
	}
	if !org.OrganizationIsActive {
		return helper.JsonTaxonomyError(c, errs.Validationf("organization %q is not active", org.OrganizationName))
	}

	var count int64
	if err := ctl.DB.Model(&model.SchoolModel{}).
		Where("school_udise_number = ?", req.UdiseNumber).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check UDISE number")
	}
	if count > 0 {
		return helper.JsonTaxonomyError(c, errs.Conflictf("school with UDISE number %q", req.UdiseNumber))
	}

	school := model.SchoolModel{
		SchoolName:           req.SchoolName,
		SchoolAddress:        req.Address,
		SchoolUdiseNumber:    req.UdiseNumber,
		SchoolContactNumber:  req.ContactNumber,
		SchoolOrganizationID: org.OrganizationID,
	}
	if err := ctl.DB.Create(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create school")
	}

	if req.ProfessionalID != nil && *req.ProfessionalID != "" {
		updated, _, err := service.AssignProfessional(ctl.DB, school.SchoolName, *req.ProfessionalID)
		if err != nil {
			return helper.JsonTaxonomyError(c, err)
		}
		school = *updated
	}

	return helper.JsonCreated(c, "School created", dto.ToSchoolResponse(school))
}

// List returns the schools of the caller's organization.
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	orgID, _ := c.Locals(helperAuth.LocOrganizationID).(string)
	if q := strings.TrimSpace(c.Query("organizationId")); q != "" {
		orgID = q
	}
	if orgID == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("organization context is required"))
	}

	p := helper.ResolvePaging(c, 50, 200)
	db := ctl.DB.Model(&model.SchoolModel{}).
		Where("school_organization_id = ?", orgID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schools")
	}

	var rows []model.SchoolModel
	if err := db.Order("school_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list schools")
	}

	out := make([]dto.SchoolResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToSchoolResponse(m))
	}
	return helper.JsonList(c, "Schools fetched", out, helper.BuildPagination(total, p.Page, p.PerPage))
}

func (ctl *SchoolController) AssignProfessional(c *fiber.Ctx) error {
	var req dto.AssignProfessionalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	school, pro, err := service.AssignProfessional(ctl.DB, req.SchoolName, req.ProfessionalID)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}
	return helper.JsonUpdated(c, "Professional assigned to school", fiber.Map{
		"school":       dto.ToSchoolResponse(*school),
		"professional": pro,
	})
}

func (ctl *SchoolController) UnassignProfessional(c *fiber.Ctx) error {
	var req dto.AssignProfessionalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	school, pro, err := service.UnassignProfessional(ctl.DB, req.SchoolName, req.ProfessionalID)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}
	return helper.JsonUpdated(c, "Professional unassigned from school", fiber.Map{
		"school":       dto.ToSchoolResponse(*school),
		"professional": pro,
	})
}

func (ctl *SchoolController) AssignAdmin(c *fiber.Ctx) error {
	var req dto.AssignAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	school, admin, err := service.AssignAdmin(ctl.DB, req.SchoolName, req.AdminPhone)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}
	return helper.JsonUpdated(c, "Admin assigned to school", fiber.Map{
		"school": dto.ToSchoolResponse(*school),
		"admin":  admin,
	})
}

func (ctl *SchoolController) UnassignAdmin(c *fiber.Ctx) error {
	var req dto.AssignAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	school, admin, err := service.UnassignAdmin(ctl.DB, req.SchoolName, req.AdminPhone)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}
	return helper.JsonUpdated(c, "Admin unassigned from school", fiber.Map{
		"school": dto.ToSchoolResponse(*school),
		"admin":  admin,
	})
}

// TeachersBySchool lists teachers of a school keyed by name.
func (ctl *SchoolController) TeachersBySchool(c *fiber.Ctx) error {
	schoolName := strings.TrimSpace(c.Query("schoolName"))
	if schoolName == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("schoolName query parameter is required"))
	}

	var school model.SchoolModel
	if err := ctl.DB.Where("school_name = ?", schoolName).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("school %q", schoolName))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	var teachers []teacherModel.TeacherModel
	if err := ctl.DB.Where("teacher_school_id = ?", school.SchoolID).
		Order("teacher_class ASC, teacher_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}

	return helper.JsonOK(c, "Teachers fetched", fiber.Map{
		"schoolName": school.SchoolName,
		"teachers":   teachers,
	})
}

// StudentsBySchool lists children of a school grouped by class.
func (ctl *SchoolController) StudentsBySchool(c *fiber.Ctx) error {
	schoolName := strings.TrimSpace(c.Query("schoolName"))
	if schoolName == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("schoolName query parameter is required"))
	}

	var school model.SchoolModel
	if err := ctl.DB.Where("school_name = ?", schoolName).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("school %q", schoolName))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	var children []childModel.ChildModel
	if err := ctl.DB.Where("child_school_id = ?", school.SchoolID).
		Order("child_class ASC, child_name ASC").
		Find(&children).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list children")
	}

	// Group by class; children without a class go under 0.
	grouped := map[int][]childModel.ChildModel{}
	for _, ch := range children {
		class := 0
		if ch.ChildClass != nil {
			class = *ch.ChildClass
		}
		grouped[class] = append(grouped[class], ch)
	}
	classes := make([]int, 0, len(grouped))
	for class := range grouped {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	byClass := make([]fiber.Map, 0, len(classes))
	for _, class := range classes {
		byClass = append(byClass, fiber.Map{
			"class":    class,
			"students": grouped[class],
		})
	}

	return helper.JsonOK(c, "Students fetched", fiber.Map{
		"schoolName": school.SchoolName,
		"total":      len(children),
		"classes":    byClass,
	})
}

// Delete removes a school once nothing references it anymore.
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	schoolName := strings.TrimSpace(c.Query("schoolName"))
	if schoolName == "" {
		var body struct {
			SchoolName string `json:"schoolName"`
		}
		_ = c.BodyParser(&body)
		schoolName = strings.TrimSpace(body.SchoolName)
	}
	if schoolName == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("schoolName is required"))
	}

	var school model.SchoolModel
	if err := ctl.DB.Where("school_name = ?", schoolName).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("school %q", schoolName))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	if err := service.GuardDeleteSchool(ctl.DB, &school); err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	if err := ctl.DB.Delete(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school")
	}
	return helper.JsonDeleted(c, "School deleted", fiber.Map{"schoolName": schoolName})
}
