package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dsiku_backend/internals/configs"
	"dsiku_backend/internals/constants"
	"dsiku_backend/internals/features/professionals/dto"
	"dsiku_backend/internals/features/professionals/model"
	schoolModel "dsiku_backend/internals/features/schools/model"
	schoolService "dsiku_backend/internals/features/schools/service"
	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

type ProfessionalController struct {
	DB *gorm.DB
}

func NewProfessionalController(db *gorm.DB) *ProfessionalController {
	return &ProfessionalController{DB: db}
}

func (ctl *ProfessionalController) schoolNames(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	var rows []schoolModel.SchoolModel
	if err := ctl.DB.Where("school_id IN ?", ids).
		Order("school_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, s := range rows {
		names = append(names, s.SchoolName)
	}
	return names, nil
}

// Create registers a clinician. The phone and the external professional code
// are both unique within the professionals table.
func (ctl *ProfessionalController) Create(c *fiber.Ctx) error {
	var req dto.CreateProfessionalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var count int64
	if err := ctl.DB.Model(&model.ProfessionalModel{}).
		Where("professional_number = ?", req.Phone).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check phone number")
	}
	if count > 0 {
		return helper.JsonTaxonomyError(c, errs.Conflictf("professional with phone %q", req.Phone))
	}

	if err := ctl.DB.Model(&model.ProfessionalModel{}).
		Where("professional_code = ?", req.ProfessionalID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check professional id")
	}
	if count > 0 {
		return helper.JsonTaxonomyError(c, errs.Conflictf("professional id %q", req.ProfessionalID))
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
	}

	pro := model.ProfessionalModel{
		ProfessionalName:           req.Name,
		ProfessionalNumber:         req.Phone,
		ProfessionalAddress:        req.Address,
		ProfessionalWorkEmail:      req.WorkEmail,
		ProfessionalClinicName:     req.ClinicName,
		ProfessionalCode:           req.ProfessionalID,
		ProfessionalOrganizationID: orgID,
	}
	if err := ctl.DB.Create(&pro).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create professional")
	}

	token, err := helperAuth.GenerateAuthToken(configs.JWTSecret,
		pro.ProfessionalID.String(), constants.RoleProfessional, pro.ProfessionalNumber,
		pro.ProfessionalOrganizationID.String(), pro.ProfessionalName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "Professional created", fiber.Map{
		"professional": dto.ToProfessionalResponse(pro, []string{}),
		"token":        token,
	})
}

// List returns the professionals of an organization with their external
// codes and resolved school names.
func (ctl *ProfessionalController) List(c *fiber.Ctx) error {
	orgID, _ := c.Locals(helperAuth.LocOrganizationID).(string)
	if q := strings.TrimSpace(c.Query("organizationId")); q != "" {
		orgID = q
	}
	if orgID == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("organization context is required"))
	}

	var rows []model.ProfessionalModel
	if err := ctl.DB.Where("professional_organization_id = ?", orgID).
		Order("professional_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list professionals")
	}

	out := make([]dto.ProfessionalResponse, 0, len(rows))
	for _, m := range rows {
		names, err := ctl.schoolNames(m.ProfessionalAssignedSchools)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve school names")
		}
		out = append(out, dto.ToProfessionalResponse(m, names))
	}
	return helper.JsonOK(c, "Professionals fetched", out)
}

// Verify looks a professional up by phone and returns their assigned schools
// as id+name pairs. Used by the assignment UI before wiring a school.
func (ctl *ProfessionalController) Verify(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Query("professionalId"))
	if phone == "" {
		phone = strings.TrimSpace(c.Query("phone"))
	}
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("professionalId query parameter is required"))
	}

	var pro model.ProfessionalModel
	err := ctl.DB.Where("professional_number = ?", phone).First(&pro).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "Professional verified", fiber.Map{
				"found":          false,
				"professionalId": phone,
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify professional")
	}

	type schoolPair struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	pairs := []schoolPair{}
	if len(pro.ProfessionalAssignedSchools) > 0 {
		var rows []schoolModel.SchoolModel
		if err := ctl.DB.Where("school_id IN ?", []string(pro.ProfessionalAssignedSchools)).
			Order("school_name ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve school names")
		}
		for _, s := range rows {
			pairs = append(pairs, schoolPair{ID: s.SchoolID.String(), Name: s.SchoolName})
		}
	}

	clinicName := pro.ProfessionalClinicName
	if clinicName == "" {
		clinicName = "Private Practice"
	}
	return helper.JsonOK(c, "Professional verified", fiber.Map{
		"found": true,
		"professional": fiber.Map{
			"name":            pro.ProfessionalName,
			"phone":           pro.ProfessionalNumber,
			"professionalID":  pro.ProfessionalCode,
			"clinicName":      clinicName,
			"assignedSchools": pairs,
		},
	})
}

// Profile returns the full profile for a professional keyed by phone.
func (ctl *ProfessionalController) Profile(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("phone query parameter is required"))
	}

	var pro model.ProfessionalModel
	if err := ctl.DB.Where("professional_number = ?", phone).First(&pro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.ErrIdentityNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch professional")
	}

	names, err := ctl.schoolNames(pro.ProfessionalAssignedSchools)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve school names")
	}
	return helper.JsonOK(c, "Professional profile fetched", dto.ToProfessionalResponse(pro, names))
}

// Delete removes a professional once no school assignment remains.
func (ctl *ProfessionalController) Delete(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Query("professionalID"))
	if code == "" {
		var body struct {
			ProfessionalID string `json:"professionalID"`
		}
		_ = c.BodyParser(&body)
		code = strings.TrimSpace(body.ProfessionalID)
	}
	if code == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("professionalID is required"))
	}

	var pro model.ProfessionalModel
	if err := ctl.DB.Where("professional_code = ?", code).First(&pro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("professional %q", code))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch professional")
	}

	if err := schoolService.GuardDeleteProfessional(&pro); err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	if err := ctl.DB.Delete(&pro).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete professional")
	}
	return helper.JsonDeleted(c, "Professional deleted", fiber.Map{"professionalID": code})
}
