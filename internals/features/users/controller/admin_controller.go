package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dsiku_backend/internals/configs"
	"dsiku_backend/internals/constants"
	profModel "dsiku_backend/internals/features/professionals/model"
	schoolModel "dsiku_backend/internals/features/schools/model"
	schoolService "dsiku_backend/internals/features/schools/service"
	"dsiku_backend/internals/features/users/dto"
	"dsiku_backend/internals/features/users/model"
	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Create registers an administrative account. The phone number is unique
// across all admins; a SchoolAdmin may be seeded with at most one school.
func (ctl *AdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	role := constants.NormalizeRole(req.Role)
	if !constants.IsAdminRole(role) {
		return helper.JsonTaxonomyError(c, errs.Validationf("role %q is not an administrative role", req.Role))
	}
	if role == constants.RoleSchoolAdmin && len(req.Schools) > 1 {
		return helper.JsonTaxonomyError(c, errs.Validationf("a school admin can be assigned to only one school"))
	}

	var count int64
	if err := ctl.DB.Model(&model.AdminModel{}).
		Where("admin_number = ?", req.Phone).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check phone number")
	}
	if count > 0 {
		return helper.JsonTaxonomyError(c, errs.Conflictf("admin with phone %q", req.Phone))
	}

	admin := model.AdminModel{
		AdminName:   req.Name,
		AdminNumber: req.Phone,
		AdminRole:   role,
	}
	orgID, err := parseUUIDParam(req.OrganizationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid organization id")
	}
	admin.AdminOrganizationID = orgID
	admin.SetAssignedSchools(nil)

	if err := ctl.DB.Create(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	// Seed assignments through the mirrored path so the school side stays in
	// step with the admin side.
	for _, schoolName := range req.Schools {
		_, updated, err := schoolService.AssignAdmin(ctl.DB, schoolName, admin.AdminNumber)
		if err != nil {
			return helper.JsonTaxonomyError(c, err)
		}
		admin = *updated
	}

	token, err := helperAuth.GenerateAuthToken(configs.JWTSecret,
		admin.AdminID.String(), admin.AdminRole, admin.AdminNumber,
		admin.AdminOrganizationID.String(), admin.AdminName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "Admin created", fiber.Map{
		"admin": dto.ToAdminResponse(admin),
		"token": token,
	})
}

// List returns the admins of an organization with normalized school lists.
func (ctl *AdminController) List(c *fiber.Ctx) error {
	orgID, _ := c.Locals(helperAuth.LocOrganizationID).(string)
	if q := strings.TrimSpace(c.Query("organizationId")); q != "" {
		orgID = q
	}
	if orgID == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("organization context is required"))
	}

	var rows []model.AdminModel
	if err := ctl.DB.Where("admin_organization_id = ?", orgID).
		Order("admin_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list admins")
	}

	out := make([]dto.AdminResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToAdminResponse(m))
	}
	return helper.JsonOK(c, "Admins fetched", out)
}

// AssignedSchools reads an admin's schools from the SCHOOL side of the
// mirror, which is authoritative when the two sides disagree.
func (ctl *AdminController) AssignedSchools(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("phone query parameter is required"))
	}

	var admin model.AdminModel
	if err := ctl.DB.Where("admin_number = ?", phone).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.ErrIdentityNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
	}

	var schools []schoolModel.SchoolModel
	if err := ctl.DB.Where("? = ANY(school_assigned_admins)", admin.AdminID.String()).
		Order("school_name ASC").
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list assigned schools")
	}

	names := make([]string, 0, len(schools))
	for _, s := range schools {
		names = append(names, s.SchoolName)
	}
	return helper.JsonOK(c, "Assigned schools fetched", fiber.Map{
		"adminPhone":      admin.AdminNumber,
		"assignedSchools": names,
		"schools":         schools,
	})
}

// DeleteUser removes an admin or professional account. Both are guarded:
// all school assignments must be removed first.
func (ctl *AdminController) DeleteUser(c *fiber.Ctx) error {
	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	identity, err := helperAuth.ResolveIdentity(ctl.DB, req.Phone, req.Role)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	switch identity.Kind {
	case helperAuth.KindAdmin:
		var admin model.AdminModel
		if err := ctl.DB.First(&admin, "admin_id = ?", identity.ID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
		}
		if err := schoolService.GuardDeleteAdmin(&admin); err != nil {
			return helper.JsonTaxonomyError(c, err)
		}
		if err := ctl.DB.Delete(&admin).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
		}
	case helperAuth.KindProfessional:
		if len(identity.AssignedSchoolIDs) > 0 {
			return helper.JsonTaxonomyError(c, errs.HasDependents(map[string]int64{
				"assigned schools": int64(len(identity.AssignedSchoolIDs)),
			}))
		}
		if err := ctl.DB.Delete(&profModel.ProfessionalModel{}, "professional_id = ?", identity.ID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete professional")
		}
	default:
		return helper.JsonTaxonomyError(c, errs.Validationf("only admin and professional accounts can be deleted here"))
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{
		"phone": req.Phone,
		"role":  constants.DenormalizeRole(identity.Role),
	})
}
