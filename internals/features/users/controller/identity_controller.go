package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dsiku_backend/internals/configs"
	"dsiku_backend/internals/constants"
	childModel "dsiku_backend/internals/features/children/model"
	profModel "dsiku_backend/internals/features/professionals/model"
	schoolModel "dsiku_backend/internals/features/schools/model"
	teacherModel "dsiku_backend/internals/features/teachers/model"
	"dsiku_backend/internals/features/users/dto"
	userModel "dsiku_backend/internals/features/users/model"
	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

// IdentityController serves the phone-keyed lookup endpoints: existence
// checks, role detection with profile hydration, and profile edits.
type IdentityController struct {
	DB *gorm.DB
}

func NewIdentityController(db *gorm.DB) *IdentityController {
	return &IdentityController{DB: db}
}

// SearchNumber reports whether a phone number belongs to a known identity.
// The role filter is optional; without it the probe order decides.
func (ctl *IdentityController) SearchNumber(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Query("phone"))
	role := strings.TrimSpace(c.Query("role"))

	identity, err := helperAuth.ResolveIdentity(ctl.DB, phone, role)
	if err != nil {
		if errors.Is(err, errs.ErrIdentityNotFound) {
			return helper.JsonOK(c, "Number searched", fiber.Map{
				"exists": false,
				"phone":  phone,
			})
		}
		return helper.JsonTaxonomyError(c, err)
	}

	return helper.JsonOK(c, "Number searched", fiber.Map{
		"exists": true,
		"phone":  phone,
		"role":   constants.DenormalizeRole(identity.Role),
		"name":   identity.Name,
	})
}

// DetectRoleAndFetchProfile resolves the identity for a phone number, builds
// the role-specific profile payload and issues a session token.
func (ctl *IdentityController) DetectRoleAndFetchProfile(c *fiber.Ctx) error {
	var req struct {
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	identity, err := helperAuth.ResolveIdentity(ctl.DB, req.Phone, req.Role)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	profile, err := ctl.buildProfile(identity)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build profile")
	}

	token, err := helperAuth.GenerateAuthToken(configs.JWTSecret,
		identity.ID.String(), identity.Role, identity.Number,
		identity.OrganizationID.String(), identity.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Profile fetched", fiber.Map{
		"role":    constants.DenormalizeRole(identity.Role),
		"profile": profile,
		"token":   token,
	})
}

func (ctl *IdentityController) buildProfile(identity *helperAuth.Identity) (fiber.Map, error) {
	profile := fiber.Map{
		"id":             identity.ID.String(),
		"name":           identity.Name,
		"phone":          identity.Number,
		"role":           constants.DenormalizeRole(identity.Role),
		"organizationId": identity.OrganizationID.String(),
	}

	switch identity.Kind {
	case helperAuth.KindAdmin:
		profile["assignedSchools"] = identity.AssignedSchoolNames

	case helperAuth.KindProfessional:
		profile["clinicName"] = identity.ClinicName
		profile["professionalID"] = identity.ProfessionalCode
		names, err := ctl.schoolNamesByIDs(identity.AssignedSchoolIDs)
		if err != nil {
			return nil, err
		}
		profile["assignedSchools"] = names

	case helperAuth.KindTeacher:
		profile["schoolName"] = identity.SchoolName
		if identity.Class != nil {
			profile["class"] = *identity.Class
		}

	case helperAuth.KindParent:
		profile["schoolName"] = identity.SchoolName
		var children []childModel.ChildModel
		if err := ctl.DB.Where("child_parent_phone = ?", identity.Number).
			Order("child_name ASC").
			Find(&children).Error; err != nil {
			return nil, err
		}
		profile["children"] = children
	}

	return profile, nil
}

func (ctl *IdentityController) schoolNamesByIDs(ids []string) ([]string, error) {
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

// EditProfile applies the subset of fields valid for the resolved identity
// kind. A phone change re-checks uniqueness within the kind's table.
func (ctl *IdentityController) EditProfile(c *fiber.Ctx) error {
	var req dto.EditProfileRequest
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
		err = ctl.editAdmin(identity, &req)
	case helperAuth.KindProfessional:
		err = ctl.editProfessional(identity, &req)
	case helperAuth.KindTeacher:
		err = ctl.editTeacher(identity, &req)
	case helperAuth.KindParent:
		err = ctl.editParent(identity, &req)
	}
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	return helper.JsonUpdated(c, "Profile updated", fiber.Map{
		"phone": req.Phone,
		"role":  constants.DenormalizeRole(identity.Role),
	})
}

func (ctl *IdentityController) editAdmin(identity *helperAuth.Identity, req *dto.EditProfileRequest) error {
	var admin userModel.AdminModel
	if err := ctl.DB.First(&admin, "admin_id = ?", identity.ID).Error; err != nil {
		return err
	}
	if req.Name != nil {
		admin.AdminName = *req.Name
	}
	if req.NewPhone != nil && *req.NewPhone != admin.AdminNumber {
		var count int64
		if err := ctl.DB.Model(&userModel.AdminModel{}).
			Where("admin_number = ? AND admin_id <> ?", *req.NewPhone, admin.AdminID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.Conflictf("admin with phone %q", *req.NewPhone)
		}
		admin.AdminNumber = *req.NewPhone
	}
	return ctl.DB.Save(&admin).Error
}

func (ctl *IdentityController) editProfessional(identity *helperAuth.Identity, req *dto.EditProfileRequest) error {
	var pro profModel.ProfessionalModel
	if err := ctl.DB.First(&pro, "professional_id = ?", identity.ID).Error; err != nil {
		return err
	}
	if req.Name != nil {
		pro.ProfessionalName = *req.Name
	}
	if req.Address != nil {
		pro.ProfessionalAddress = *req.Address
	}
	if req.WorkEmail != nil {
		pro.ProfessionalWorkEmail = *req.WorkEmail
	}
	if req.ClinicName != nil {
		pro.ProfessionalClinicName = *req.ClinicName
	}
	if req.NewPhone != nil && *req.NewPhone != pro.ProfessionalNumber {
		var count int64
		if err := ctl.DB.Model(&profModel.ProfessionalModel{}).
			Where("professional_number = ? AND professional_id <> ?", *req.NewPhone, pro.ProfessionalID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.Conflictf("professional with phone %q", *req.NewPhone)
		}
		pro.ProfessionalNumber = *req.NewPhone
	}
	return ctl.DB.Save(&pro).Error
}

func (ctl *IdentityController) editTeacher(identity *helperAuth.Identity, req *dto.EditProfileRequest) error {
	var teacher teacherModel.TeacherModel
	if err := ctl.DB.First(&teacher, "teacher_id = ?", identity.ID).Error; err != nil {
		return err
	}
	if req.Name != nil {
		teacher.TeacherName = *req.Name
	}
	if req.Class != nil {
		teacher.TeacherClass = *req.Class
	}
	if req.NewPhone != nil && *req.NewPhone != teacher.TeacherPhone {
		var count int64
		if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
			Where("teacher_phone = ? AND teacher_id <> ?", *req.NewPhone, teacher.TeacherID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.Conflictf("teacher with phone %q", *req.NewPhone)
		}
		teacher.TeacherPhone = *req.NewPhone
	}
	return ctl.DB.Save(&teacher).Error
}

// editParent touches every child row sharing the parent phone so the parent
// identity stays consistent across siblings.
func (ctl *IdentityController) editParent(identity *helperAuth.Identity, req *dto.EditProfileRequest) error {
	updates := map[string]any{}
	if req.Name != nil {
		updates["child_parent_name"] = *req.Name
	}
	if req.NewPhone != nil && *req.NewPhone != identity.Number {
		updates["child_parent_phone"] = *req.NewPhone
	}
	if len(updates) == 0 {
		return nil
	}
	return ctl.DB.Model(&childModel.ChildModel{}).
		Where("child_parent_phone = ?", identity.Number).
		Updates(updates).Error
}
