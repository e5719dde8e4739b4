package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dsiku_backend/internals/constants"
	schoolModel "dsiku_backend/internals/features/schools/model"
	schoolService "dsiku_backend/internals/features/schools/service"
	"dsiku_backend/internals/features/teachers/dto"
	"dsiku_backend/internals/features/teachers/model"
	userModel "dsiku_backend/internals/features/users/model"
	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

func validTeacherPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// authorizeUpload checks that the calling admin may write rosters for the
// school. A SchoolAdmin with no school yet claims this one as their single
// assignment; otherwise the school must already be on their list.
func (ctl *TeacherController) authorizeUpload(c *fiber.Ctx, adminPhone string, school *schoolModel.SchoolModel) (*userModel.AdminModel, error) {
	if adminPhone == "" {
		adminPhone, _ = c.Locals(helperAuth.LocUserNumber).(string)
	}
	if strings.TrimSpace(adminPhone) == "" {
		return nil, errs.Validationf("adminPhone is required")
	}

	var admin userModel.AdminModel
	if err := ctl.DB.Where("admin_number = ?", adminPhone).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrIdentityNotFound
		}
		return nil, err
	}
	if admin.AdminOrganizationID != school.SchoolOrganizationID {
		return nil, errs.ErrForbidden
	}

	if admin.AdminRole == constants.RoleSchoolAdmin {
		assigned := admin.AssignedSchools()
		if len(assigned) == 0 {
			_, updated, err := schoolService.AssignAdmin(ctl.DB, school.SchoolName, admin.AdminNumber)
			if err != nil {
				return nil, err
			}
			return updated, nil
		}
		for _, s := range assigned {
			if s == school.SchoolName {
				return &admin, nil
			}
		}
		return nil, errs.ErrForbidden
	}

	return &admin, nil
}

func (ctl *TeacherController) findSchool(name string) (*schoolModel.SchoolModel, error) {
	var school schoolModel.SchoolModel
	if err := ctl.DB.Where("school_name = ?", name).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("school %q", name)
		}
		return nil, err
	}
	return &school, nil
}

// createTeacher inserts the row and mirrors the id into the school's teacher
// array inside one transaction.
func (ctl *TeacherController) createTeacher(school *schoolModel.SchoolModel, name, phone string, class int) (*model.TeacherModel, error) {
	var count int64
	if err := ctl.DB.Model(&model.TeacherModel{}).
		Where("teacher_phone = ?", phone).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errs.Conflictf("teacher with phone %q", phone)
	}

	teacher := model.TeacherModel{
		TeacherName:           name,
		TeacherClass:          class,
		TeacherPhone:          phone,
		TeacherSchoolID:       school.SchoolID,
		TeacherOrganizationID: school.SchoolOrganizationID,
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}
		school.SchoolTeachers = schoolService.AddToSet(school.SchoolTeachers, teacher.TeacherID.String())
		return tx.Model(school).
			Update("school_teachers", school.SchoolTeachers).Error
	})
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Upload registers a single teacher under a school.
func (ctl *TeacherController) Upload(c *fiber.Ctx) error {
	var req dto.UploadTeacherRequest
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
	if _, err := ctl.authorizeUpload(c, req.AdminPhone, school); err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	teacher, err := ctl.createTeacher(school, req.Name, req.Phone, req.Class)
	if err != nil {
		return helper.JsonTaxonomyError(c, err)
	}
	return helper.JsonCreated(c, "Teacher uploaded", teacher)
}

// BulkUpload registers many teachers; invalid rows are reported individually
// and do not abort the rest.
func (ctl *TeacherController) BulkUpload(c *fiber.Ctx) error {
	var req dto.BulkUploadTeachersRequest
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
	if _, err := ctl.authorizeUpload(c, req.AdminPhone, school); err != nil {
		return helper.JsonTaxonomyError(c, err)
	}

	created := make([]model.TeacherModel, 0, len(req.Teachers))
	failures := make([]dto.RowFailure, 0)
	for i, row := range req.Teachers {
		switch {
		case row.Name == "":
			failures = append(failures, dto.RowFailure{Row: i + 1, Phone: row.Phone, Reason: "name is required"})
			continue
		case !validTeacherPhone(row.Phone):
			failures = append(failures, dto.RowFailure{Row: i + 1, Phone: row.Phone, Reason: "phone must be 10 digits"})
			continue
		case row.Class < 1 || row.Class > 12:
			failures = append(failures, dto.RowFailure{Row: i + 1, Phone: row.Phone, Reason: fmt.Sprintf("class %d out of range 1-12", row.Class)})
			continue
		}

		teacher, err := ctl.createTeacher(school, row.Name, row.Phone, row.Class)
		if err != nil {
			failures = append(failures, dto.RowFailure{Row: i + 1, Phone: row.Phone, Reason: err.Error()})
			continue
		}
		created = append(created, *teacher)
	}

	return helper.JsonCreated(c, "Bulk teacher upload processed", fiber.Map{
		"uploaded": len(created),
		"failed":   len(failures),
		"teachers": created,
		"failures": failures,
	})
}

// List returns teachers for a school by name, or for the caller organization.
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	if schoolName := strings.TrimSpace(c.Query("schoolName")); schoolName != "" {
		school, err := ctl.findSchool(schoolName)
		if err != nil {
			return helper.JsonTaxonomyError(c, err)
		}
		var teachers []model.TeacherModel
		if err := ctl.DB.Where("teacher_school_id = ?", school.SchoolID).
			Order("teacher_class ASC, teacher_name ASC").
			Find(&teachers).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list teachers")
		}
		return helper.JsonOK(c, "Teachers fetched", teachers)
	}

	orgID, _ := c.Locals(helperAuth.LocOrganizationID).(string)
	if q := strings.TrimSpace(c.Query("organizationId")); q != "" {
		orgID = q
	}
	if orgID == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("schoolName or organization context is required"))
	}

	var teachers []model.TeacherModel
	if err := ctl.DB.Where("teacher_organization_id = ?", orgID).
		Order("teacher_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}
	return helper.JsonOK(c, "Teachers fetched", teachers)
}

// Delete removes a teacher and pulls the id out of the school roster.
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		var body struct {
			Phone string `json:"phone"`
		}
		_ = c.BodyParser(&body)
		phone = strings.TrimSpace(body.Phone)
	}
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("phone is required"))
	}

	var teacher model.TeacherModel
	if err := ctl.DB.Where("teacher_phone = ?", phone).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("teacher with phone %q", phone))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var school schoolModel.SchoolModel
		if err := tx.First(&school, "school_id = ?", teacher.TeacherSchoolID).Error; err == nil {
			school.SchoolTeachers = schoolService.RemoveFromSet(school.SchoolTeachers, teacher.TeacherID.String())
			if err := tx.Model(&school).
				Update("school_teachers", school.SchoolTeachers).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&teacher).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}

	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"phone": phone})
}
