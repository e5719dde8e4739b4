// Mirrored assignment bookkeeping between schools, professionals and admins.
//
// Each relationship is stored on BOTH sides with asymmetric keys:
//
//	school.school_assigned_professionals  <- professional ids
//	professional.professional_assigned_schools <- school ids
//	school.school_assigned_admins         <- admin ids
//	admin.admin_assigned_school_list      <- school NAMES
//
// The admin side keys by school name on purpose; existing clients depend on
// it. Renaming a school orphans the admin-side entry (see DESIGN.md).
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"dsiku_backend/internals/constants"
	profModel "dsiku_backend/internals/features/professionals/model"
	"dsiku_backend/internals/features/schools/model"
	userModel "dsiku_backend/internals/features/users/model"
	"dsiku_backend/internals/helpers/errs"
)

// AddToSet appends value unless already present. Mirrors set semantics on the
// stored arrays; assignment is idempotent.
func AddToSet(set []string, value string) []string {
	if contains(set, value) {
		return set
	}
	return append(set, value)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// Mirrored reports whether a link is already recorded on both sides. A fully
// mirrored assignment is a success-no-op; nothing is written.
func Mirrored(left []string, leftVal string, right []string, rightVal string) bool {
	return contains(left, leftVal) && contains(right, rightVal)
}

// RemoveFromSet drops every occurrence of value, preserving order.
func RemoveFromSet(set []string, value string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func findSchoolByName(db *gorm.DB, schoolName string) (*model.SchoolModel, error) {
	schoolName = strings.TrimSpace(schoolName)
	if schoolName == "" {
		return nil, errs.Validationf("school name is required")
	}
	var school model.SchoolModel
	if err := db.Where("school_name = ?", schoolName).First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("school %q", schoolName)
		}
		return nil, err
	}
	return &school, nil
}

func findProfessionalByCode(db *gorm.DB, code string) (*profModel.ProfessionalModel, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.Validationf("professional id is required")
	}
	var pro profModel.ProfessionalModel
	if err := db.Where("professional_code = ?", code).First(&pro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("professional %q", code)
		}
		return nil, err
	}
	return &pro, nil
}

func findAdminByNumber(db *gorm.DB, phone string) (*userModel.AdminModel, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errs.Validationf("admin phone number is required")
	}
	var admin userModel.AdminModel
	if err := db.Where("admin_number = ?", phone).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("admin %q", phone)
		}
		return nil, err
	}
	return &admin, nil
}

// AssignProfessional links a professional (by external code) to a school (by
// name), writing both sides inside one transaction. Idempotent.
func AssignProfessional(db *gorm.DB, schoolName, professionalCode string) (*model.SchoolModel, *profModel.ProfessionalModel, error) {
	school, err := findSchoolByName(db, schoolName)
	if err != nil {
		return nil, nil, err
	}
	pro, err := findProfessionalByCode(db, professionalCode)
	if err != nil {
		return nil, nil, err
	}
	if school.SchoolOrganizationID != pro.ProfessionalOrganizationID {
		return nil, nil, errs.ErrForbidden
	}

	proID := pro.ProfessionalID.String()
	schoolID := school.SchoolID.String()
	if Mirrored(school.SchoolAssignedProfessionals, proID, pro.ProfessionalAssignedSchools, schoolID) {
		return school, pro, nil
	}

	school.SchoolAssignedProfessionals = AddToSet(school.SchoolAssignedProfessionals, proID)
	pro.ProfessionalAssignedSchools = AddToSet(pro.ProfessionalAssignedSchools, schoolID)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(school).
			Update("school_assigned_professionals", school.SchoolAssignedProfessionals).Error; err != nil {
			return err
		}
		if err := tx.Model(pro).
			Update("professional_assigned_schools", pro.ProfessionalAssignedSchools).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] assign professional %q to school %q rolled back: %v", professionalCode, schoolName, err)
		return nil, nil, fmt.Errorf("persist professional assignment: %w", err)
	}
	return school, pro, nil
}

// UnassignProfessional removes the link from both sides. Unassigning a link
// that does not exist is a no-op success.
func UnassignProfessional(db *gorm.DB, schoolName, professionalCode string) (*model.SchoolModel, *profModel.ProfessionalModel, error) {
	school, err := findSchoolByName(db, schoolName)
	if err != nil {
		return nil, nil, err
	}
	pro, err := findProfessionalByCode(db, professionalCode)
	if err != nil {
		return nil, nil, err
	}

	proID := pro.ProfessionalID.String()
	schoolID := school.SchoolID.String()
	if !contains(school.SchoolAssignedProfessionals, proID) &&
		!contains(pro.ProfessionalAssignedSchools, schoolID) {
		return school, pro, nil
	}

	school.SchoolAssignedProfessionals = RemoveFromSet(school.SchoolAssignedProfessionals, proID)
	pro.ProfessionalAssignedSchools = RemoveFromSet(pro.ProfessionalAssignedSchools, schoolID)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(school).
			Update("school_assigned_professionals", school.SchoolAssignedProfessionals).Error; err != nil {
			return err
		}
		if err := tx.Model(pro).
			Update("professional_assigned_schools", pro.ProfessionalAssignedSchools).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] unassign professional %q from school %q rolled back: %v", professionalCode, schoolName, err)
		return nil, nil, fmt.Errorf("persist professional unassignment: %w", err)
	}
	return school, pro, nil
}

// CanAssignAdmin enforces the cardinality rule: a SchoolAdmin holds at most
// one school. Org-level admins may hold any number.
func CanAssignAdmin(adminRole string, assignedSchools []string, schoolName string) error {
	if adminRole != constants.RoleSchoolAdmin {
		return nil
	}
	for _, s := range assignedSchools {
		if s == schoolName {
			return nil // already assigned, idempotent
		}
	}
	if len(assignedSchools) >= 1 {
		return errs.Validationf("a school admin can be assigned to only one school")
	}
	return nil
}

// AssignAdmin links an admin (by phone) to a school (by name). The school
// side stores the admin id, the admin side stores the school NAME.
func AssignAdmin(db *gorm.DB, schoolName, adminNumber string) (*model.SchoolModel, *userModel.AdminModel, error) {
	school, err := findSchoolByName(db, schoolName)
	if err != nil {
		return nil, nil, err
	}
	admin, err := findAdminByNumber(db, adminNumber)
	if err != nil {
		return nil, nil, err
	}
	if school.SchoolOrganizationID != admin.AdminOrganizationID {
		return nil, nil, errs.ErrForbidden
	}

	assigned := admin.AssignedSchools()
	if err := CanAssignAdmin(admin.AdminRole, assigned, school.SchoolName); err != nil {
		return nil, nil, err
	}

	adminID := admin.AdminID.String()
	if Mirrored(school.SchoolAssignedAdmins, adminID, assigned, school.SchoolName) {
		return school, admin, nil
	}

	school.SchoolAssignedAdmins = AddToSet(school.SchoolAssignedAdmins, adminID)
	admin.SetAssignedSchools(AddToSet(assigned, school.SchoolName))

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(school).
			Update("school_assigned_admins", school.SchoolAssignedAdmins).Error; err != nil {
			return err
		}
		if err := tx.Model(admin).
			Update("admin_assigned_school_list", admin.AdminAssignedSchoolList).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] assign admin %q to school %q rolled back: %v", adminNumber, schoolName, err)
		return nil, nil, fmt.Errorf("persist admin assignment: %w", err)
	}
	return school, admin, nil
}

// UnassignAdmin removes the mirrored link. No-op success when absent.
func UnassignAdmin(db *gorm.DB, schoolName, adminNumber string) (*model.SchoolModel, *userModel.AdminModel, error) {
	school, err := findSchoolByName(db, schoolName)
	if err != nil {
		return nil, nil, err
	}
	admin, err := findAdminByNumber(db, adminNumber)
	if err != nil {
		return nil, nil, err
	}

	assigned := admin.AssignedSchools()
	adminID := admin.AdminID.String()
	if !contains(school.SchoolAssignedAdmins, adminID) && !contains(assigned, school.SchoolName) {
		return school, admin, nil
	}

	school.SchoolAssignedAdmins = RemoveFromSet(school.SchoolAssignedAdmins, adminID)
	admin.SetAssignedSchools(RemoveFromSet(assigned, school.SchoolName))

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(school).
			Update("school_assigned_admins", school.SchoolAssignedAdmins).Error; err != nil {
			return err
		}
		if err := tx.Model(admin).
			Update("admin_assigned_school_list", admin.AdminAssignedSchoolList).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] unassign admin %q from school %q rolled back: %v", adminNumber, schoolName, err)
		return nil, nil, fmt.Errorf("persist admin unassignment: %w", err)
	}
	return school, admin, nil
}
