// Delete guards. Every entity that other records point at refuses deletion
// while references remain; callers must unassign or delete dependents first.
package service

import (
	"gorm.io/gorm"

	profModel "dsiku_backend/internals/features/professionals/model"
	"dsiku_backend/internals/features/schools/model"
	userModel "dsiku_backend/internals/features/users/model"
	"dsiku_backend/internals/helpers/errs"
)

// GuardDeleteSchool returns ErrHasDependents while the school still has
// teachers, children, assigned admins or assigned professionals.
func GuardDeleteSchool(db *gorm.DB, school *model.SchoolModel) error {
	counts := map[string]int64{
		"admins":        int64(len(school.SchoolAssignedAdmins)),
		"professionals": int64(len(school.SchoolAssignedProfessionals)),
	}

	var teachers int64
	if err := db.Table("teachers").
		Where("teacher_school_id = ?", school.SchoolID).
		Count(&teachers).Error; err != nil {
		return err
	}
	counts["teachers"] = teachers

	var children int64
	if err := db.Table("children").
		Where("child_school_id = ?", school.SchoolID).
		Count(&children).Error; err != nil {
		return err
	}
	counts["children"] = children

	return errs.HasDependents(counts)
}

// GuardDeleteAdmin refuses deletion while the admin holds school assignments.
func GuardDeleteAdmin(admin *userModel.AdminModel) error {
	return errs.HasDependents(map[string]int64{
		"assigned schools": int64(len(admin.AssignedSchools())),
	})
}

// GuardDeleteProfessional refuses deletion while school assignments remain.
func GuardDeleteProfessional(pro *profModel.ProfessionalModel) error {
	return errs.HasDependents(map[string]int64{
		"assigned schools": int64(len(pro.ProfessionalAssignedSchools)),
	})
}
