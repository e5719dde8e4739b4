package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	childController "dsiku_backend/internals/features/children/controller"
	profController "dsiku_backend/internals/features/professionals/controller"
	schoolController "dsiku_backend/internals/features/schools/controller"
	teacherController "dsiku_backend/internals/features/teachers/controller"
	userController "dsiku_backend/internals/features/users/controller"
	"dsiku_backend/internals/middlewares"
	orgMiddleware "dsiku_backend/internals/middlewares/organization"
)

// UserRoutes mounts the legacy /users surface. The paths are what the mobile
// and dashboard clients already call; they stay flat rather than RESTful.
// Every organization-scoped mutating route (and the org-wide listings) runs
// the resolver-then-boundary chain; identity and lookup endpoints stay open
// because they are how a caller obtains context in the first place.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	admins := userController.NewAdminController(db)
	identity := userController.NewIdentityController(db)
	schools := schoolController.NewSchoolController(db)
	professionals := profController.NewProfessionalController(db)
	teachers := teacherController.NewTeacherController(db)
	children := childController.NewChildController(db)

	requireCtx := orgMiddleware.RequireOrganizationContext()
	enforce := orgMiddleware.EnforceOrganizationBoundary()

	r := api.Group("/users")

	// identity
	r.Get("/search-number", identity.SearchNumber)
	r.Post("/detect-role-and-fetch-profile", identity.DetectRoleAndFetchProfile)
	// older clients log in through /authenticate; same probe, same token
	r.Post("/authenticate", identity.DetectRoleAndFetchProfile)
	r.Patch("/edit-profile", requireCtx, enforce, identity.EditProfile)

	// admins
	r.Post("/create-admin", requireCtx, enforce, admins.Create)
	r.Get("/get-admins", requireCtx, enforce, admins.List)
	r.Get("/get-assigned-schools-for-admin", admins.AssignedSchools)
	r.Delete("/delete-user", requireCtx, enforce, admins.DeleteUser)

	// professionals
	r.Post("/create-professional", requireCtx, enforce, professionals.Create)
	r.Get("/get-professional-ids", professionals.List)
	r.Get("/verify-professional", professionals.Verify)
	r.Get("/get-professional-profile", professionals.Profile)
	r.Delete("/delete-professional", requireCtx, enforce, professionals.Delete)

	// schools and assignment coordination
	r.Post("/create-school", requireCtx, enforce, schools.Create)
	r.Get("/get-schools", requireCtx, enforce, schools.List)
	r.Post("/assign-school-to-professional", requireCtx, enforce, schools.AssignProfessional)
	r.Post("/unassign-school-from-professional", requireCtx, enforce, schools.UnassignProfessional)
	r.Post("/assign-admin-to-school", requireCtx, enforce, schools.AssignAdmin)
	r.Post("/unassign-admin-from-school", requireCtx, enforce, schools.UnassignAdmin)
	r.Get("/teachers-by-school", schools.TeachersBySchool)
	r.Get("/students-by-school", schools.StudentsBySchool)
	r.Delete("/delete-school", requireCtx, enforce, schools.Delete)

	// teachers
	r.Post("/teacherupload", requireCtx, enforce, teachers.Upload)
	r.Post("/bulk-upload-teachers", middlewares.BulkUploadRateLimiter(), requireCtx, enforce, teachers.BulkUpload)
	r.Get("/getteachers", requireCtx, enforce, teachers.List)
	r.Delete("/delete-teacher", requireCtx, enforce, teachers.Delete)

	// children
	r.Post("/childupload", requireCtx, enforce, children.Upload)
	r.Post("/bulk-upload-children", middlewares.BulkUploadRateLimiter(), requireCtx, enforce, children.BulkUpload)
	r.Get("/getchildren", children.List)
	r.Delete("/delete-child/:id", requireCtx, enforce, children.Delete)
}
