package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dsiku_backend/internals/configs"
	"dsiku_backend/internals/features/reports/controller"
	authMiddleware "dsiku_backend/internals/middlewares/auth"
	orgMiddleware "dsiku_backend/internals/middlewares/organization"
)

// ReportRoutes mounts the screening submission and retrieval surface. The
// submission endpoint runs the resolver-then-boundary chain off the
// submitter's phone; the per-role summary reads are keyed by phone or name
// and stay open, scoping in the controller.
func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	r := api.Group("/reports")
	r.Post("/store-report-data",
		orgMiddleware.RequireOrganizationContext(),
		orgMiddleware.EnforceOrganizationBoundary(),
		ctl.Store)
	r.Get("/get-professional-reports", ctl.ProfessionalReports)
	r.Get("/get-report-data-clinic", ctl.ClinicSubmissions)
	r.Get("/get-report-data-clinic/:id", ctl.ClinicSubmissionByID)
	r.Get("/get-parent-submissions", ctl.ParentSubmissions)
	r.Get("/get-teacher-submissions", ctl.TeacherSubmissions)
	r.Get("/get-school-submissions", ctl.SchoolSubmissions)
	r.Get("/get-ngo-submissions", ctl.NGOSubmissions)
	r.Get("/professional-school-submissions", ctl.ProfessionalSchoolSubmissions)
}

// ChildDataRoutes mounts the manual-labeling surface. Labeling carries no
// phone hint in its payload, so the annotator must present a token.
func ChildDataRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	r := api.Group("/child-data", authMiddleware.AuthJWT(configs.JWTSecret))
	r.Put("/update-score/:reportId", ctl.UpdateScore)
}
