package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dsiku_backend/internals/features/organizations/controller"
	orgMiddleware "dsiku_backend/internals/middlewares/organization"
)

// OrganizationRoutes mounts /organizations under the api group. Mutations run
// the resolver-then-boundary chain; the path param is named organizationId so
// the boundary check sees the target tenant.
func OrganizationRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganizationController(db)

	requireCtx := orgMiddleware.RequireOrganizationContext()
	enforce := orgMiddleware.EnforceOrganizationBoundary()

	r := api.Group("/organizations")
	r.Post("/", requireCtx, enforce, ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:organizationId", ctl.GetByID)
	r.Put("/:organizationId", requireCtx, enforce, ctl.Update)
	r.Delete("/:organizationId", requireCtx, enforce, ctl.Delete)
	r.Get("/:organizationId/schools", ctl.Schools)
	r.Get("/:organizationId/stats", ctl.Stats)
}
