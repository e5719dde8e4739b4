package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dsiku_backend/internals/configs"
	orgRoute "dsiku_backend/internals/features/organizations/route"
	reportRoute "dsiku_backend/internals/features/reports/route"
	userRoute "dsiku_backend/internals/features/users/route"
	authMiddleware "dsiku_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes mounts every feature surface under /api. Tokens are optional on
// the whole surface: phone-keyed identity resolution backs the endpoints the
// mobile clients call before login.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api", authMiddleware.OptionalAuthJWT(configs.JWTSecret))

	log.Println("[INFO] Setting up OrganizationRoutes...")
	orgRoute.OrganizationRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoute.ReportRoutes(api, db)

	log.Println("[INFO] Setting up ChildDataRoutes...")
	reportRoute.ChildDataRoutes(api, db)
}
