// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certRoute "pertandinganku_backend/internals/features/competitions/certificates/route"
	eventRoute "pertandinganku_backend/internals/features/competitions/events/route"
	surveyRoute "pertandinganku_backend/internals/features/competitions/surveys/route"
	authRoute "pertandinganku_backend/internals/features/users/auth/route"
	authMw "pertandinganku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	certRoute.CertificateUserRoutes(private, db)
	surveyRoute.SurveyUserRoutes(private, db)

	// ===================== ADMIN/OPERATOR =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	certRoute.CertificateAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	surveyRoute.SurveyAdminRoutes(admin, db)
}
