// file: internals/features/competitions/surveys/route/survey_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/constants"
	svCtl "pertandinganku_backend/internals/features/competitions/surveys/controller"
	authMw "pertandinganku_backend/internals/middlewares/auth"
)

// SurveyAdminRoutes: kelola soal selidik (/api/a/surveys)
func SurveyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := svCtl.NewSurveyController(db)

	grp := r.Group("/surveys")
	grp.Get("/",
		authMw.OnlyRoles(constants.RoleErrorViewer("soal selidik"), constants.ViewerAndAbove...),
		ctrl.List)
	grp.Post("/",
		authMw.OnlyRoles(constants.RoleErrorOperator("soal selidik"), constants.OperatorAndAbove...),
		ctrl.Create)
}

// SurveyUserRoutes: peserta submit soal selidik (/api/u/surveys)
func SurveyUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := svCtl.NewSurveyController(db)

	grp := r.Group("/surveys")
	grp.Post("/:survey_id/submit", ctrl.Submit)
}
