// file: internals/features/competitions/events/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/constants"
	evCtl "pertandinganku_backend/internals/features/competitions/events/controller"
	authMw "pertandinganku_backend/internals/middlewares/auth"
)

// =========================
// ADMIN routes (/api/a/events)
// =========================
func EventAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := evCtl.NewEventController(db)

	grp := r.Group("/events")
	grp.Get("/",
		authMw.OnlyRoles(constants.RoleErrorViewer("event"), constants.ViewerAndAbove...),
		ctrl.List)
	grp.Get("/:event_id",
		authMw.OnlyRoles(constants.RoleErrorViewer("event"), constants.ViewerAndAbove...),
		ctrl.GetByID)
	grp.Post("/",
		authMw.OnlyRoles(constants.RoleErrorOperator("event"), constants.OperatorAndAbove...),
		ctrl.Create)
	grp.Patch("/:event_id",
		authMw.OnlyRoles(constants.RoleErrorOperator("event"), constants.OperatorAndAbove...),
		ctrl.Update)
	grp.Delete("/:event_id",
		authMw.OnlyRoles(constants.RoleErrorAdmin("event"), constants.AdminOnly...),
		ctrl.Delete)

	grp.Get("/:event_id/contests",
		authMw.OnlyRoles(constants.RoleErrorViewer("lomba"), constants.ViewerAndAbove...),
		ctrl.ListContests)
	grp.Post("/:event_id/contests",
		authMw.OnlyRoles(constants.RoleErrorOperator("lomba"), constants.OperatorAndAbove...),
		ctrl.CreateContest)
}
