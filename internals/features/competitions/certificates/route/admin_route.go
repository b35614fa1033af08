// file: internals/features/competitions/certificates/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/constants"
	certCtl "pertandinganku_backend/internals/features/competitions/certificates/controller"
	"pertandinganku_backend/internals/middlewares"
	authMw "pertandinganku_backend/internals/middlewares/auth"
)

// =========================
// ADMIN/OPERATOR routes
// /api/a/certificates, /api/a/certificate-templates, /api/a/events/:event_id/certificates
// =========================
func CertificateAdminRoutes(r fiber.Router, db *gorm.DB) {
	certs := certCtl.NewCertificateController(db)
	templates := certCtl.NewCertificateTemplateController(db)
	export := certCtl.NewCertificateExportController(db)

	viewer := authMw.OnlyRoles(constants.RoleErrorViewer("sertifikat"), constants.ViewerAndAbove...)
	operator := authMw.OnlyRoles(constants.RoleErrorOperator("sertifikat"), constants.OperatorAndAbove...)
	admin := authMw.OnlyRoles(constants.RoleErrorAdmin("sertifikat"), constants.AdminOnly...)

	// ---- certificates ----
	grp := r.Group("/certificates")
	grp.Get("/", viewer, certs.List)
	grp.Get("/integrity", admin, certs.Integrity)
	grp.Get("/:cert_id", viewer, certs.GetByID)
	grp.Post("/bulk", operator, certs.CreateBulk)
	grp.Patch("/:cert_id", operator, certs.Update)
	grp.Delete("/:cert_id", admin, certs.Delete)

	// ---- templates ----
	tgrp := r.Group("/certificate-templates")
	tgrp.Get("/", viewer, templates.List)
	tgrp.Get("/:template_id", viewer, templates.GetByID)
	tgrp.Post("/", operator, templates.Create)
	tgrp.Patch("/:template_id", operator, templates.Update)
	tgrp.Delete("/:template_id", admin, templates.Delete)
	tgrp.Post("/:template_id/background", operator, templates.UploadBackground)

	// ---- export per event (berat → rate limit sendiri) ----
	r.Post("/events/:event_id/certificates/export",
		operator,
		middlewares.ExportRateLimiter(),
		export.Export)
}

// =========================
// USER routes (/api/u/certificates)
// =========================
func CertificateUserRoutes(r fiber.Router, db *gorm.DB) {
	certs := certCtl.NewCertificateController(db)

	grp := r.Group("/certificates")
	grp.Post("/prerequisites/check", certs.CheckPrerequisites)
}
