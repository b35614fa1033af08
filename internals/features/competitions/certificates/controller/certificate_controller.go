// file: internals/features/competitions/certificates/controller/certificate_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/features/competitions/certificates/dto"
	"pertandinganku_backend/internals/features/competitions/certificates/model"
	"pertandinganku_backend/internals/features/competitions/certificates/service"
	helper "pertandinganku_backend/internals/helpers"
)

type CertificateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Certs    *service.CertificateService
	Prereq   *service.PrerequisiteService
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{
		DB:       db,
		Validate: validator.New(),
		Certs:    service.NewCertificateService(),
		Prereq:   service.NewPrerequisiteService(),
	}
}

func (ctrl *CertificateController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.CertificateModel{})
	if templateID := c.Query("template_id"); templateID != "" {
		q = q.Where("cert_template_id = ?", templateID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("cert_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sertifikat")
	}

	var certs []model.CertificateModel
	if err := q.Order("cert_type ASC, cert_serial_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data sertifikat")
	}

	return helper.JsonList(c, "", certs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *CertificateController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("cert_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cert_id tidak valid")
	}

	var cert model.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&cert, "cert_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil sertifikat")
	}

	return helper.JsonOK(c, "", cert)
}

// Update: hanya field identitas penerima yang boleh dikoreksi operator.
// Serial, kode unik, status, dan file path TIDAK pernah diubah lewat endpoint ini.
func (ctrl *CertificateController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("cert_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cert_id tidak valid")
	}

	var cert model.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&cert, "cert_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil sertifikat")
	}

	var updateData map[string]interface{}
	if err := c.BodyParser(&updateData); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]interface{}{}
	if v, ok := updateData["cert_recipient_name"].(string); ok && v != "" {
		updates["cert_recipient_name"] = v
	}
	for _, field := range []string{"cert_recipient_email", "cert_ic_number", "cert_team_name", "cert_award_title"} {
		if v, ok := updateData[field].(string); ok {
			updates[field] = v
		}
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan data", cert)
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&cert).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update sertifikat")
	}

	return helper.JsonUpdated(c, "Sertifikat berhasil diupdate", cert)
}

func (ctrl *CertificateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("cert_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cert_id tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.CertificateModel{}, "cert_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sertifikat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Sertifikat berhasil dihapus", fiber.Map{"deleted_id": id})
}

// CreateBulk: create massal — kegagalan per-baris dikumpulkan, tidak menggagalkan batch.
func (ctrl *CertificateController) CreateBulk(c *fiber.Ctx) error {
	var req dto.CreateBulkCertificatesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	templateID, err := uuid.Parse(req.CertTemplateID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cert_template_id tidak valid")
	}

	created, rowErrors, err := ctrl.Certs.CreateBulk(c.Context(), ctrl.DB, templateID, req.ToServiceRows())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTemplateInactive):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[CERT] bulk create gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sertifikat")
		}
	}

	// selalu bentuk summary {created, errors} walau sebagian gagal
	return helper.JsonCreated(c, "Sertifikat massal diproses", fiber.Map{
		"created": len(created),
		"errors":  len(rowErrors),
		"data":    created,
		"error_details": rowErrors,
	})
}

// CheckPrerequisites: gerbang sebelum download — cek prasyarat template.
func (ctrl *CertificateController) CheckPrerequisites(c *fiber.Ctx) error {
	var req dto.CheckPrerequisitesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	certID, _ := uuid.Parse(req.CertificateID)
	contestantID, _ := uuid.Parse(req.ContestantID)

	result, err := ctrl.Prereq.Check(c.Context(), ctrl.DB, certID, contestantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCertificateNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPrerequisitesCorrupt):
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		default:
			log.Printf("[CERT] cek prasyarat gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek prasyarat")
		}
	}

	resp := dto.CheckPrerequisitesResponse{
		CanDownload: result.CanDownload,
		Incomplete:  result.Incomplete,
	}
	if !result.CanDownload {
		resp.DetailedMessage = "Lengkapi dulu prasyarat berikut sebelum download sertifikat"
	}
	return helper.JsonOK(c, "", resp)
}

// Integrity: audit drift cert_file_path vs isi disk (admin only).
func (ctrl *CertificateController) Integrity(c *fiber.Ctx) error {
	drift, err := service.CheckFileIntegrity(c.Context(), ctrl.DB)
	if err != nil {
		log.Printf("[CERT] audit integritas gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal audit integritas file")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"drift_count": len(drift),
		"drift":       drift,
	})
}
