// file: internals/features/competitions/certificates/controller/certificate_export_controller.go
package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/configs"
	"pertandinganku_backend/internals/features/competitions/certificates/dto"
	"pertandinganku_backend/internals/features/competitions/certificates/model"
	"pertandinganku_backend/internals/features/competitions/certificates/service"
	helper "pertandinganku_backend/internals/helpers"
)

type CertificateExportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	ExportSvc *service.ExportService
}

func NewCertificateExportController(db *gorm.DB) *CertificateExportController {
	return &CertificateExportController{
		DB:       db,
		Validate: validator.New(),
		ExportSvc: &service.ExportService{},
	}
}

// Export menggabungkan PDF sertifikat READY milik satu event jadi batch-batch,
// lalu stream satu arsip zip (+ metadata.json). Kebijakan: arsip utuh atau error
// JSON tunggal — tidak pernah kirim zip setengah jadi, makanya dirakit ke buffer
// dulu sebelum dikirim.
func (ctrl *CertificateExportController) Export(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	var req dto.ExportCertificatesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !req.HasSelection() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi cert_template_id atau certificate_ids")
	}

	// deadline khusus endpoint export (default 5 menit, configurable)
	ctx, cancel := context.WithTimeout(c.Context(), configs.CertExportTimeout())
	defer cancel()

	// ===== pilih sertifikat READY, scoped ke event lewat templatenya =====
	q := ctrl.DB.WithContext(ctx).
		Model(&model.CertificateModel{}).
		Joins("JOIN certificate_templates ct ON ct.cert_template_id = certificates.cert_template_id").
		Where("ct.cert_template_event_id = ?", eventID).
		Where("certificates.cert_status = ?", model.CertStatusReady)

	templateIDStr := ""
	if req.CertTemplateID != nil {
		templateID, err := uuid.Parse(*req.CertTemplateID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "cert_template_id tidak valid")
		}
		templateIDStr = templateID.String()
		q = q.Where("certificates.cert_template_id = ?", templateID)
	}
	if len(req.CertificateIDs) > 0 {
		q = q.Where("certificates.cert_id IN ?", req.CertificateIDs)
	}
	scope := "event"
	if req.ContestID != nil {
		scope = "contest"
		q = q.Where(datatypes.JSONQuery("cert_ownership").Equals(*req.ContestID, "contest_id"))
	}

	var certs []model.CertificateModel
	if err := q.Order("certificates.cert_serial_number ASC").Find(&certs).Error; err != nil {
		log.Printf("[EXPORT] gagal memuat sertifikat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat sertifikat")
	}
	if len(certs) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada sertifikat READY yang cocok")
	}

	refs := make([]service.CertFileRef, 0, len(certs))
	for _, cert := range certs {
		ref := service.CertFileRef{
			Serial: cert.CertSerialNumber,
			Code:   cert.CertUniqueCode,
		}
		if cert.CertFilePath != nil {
			ref.Path = *cert.CertFilePath
		}
		refs = append(refs, ref)
	}

	opts := service.ExportOptions{
		BatchSize:   configs.CertExportBatchSize(),
		ZipLevel:    configs.CertExportZipLevel(),
		EventID:     eventID.String(),
		TemplateID:  templateIDStr,
		Scope:       scope,
		GeneratedBy: helper.GetUserNameFromToken(c),
	}

	var buf bytes.Buffer
	start := time.Now()
	if err := ctrl.ExportSvc.MergeForDownload(ctx, &buf, refs, opts); err != nil {
		if errors.Is(err, service.ErrNoValidFiles) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada file sertifikat valid untuk di-export")
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return helper.JsonError(c, fiber.StatusRequestTimeout, "Export melewati batas waktu")
		}
		log.Printf("[EXPORT] merge gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat arsip export")
	}
	log.Printf("[EXPORT] event=%s total=%d size=%dB dur=%s", eventID, len(certs), buf.Len(), time.Since(start))

	filename := fmt.Sprintf("sijil_%s_%s.zip", eventID, time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
