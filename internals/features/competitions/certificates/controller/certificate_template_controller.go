// file: internals/features/competitions/certificates/controller/certificate_template_controller.go
package controller

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/configs"
	"pertandinganku_backend/internals/features/competitions/certificates/dto"
	"pertandinganku_backend/internals/features/competitions/certificates/model"
	helper "pertandinganku_backend/internals/helpers"
)

type CertificateTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCertificateTemplateController(db *gorm.DB) *CertificateTemplateController {
	return &CertificateTemplateController{DB: db, Validate: validator.New()}
}

func (ctrl *CertificateTemplateController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.CertificateTemplateModel{})
	if eventID := c.Query("event_id"); eventID != "" {
		q = q.Where("cert_template_event_id = ?", eventID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("cert_template_status = ?", status)
	}

	var templates []model.CertificateTemplateModel
	if err := q.Order("created_at DESC").Find(&templates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data template")
	}

	return helper.JsonOK(c, "", templates)
}

func (ctrl *CertificateTemplateController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}

	var tpl model.CertificateTemplateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&tpl, "cert_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil template")
	}

	return helper.JsonOK(c, "", tpl)
}

func (ctrl *CertificateTemplateController) Create(c *fiber.Ctx) error {
	var req dto.CreateCertTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(ctrl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tpl, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(tpl).Error; err != nil {
		log.Printf("[TEMPLATE] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}

	return helper.JsonCreated(c, "Template sertifikat berhasil dibuat", tpl)
}

func (ctrl *CertificateTemplateController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}

	var tpl model.CertificateTemplateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&tpl, "cert_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil template")
	}

	var updateData map[string]interface{}
	if err := c.BodyParser(&updateData); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]interface{}{}
	if name, ok := updateData["cert_template_name"].(string); ok && name != "" {
		updates["cert_template_name"] = name
	}
	if status, ok := updateData["cert_template_status"].(string); ok {
		if status != model.TemplateStatusActive && status != model.TemplateStatusInactive {
			return helper.JsonError(c, fiber.StatusBadRequest, "cert_template_status harus ACTIVE atau INACTIVE")
		}
		updates["cert_template_status"] = status
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan data", tpl)
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&tpl).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update template")
	}

	return helper.JsonUpdated(c, "Template berhasil diupdate", tpl)
}

func (ctrl *CertificateTemplateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.CertificateTemplateModel{}, "cert_template_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus template")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Template berhasil dihapus", fiber.Map{"deleted_id": id})
}

// UploadBackground menerima gambar latar template, konversi ke webp, simpan lokal.
func (ctrl *CertificateTemplateController) UploadBackground(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
	}

	var tpl model.CertificateTemplateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&tpl, "cert_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil template")
	}

	fileHeader, err := c.FormFile("background")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field background wajib berupa file gambar")
	}

	destDir := filepath.Join(configs.CertUploadDir(), "backgrounds")
	savedPath, err := helper.SaveImageAsWebp(fileHeader, destDir)
	if err != nil {
		log.Printf("[TEMPLATE] upload background gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&tpl).
		Update("cert_template_background_url", savedPath).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan path background")
	}

	return helper.JsonUpdated(c, "Background template tersimpan", fiber.Map{
		"cert_template_id":             tpl.CertTemplateID,
		"cert_template_background_url": savedPath,
	})
}
