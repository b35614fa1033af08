// file: internals/features/competitions/events/controller/event_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/features/competitions/events/dto"
	"pertandinganku_backend/internals/features/competitions/events/model"
	helper "pertandinganku_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

func (ctrl *EventController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.EventModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("event_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}

	var events []model.EventModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data event")
	}

	return helper.JsonList(c, "", events, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil event")
	}

	return helper.JsonOK(c, "", event)
}

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(ctrl.Validate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	event := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(event).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug event sudah dipakai")
		}
		log.Printf("[EVENT] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat event")
	}

	return helper.JsonCreated(c, "Event berhasil dibuat", event)
}

func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil event")
	}

	var updateData map[string]interface{}
	if err := c.BodyParser(&updateData); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]interface{}{}
	if name, ok := updateData["event_name"].(string); ok && name != "" {
		updates["event_name"] = name
	}
	if status, ok := updateData["event_status"].(string); ok {
		switch status {
		case model.EventStatusDraft, model.EventStatusActive, model.EventStatusFinished:
			updates["event_status"] = status
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "event_status tidak dikenal")
		}
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan data", event)
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&event).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update event")
	}

	return helper.JsonUpdated(c, "Event berhasil diupdate", event)
}

func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Event berhasil dihapus", fiber.Map{"deleted_id": id})
}

/* ===============================
   Contest (lomba dalam event)
=================================*/

func (ctrl *EventController) ListContests(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	var contests []model.ContestModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("contest_event_id = ?", eventID).
		Order("created_at ASC").
		Find(&contests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data lomba")
	}

	return helper.JsonOK(c, "", contests)
}

func (ctrl *EventController) CreateContest(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
	}

	// pastikan event ada
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.EventModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil || count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	var req dto.CreateContestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	contest := model.ContestModel{
		ContestEventID: eventID,
		ContestName:    req.ContestName,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&contest).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lomba")
	}

	return helper.JsonCreated(c, "Lomba berhasil dibuat", contest)
}
