// file: internals/features/competitions/surveys/controller/survey_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/features/competitions/surveys/model"
	helper "pertandinganku_backend/internals/helpers"
)

type SurveyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db, Validate: validator.New()}
}

type createSurveyRequest struct {
	SurveyEventID string `json:"survey_event_id" validate:"required,uuid4"`
	SurveyName    string `json:"survey_name" validate:"required,max=200"`
}

func (ctrl *SurveyController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.SurveyModel{})
	if eventID := c.Query("event_id"); eventID != "" {
		q = q.Where("survey_event_id = ?", eventID)
	}

	var surveys []model.SurveyModel
	if err := q.Order("created_at DESC").Find(&surveys).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data soal selidik")
	}

	return helper.JsonOK(c, "", surveys)
}

func (ctrl *SurveyController) Create(c *fiber.Ctx) error {
	var req createSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SurveyName = strings.TrimSpace(req.SurveyName)
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	eventID, err := uuid.Parse(req.SurveyEventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "survey_event_id tidak valid")
	}

	survey := model.SurveyModel{
		SurveyEventID: eventID,
		SurveyName:    req.SurveyName,
		SurveyStatus:  model.SurveyStatusActive,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&survey).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal selidik")
	}

	return helper.JsonCreated(c, "Soal selidik berhasil dibuat", survey)
}

// Submit: peserta menandai soal selidik selesai (idempotent untuk pasangan yang sama)
func (ctrl *SurveyController) Submit(c *fiber.Ctx) error {
	surveyID, err := uuid.Parse(c.Params("survey_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "survey_id tidak valid")
	}

	contestantID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var survey model.SurveyModel
	if err := ctrl.DB.WithContext(c.Context()).First(&survey, "survey_id = ?", surveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal selidik tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat soal selidik")
	}

	sub := model.SurveySubmissionModel{
		SurveySubmissionSurveyID:     surveyID,
		SurveySubmissionContestantID: contestantID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&sub).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonOK(c, "Soal selidik sudah pernah diselesaikan", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan submission")
	}

	return helper.JsonCreated(c, "Submission tersimpan", sub)
}
