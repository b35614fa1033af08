package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveySubmissionModel menandai survey yang sudah diselesaikan seorang peserta.
// Pasangan (survey_id, contestant_id) unik — satu peserta satu submission.
type SurveySubmissionModel struct {
	SurveySubmissionID           uuid.UUID      `json:"survey_submission_id" gorm:"column:survey_submission_id;type:uuid;primaryKey"`
	SurveySubmissionSurveyID     uuid.UUID      `json:"survey_submission_survey_id" gorm:"column:survey_submission_survey_id;type:uuid;not null;uniqueIndex:uq_survey_contestant"`
	SurveySubmissionContestantID uuid.UUID      `json:"survey_submission_contestant_id" gorm:"column:survey_submission_contestant_id;type:uuid;not null;uniqueIndex:uq_survey_contestant"`
	SurveySubmissionSubmittedAt  time.Time      `json:"survey_submission_submitted_at" gorm:"column:survey_submission_submitted_at;not null"`
	CreatedAt                    time.Time      `json:"created_at" gorm:"column:created_at"`
	DeletedAt                    gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

func (SurveySubmissionModel) TableName() string { return "survey_submissions" }

func (m *SurveySubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SurveySubmissionID == uuid.Nil {
		m.SurveySubmissionID = uuid.New()
	}
	if m.SurveySubmissionSubmittedAt.IsZero() {
		m.SurveySubmissionSubmittedAt = time.Now()
	}
	return nil
}
