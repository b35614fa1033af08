package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SurveyStatusActive   = "ACTIVE"
	SurveyStatusInactive = "INACTIVE"
)

type SurveyModel struct {
	SurveyID      uuid.UUID      `json:"survey_id" gorm:"column:survey_id;type:uuid;primaryKey"`
	SurveyEventID uuid.UUID      `json:"survey_event_id" gorm:"column:survey_event_id;type:uuid;not null;index"`
	SurveyName    string         `json:"survey_name" gorm:"column:survey_name;not null"`
	SurveyStatus  string         `json:"survey_status" gorm:"column:survey_status;not null;default:ACTIVE"`
	CreatedAt     time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

func (SurveyModel) TableName() string { return "surveys" }

func (m *SurveyModel) BeforeCreate(tx *gorm.DB) error {
	if m.SurveyID == uuid.Nil {
		m.SurveyID = uuid.New()
	}
	return nil
}
