package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContestModel struct {
	ContestID      uuid.UUID      `json:"contest_id" gorm:"column:contest_id;type:uuid;primaryKey"`
	ContestEventID uuid.UUID      `json:"contest_event_id" gorm:"column:contest_event_id;type:uuid;not null;index"`
	ContestName    string         `json:"contest_name" gorm:"column:contest_name;not null"`
	CreatedAt      time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

func (ContestModel) TableName() string { return "contests" }

func (m *ContestModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContestID == uuid.Nil {
		m.ContestID = uuid.New()
	}
	return nil
}
