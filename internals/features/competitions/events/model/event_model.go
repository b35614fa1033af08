package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	EventStatusDraft    = "DRAFT"
	EventStatusActive   = "ACTIVE"
	EventStatusFinished = "FINISHED"
)

type EventModel struct {
	EventID      uuid.UUID      `json:"event_id" gorm:"column:event_id;type:uuid;primaryKey"`
	EventName    string         `json:"event_name" gorm:"column:event_name;not null"`
	EventSlug    string         `json:"event_slug" gorm:"column:event_slug;uniqueIndex;not null"`
	EventStatus  string         `json:"event_status" gorm:"column:event_status;not null;default:DRAFT"`
	EventTags    pq.StringArray `json:"event_tags" gorm:"column:event_tags;type:text[]"`
	EventStartAt *time.Time     `json:"event_start_at,omitempty" gorm:"column:event_start_at"`
	EventEndAt   *time.Time     `json:"event_end_at,omitempty" gorm:"column:event_end_at"`
	CreatedAt    time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
