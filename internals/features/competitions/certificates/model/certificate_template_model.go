package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Klasifikasi target sertifikat — scope penomoran serial (lihat serial counter).
const (
	TargetTypeGeneral               = "GENERAL"
	TargetTypeNonContestParticipant = "NON_CONTEST_PARTICIPANT"
	TargetTypeEventWinner           = "EVENT_WINNER"
	TargetTypeTrainers              = "TRAINERS"
)

const (
	TemplateStatusActive   = "ACTIVE"
	TemplateStatusInactive = "INACTIVE"
)

func IsValidTargetType(t string) bool {
	switch t {
	case TargetTypeGeneral, TargetTypeNonContestParticipant, TargetTypeEventWinner, TargetTypeTrainers:
		return true
	}
	return false
}

type CertificateTemplateModel struct {
	CertTemplateID            uuid.UUID      `json:"cert_template_id" gorm:"column:cert_template_id;type:uuid;primaryKey"`
	CertTemplateEventID       uuid.UUID      `json:"cert_template_event_id" gorm:"column:cert_template_event_id;type:uuid;not null;index"`
	CertTemplateName          string         `json:"cert_template_name" gorm:"column:cert_template_name;not null"`
	CertTemplateTargetType    string         `json:"cert_template_target_type" gorm:"column:cert_template_target_type;not null;default:GENERAL"`
	CertTemplateStatus        string         `json:"cert_template_status" gorm:"column:cert_template_status;not null;default:ACTIVE"`
	CertTemplateConfig        datatypes.JSON `json:"cert_template_config,omitempty" gorm:"column:cert_template_config"`
	CertTemplatePrerequisites datatypes.JSON `json:"cert_template_prerequisites,omitempty" gorm:"column:cert_template_prerequisites"`
	CertTemplateBackgroundURL *string        `json:"cert_template_background_url,omitempty" gorm:"column:cert_template_background_url"`
	CreatedAt                 time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                 time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt                 gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

func (CertificateTemplateModel) TableName() string { return "certificate_templates" }

func (m *CertificateTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertTemplateID == uuid.Nil {
		m.CertTemplateID = uuid.New()
	}
	return nil
}
