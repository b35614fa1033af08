package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status siklus hidup sertifikat:
// LISTED = baris DB ada, PDF belum dirender; READY = PDF ada dan cert_file_path terisi.
const (
	CertStatusListed = "LISTED"
	CertStatusReady  = "READY"
)

type CertificateModel struct {
	CertID             uuid.UUID `json:"cert_id" gorm:"column:cert_id;type:uuid;primaryKey"`
	CertTemplateID     uuid.UUID `json:"cert_template_id" gorm:"column:cert_template_id;type:uuid;not null;index"`
	CertRecipientName  string    `json:"cert_recipient_name" gorm:"column:cert_recipient_name;not null"`
	CertRecipientEmail *string   `json:"cert_recipient_email,omitempty" gorm:"column:cert_recipient_email"`
	CertICNumber       *string   `json:"cert_ic_number,omitempty" gorm:"column:cert_ic_number"`
	CertTeamName       *string   `json:"cert_team_name,omitempty" gorm:"column:cert_team_name"`
	CertAwardTitle     *string   `json:"cert_award_title,omitempty" gorm:"column:cert_award_title"`

	// snapshot klasifikasi template saat terbit — scope keunikan serial
	CertType         string `json:"cert_type" gorm:"column:cert_type;not null;uniqueIndex:uq_cert_serial_per_type"`
	CertSerialNumber int64  `json:"cert_serial_number" gorm:"column:cert_serial_number;not null;uniqueIndex:uq_cert_serial_per_type"`
	CertUniqueCode   string `json:"cert_unique_code" gorm:"column:cert_unique_code;uniqueIndex;not null"`

	// null sampai renderer (di luar workflow ini) mengisi path + ubah status ke READY
	CertFilePath *string `json:"cert_file_path,omitempty" gorm:"column:cert_file_path"`
	CertStatus   string  `json:"cert_status" gorm:"column:cert_status;not null;default:LISTED"`

	// metadata kepemilikan: pre_generated, event_id, contest_id, rank
	CertOwnership datatypes.JSONMap `json:"cert_ownership,omitempty" gorm:"column:cert_ownership"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"column:deleted_at;index"`
}

func (CertificateModel) TableName() string { return "certificates" }

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertID == uuid.Nil {
		m.CertID = uuid.New()
	}
	return nil
}
