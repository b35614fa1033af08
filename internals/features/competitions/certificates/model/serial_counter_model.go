package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SerialCounterModel menyimpan nilai serial terakhir per klasifikasi.
// Increment HARUS atomik (upsert ON CONFLICT dalam transaksi) — baca-lalu-tulis
// terpisah bisa menerbitkan serial kembar saat ada request paralel.
type SerialCounterModel struct {
	SerialCounterID             uuid.UUID `json:"serial_counter_id" gorm:"column:serial_counter_id;type:uuid;primaryKey"`
	SerialCounterClassification string    `json:"serial_counter_classification" gorm:"column:serial_counter_classification;uniqueIndex;not null"`
	SerialCounterLastValue      int64     `json:"serial_counter_last_value" gorm:"column:serial_counter_last_value;not null;default:0"`
	CreatedAt                   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (SerialCounterModel) TableName() string { return "certificate_serial_counters" }

func (m *SerialCounterModel) BeforeCreate(tx *gorm.DB) error {
	if m.SerialCounterID == uuid.Nil {
		m.SerialCounterID = uuid.New()
	}
	return nil
}
