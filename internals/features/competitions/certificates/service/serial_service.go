// file: internals/features/competitions/certificates/service/serial_service.go
package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pertandinganku_backend/internals/features/competitions/certificates/model"
)

// SerialService menerbitkan nomor serial monotonic per klasifikasi.
type SerialService struct{}

func NewSerialService() *SerialService { return &SerialService{} }

// Issue menaikkan counter klasifikasi secara atomik dan mengembalikan nilai baru.
// WAJIB dipanggil di dalam transaksi milik caller: upsert di bawah mengunci baris
// counter sampai commit, sehingga dua request paralel tidak pernah dapat nilai sama
// — dan kalau insert sertifikat di transaksi yang sama gagal, serialnya ikut batal
// (tidak ada baris sertifikat tanpa serial, tidak ada serial bolong).
func (s *SerialService) Issue(tx *gorm.DB, classification string) (int64, error) {
	if !model.IsValidTargetType(classification) {
		return 0, fmt.Errorf("klasifikasi tidak dikenal: %q", classification)
	}

	counter := model.SerialCounterModel{
		SerialCounterClassification: classification,
		SerialCounterLastValue:      1,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "serial_counter_classification"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"serial_counter_last_value": gorm.Expr("serial_counter_last_value + 1"),
		}),
	}).Create(&counter).Error; err != nil {
		return 0, fmt.Errorf("gagal increment serial counter: %w", err)
	}

	// baca nilai hasil increment di transaksi yang sama (baris masih terkunci)
	var out model.SerialCounterModel
	if err := tx.Where("serial_counter_classification = ?", classification).
		First(&out).Error; err != nil {
		return 0, fmt.Errorf("gagal baca serial counter: %w", err)
	}

	return out.SerialCounterLastValue, nil
}

// IssueOne: bentuk standalone — bungkus Issue dalam satu transaksi sendiri.
func (s *SerialService) IssueOne(ctx context.Context, db *gorm.DB, classification string) (int64, error) {
	var serial int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		serial, err = s.Issue(tx, classification)
		return err
	})
	return serial, err
}
