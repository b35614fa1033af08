// file: internals/features/competitions/certificates/service/certificate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pertandinganku_backend/internals/features/competitions/certificates/model"
	helper "pertandinganku_backend/internals/helpers"
)

var (
	ErrTemplateNotFound = errors.New("template sertifikat tidak ditemukan")
	ErrTemplateInactive = errors.New("template sertifikat tidak aktif")
)

// BulkRow: satu baris penerima pada create massal.
type BulkRow struct {
	RecipientName  string
	RecipientEmail *string
	ICNumber       *string
	TeamName       *string
	AwardTitle     *string
	ContestID      *uuid.UUID
	Rank           *int
}

// RowError: kegagalan per-baris, tidak menggagalkan batch.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type CertificateService struct {
	Serial *SerialService
}

func NewCertificateService() *CertificateService {
	return &CertificateService{Serial: NewSerialService()}
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// CreateBulk membuat baris sertifikat (status LISTED, tanpa file) untuk tiap penerima.
// Tiap baris diproses independen: baris gagal dikumpulkan sebagai RowError, baris
// lain jalan terus. Error yang di-return hanya untuk kegagalan request-level
// (template tidak ada / tidak aktif).
func (s *CertificateService) CreateBulk(
	ctx context.Context,
	db *gorm.DB,
	templateID uuid.UUID,
	rows []BulkRow,
) ([]model.CertificateModel, []RowError, error) {

	var tpl model.CertificateTemplateModel
	if err := db.WithContext(ctx).
		First(&tpl, "cert_template_id = ?", templateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTemplateNotFound
		}
		return nil, nil, fmt.Errorf("gagal memuat template: %w", err)
	}
	if tpl.CertTemplateStatus != model.TemplateStatusActive {
		return nil, nil, ErrTemplateInactive
	}

	created := make([]model.CertificateModel, 0, len(rows))
	rowErrors := []RowError{}

	for i, row := range rows {
		rowNum := i + 1

		name := strings.TrimSpace(row.RecipientName)
		if name == "" {
			rowErrors = append(rowErrors, RowError{
				Row:     rowNum,
				Message: "Nama penerima wajib diisi",
			})
			continue
		}

		cert := model.CertificateModel{
			CertTemplateID:     tpl.CertTemplateID,
			CertRecipientName:  name,
			CertRecipientEmail: trimToNil(row.RecipientEmail),
			CertICNumber:       trimToNil(row.ICNumber),
			CertTeamName:       trimToNil(row.TeamName),
			CertAwardTitle:     trimToNil(row.AwardTitle),
			CertType:           tpl.CertTemplateTargetType,
			CertUniqueCode:     helper.GenerateUniqueCode("SIJIL"),
			CertStatus:         model.CertStatusListed,
			CertOwnership: datatypes.JSONMap{
				"pre_generated": true,
				"event_id":      tpl.CertTemplateEventID.String(),
			},
		}
		if row.ContestID != nil {
			cert.CertOwnership["contest_id"] = row.ContestID.String()
		}
		if row.Rank != nil {
			cert.CertOwnership["rank"] = *row.Rank
		}

		// serial + insert dalam SATU transaksi: gagal insert = serial ikut rollback
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			serial, err := s.Serial.Issue(tx, tpl.CertTemplateTargetType)
			if err != nil {
				return err
			}
			cert.CertSerialNumber = serial
			return tx.Create(&cert).Error
		})
		if err != nil && helper.IsUniqueViolation(err) {
			// tabrakan kode unik / serial (sangat jarang) — coba ulang sekali
			cert.CertUniqueCode = helper.GenerateUniqueCode("SIJIL")
			err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				serial, errIssue := s.Serial.Issue(tx, tpl.CertTemplateTargetType)
				if errIssue != nil {
					return errIssue
				}
				cert.CertSerialNumber = serial
				return tx.Create(&cert).Error
			})
		}
		if err != nil {
			log.Printf("[CERT] bulk row %d gagal: %v", rowNum, err)
			rowErrors = append(rowErrors, RowError{
				Row:     rowNum,
				Message: "Gagal menyimpan sertifikat",
			})
			continue
		}

		created = append(created, cert)
	}

	return created, rowErrors, nil
}
