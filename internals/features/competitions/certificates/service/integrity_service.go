// file: internals/features/competitions/certificates/service/integrity_service.go
package service

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"pertandinganku_backend/internals/features/competitions/certificates/model"
)

// DriftEntry: sertifikat yang cert_file_path-nya terisi tapi filenya hilang di disk.
type DriftEntry struct {
	CertID       string `json:"cert_id"`
	CertCode     string `json:"cert_code"`
	CertFilePath string `json:"cert_file_path"`
}

// CheckFileIntegrity mengaudit drift antara kolom cert_file_path dan isi disk.
// Read-only: tidak memperbaiki apa-apa, hanya melaporkan.
func CheckFileIntegrity(ctx context.Context, db *gorm.DB) ([]DriftEntry, error) {
	var certs []model.CertificateModel
	if err := db.WithContext(ctx).
		Where("cert_file_path IS NOT NULL").
		Find(&certs).Error; err != nil {
		return nil, fmt.Errorf("gagal memuat sertifikat: %w", err)
	}

	drift := []DriftEntry{}
	for _, cert := range certs {
		if cert.CertFilePath == nil {
			continue
		}
		if _, err := os.Stat(*cert.CertFilePath); err != nil {
			drift = append(drift, DriftEntry{
				CertID:       cert.CertID.String(),
				CertCode:     cert.CertUniqueCode,
				CertFilePath: *cert.CertFilePath,
			})
		}
	}

	return drift, nil
}
