// file: internals/features/competitions/certificates/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"pertandinganku_backend/internals/configs"
	"pertandinganku_backend/internals/features/competitions/certificates/model"
)

// StartCertFileCleanupScheduler menghapus file PDF sertifikat yang sudah melewati
// TTL, lalu reset baris DB: cert_file_path → NULL, cert_status → LISTED.
// Sertifikat bisa dirender ulang kapan saja, jadi file lama aman dibuang.
func StartCertFileCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan file sertifikat lama...")

			ttlDays := configs.CertFileTTLDays()
			cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var aged []model.CertificateModel
			if err := db.
				Where("cert_status = ? AND cert_file_path IS NOT NULL AND updated_at < ?", model.CertStatusReady, cutoff).
				Limit(100).
				Find(&aged).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Gagal ambil sertifikat lama: %v", err)
			} else if len(aged) > 0 {
				cleaned := 0
				for _, cert := range aged {
					if cert.CertFilePath != nil {
						if err := os.Remove(*cert.CertFilePath); err != nil && !os.IsNotExist(err) {
							log.Printf("[CLEANUP ERROR] Gagal hapus file %s: %v", *cert.CertFilePath, err)
							continue
						}
					}
					if err := db.Model(&model.CertificateModel{}).
						Where("cert_id = ?", cert.CertID).
						Updates(map[string]interface{}{
							"cert_file_path": nil,
							"cert_status":    model.CertStatusListed,
						}).Error; err != nil {
						log.Printf("[CLEANUP ERROR] Gagal reset sertifikat %s: %v", cert.CertID, err)
						continue
					}
					cleaned++
				}
				log.Printf("[CLEANUP] %d file sertifikat lama dibersihkan", cleaned)
			} else {
				log.Println("[CLEANUP] Tidak ada file sertifikat yang memenuhi syarat dihapus")
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
