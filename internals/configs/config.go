package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}

/* =========================================================
   Konfigurasi workflow sertifikat (batch export & cleanup)
   ========================================================= */

// CertUploadDir: folder flat tempat file PDF sertifikat disimpan.
func CertUploadDir() string {
	return GetEnv("CERT_UPLOAD_DIR", "./uploads/certificates")
}

// CertExportBatchSize: jumlah sertifikat per batch PDF saat export (default 50).
func CertExportBatchSize() int {
	n := GetEnvInt("CERT_EXPORT_BATCH_SIZE", 50)
	if n < 1 {
		n = 50
	}
	return n
}

// CertExportZipLevel: level kompresi deflate untuk arsip zip export (1-9).
func CertExportZipLevel() int {
	lvl := GetEnvInt("CERT_EXPORT_ZIP_LEVEL", 6)
	if lvl < 1 || lvl > 9 {
		lvl = 6
	}
	return lvl
}

// CertExportTimeout: deadline untuk endpoint export terberat (default 5 menit).
func CertExportTimeout() time.Duration {
	return time.Duration(GetEnvInt("CERT_EXPORT_TIMEOUT_SECONDS", 300)) * time.Second
}

// CertFileTTLDays: umur maksimum file PDF sebelum dibersihkan scheduler.
func CertFileTTLDays() int {
	return GetEnvInt("CERT_FILE_TTL_DAYS", 30)
}
