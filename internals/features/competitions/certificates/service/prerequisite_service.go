// file: internals/features/competitions/certificates/service/prerequisite_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "pertandinganku_backend/internals/features/competitions/certificates/model"
	surveyModel "pertandinganku_backend/internals/features/competitions/surveys/model"
)

var (
	ErrCertificateNotFound  = errors.New("sertifikat tidak ditemukan")
	ErrPrerequisitesCorrupt = errors.New("daftar prasyarat template rusak")
)

const PrerequisiteKindSurvey = "survey"

// PrerequisiteRef: satu entri prasyarat pada template (tagged union, tag = Prerequisite).
// Varian baru = tambah konstanta kind + daftarkan checker-nya di registry.
type PrerequisiteRef struct {
	Prerequisite string    `json:"prerequisite"`
	SurveyID     uuid.UUID `json:"survey_id,omitempty"`
}

// CheckResult: hasil cek prasyarat sebelum download.
type CheckResult struct {
	CanDownload bool     `json:"can_download"`
	Incomplete  []string `json:"incomplete"`
}

// prereqChecker mengembalikan (terpenuhi, label untuk yang belum terpenuhi).
type prereqChecker func(ctx context.Context, db *gorm.DB, ref PrerequisiteRef, contestantID uuid.UUID) (bool, string, error)

type PrerequisiteService struct {
	checkers map[string]prereqChecker
}

func NewPrerequisiteService() *PrerequisiteService {
	s := &PrerequisiteService{checkers: map[string]prereqChecker{}}
	s.checkers[PrerequisiteKindSurvey] = checkSurveyPrerequisite
	return s
}

// Check memuat daftar prasyarat template sertifikat lalu mengecek satu per satu.
//   - template tanpa prasyarat (field kosong/null) → boleh download (kasus umum)
//   - blob prasyarat tidak bisa di-parse → ErrPrerequisitesCorrupt (fail-closed;
//     blob rusak tidak boleh diam-diam melewati gerbang)
//   - survey yang dirujuk tapi tidak ada di DB → dihitung belum terpenuhi
func (s *PrerequisiteService) Check(
	ctx context.Context,
	db *gorm.DB,
	certificateID uuid.UUID,
	contestantID uuid.UUID,
) (CheckResult, error) {

	var cert certModel.CertificateModel
	if err := db.WithContext(ctx).
		First(&cert, "cert_id = ?", certificateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckResult{}, ErrCertificateNotFound
		}
		return CheckResult{}, fmt.Errorf("gagal memuat sertifikat: %w", err)
	}

	var tpl certModel.CertificateTemplateModel
	if err := db.WithContext(ctx).
		First(&tpl, "cert_template_id = ?", cert.CertTemplateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// sertifikat yatim tanpa template: perlakukan seperti tanpa prasyarat,
			// tapi catat keras — ini drift data
			log.Printf("[PREREQ] ⚠️ cert %s merujuk template %s yang tidak ada", cert.CertID, cert.CertTemplateID)
			return CheckResult{CanDownload: true, Incomplete: []string{}}, nil
		}
		return CheckResult{}, fmt.Errorf("gagal memuat template: %w", err)
	}

	if len(tpl.CertTemplatePrerequisites) == 0 {
		return CheckResult{CanDownload: true, Incomplete: []string{}}, nil
	}

	var refs []PrerequisiteRef
	if err := json.Unmarshal(tpl.CertTemplatePrerequisites, &refs); err != nil {
		log.Printf("[PREREQ] ❌ prasyarat template %s tidak bisa di-parse: %v", tpl.CertTemplateID, err)
		return CheckResult{}, ErrPrerequisitesCorrupt
	}

	incomplete := []string{}
	for _, ref := range refs {
		checker, ok := s.checkers[ref.Prerequisite]
		if !ok {
			// kind tak dikenal tidak bisa diverifikasi → anggap belum terpenuhi
			incomplete = append(incomplete, fmt.Sprintf("Prasyarat tidak dikenal: %s", ref.Prerequisite))
			continue
		}
		done, label, err := checker(ctx, db, ref, contestantID)
		if err != nil {
			return CheckResult{}, err
		}
		if !done {
			incomplete = append(incomplete, label)
		}
	}

	return CheckResult{
		CanDownload: len(incomplete) == 0,
		Incomplete:  incomplete,
	}, nil
}

func checkSurveyPrerequisite(ctx context.Context, db *gorm.DB, ref PrerequisiteRef, contestantID uuid.UUID) (bool, string, error) {
	var survey surveyModel.SurveyModel
	if err := db.WithContext(ctx).
		First(&survey, "survey_id = ?", ref.SurveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "Soal selidik: (tidak ditemukan)", nil
		}
		return false, "", fmt.Errorf("gagal memuat soal selidik: %w", err)
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&surveyModel.SurveySubmissionModel{}).
		Where("survey_submission_survey_id = ? AND survey_submission_contestant_id = ?", ref.SurveyID, contestantID).
		Count(&count).Error; err != nil {
		return false, "", fmt.Errorf("gagal cek submission: %w", err)
	}

	return count > 0, fmt.Sprintf("Soal selidik: %s", survey.SurveyName), nil
}
