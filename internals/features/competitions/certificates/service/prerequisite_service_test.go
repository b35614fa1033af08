package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	certModel "pertandinganku_backend/internals/features/competitions/certificates/model"
	surveyModel "pertandinganku_backend/internals/features/competitions/surveys/model"
)

func seedCertificate(t *testing.T, db *gorm.DB, templateID uuid.UUID, serial int64) certModel.CertificateModel {
	t.Helper()
	cert := certModel.CertificateModel{
		CertTemplateID:    templateID,
		CertRecipientName: "Peserta Uji",
		CertType:          certModel.TargetTypeGeneral,
		CertSerialNumber:  serial,
		CertUniqueCode:    uuid.NewString(),
		CertStatus:        certModel.CertStatusListed,
	}
	require.NoError(t, db.Create(&cert).Error)
	return cert
}

func TestCheckAllowsWhenNoPrerequisites(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPrerequisiteService()

	tpl := seedTemplate(t, db, certModel.TargetTypeGeneral, certModel.TemplateStatusActive)
	cert := seedCertificate(t, db, tpl.CertTemplateID, 1)

	res, err := svc.Check(context.Background(), db, cert.CertID, uuid.New())
	require.NoError(t, err)
	require.True(t, res.CanDownload)
	require.Empty(t, res.Incomplete)
}

func TestCheckBlocksOnUnsubmittedSurvey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPrerequisiteService()

	survey := surveyModel.SurveyModel{
		SurveyEventID: uuid.New(),
		SurveyName:    "Maklum Balas Acara",
		SurveyStatus:  surveyModel.SurveyStatusActive,
	}
	require.NoError(t, db.Create(&survey).Error)

	tpl := seedTemplate(t, db, certModel.TargetTypeGeneral, certModel.TemplateStatusActive)
	tpl.CertTemplatePrerequisites = datatypes.JSON(
		`[{"prerequisite":"survey","survey_id":"` + survey.SurveyID.String() + `"}]`)
	require.NoError(t, db.Save(&tpl).Error)
	cert := seedCertificate(t, db, tpl.CertTemplateID, 1)

	contestantID := uuid.New()

	// belum submit → diblokir dengan label persis nama survey-nya
	res, err := svc.Check(context.Background(), db, cert.CertID, contestantID)
	require.NoError(t, err)
	require.False(t, res.CanDownload)
	require.Equal(t, []string{"Soal selidik: Maklum Balas Acara"}, res.Incomplete)

	// setelah submit → lolos
	sub := surveyModel.SurveySubmissionModel{
		SurveySubmissionSurveyID:     survey.SurveyID,
		SurveySubmissionContestantID: contestantID,
	}
	require.NoError(t, db.Create(&sub).Error)

	res, err = svc.Check(context.Background(), db, cert.CertID, contestantID)
	require.NoError(t, err)
	require.True(t, res.CanDownload)
	require.Empty(t, res.Incomplete)
}

func TestCheckMissingSurveyCountsAsIncomplete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPrerequisiteService()

	tpl := seedTemplate(t, db, certModel.TargetTypeGeneral, certModel.TemplateStatusActive)
	tpl.CertTemplatePrerequisites = datatypes.JSON(
		`[{"prerequisite":"survey","survey_id":"` + uuid.NewString() + `"}]`)
	require.NoError(t, db.Save(&tpl).Error)
	cert := seedCertificate(t, db, tpl.CertTemplateID, 1)

	res, err := svc.Check(context.Background(), db, cert.CertID, uuid.New())
	require.NoError(t, err)
	require.False(t, res.CanDownload)
	require.Equal(t, []string{"Soal selidik: (tidak ditemukan)"}, res.Incomplete)
}

func TestCheckUnknownKindCountsAsIncomplete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPrerequisiteService()

	tpl := seedTemplate(t, db, certModel.TargetTypeGeneral, certModel.TemplateStatusActive)
	tpl.CertTemplatePrerequisites = datatypes.JSON(`[{"prerequisite":"tarian_wajib"}]`)
	require.NoError(t, db.Save(&tpl).Error)
	cert := seedCertificate(t, db, tpl.CertTemplateID, 1)

	res, err := svc.Check(context.Background(), db, cert.CertID, uuid.New())
	require.NoError(t, err)
	require.False(t, res.CanDownload)
	require.Equal(t, []string{"Prasyarat tidak dikenal: tarian_wajib"}, res.Incomplete)
}

func TestCheckCorruptPrerequisitesFailsClosed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPrerequisiteService()

	tpl := seedTemplate(t, db, certModel.TargetTypeGeneral, certModel.TemplateStatusActive)
	tpl.CertTemplatePrerequisites = datatypes.JSON(`{"bukan":"array"}`)
	require.NoError(t, db.Save(&tpl).Error)
	cert := seedCertificate(t, db, tpl.CertTemplateID, 1)

	_, err := svc.Check(context.Background(), db, cert.CertID, uuid.New())
	require.ErrorIs(t, err, ErrPrerequisitesCorrupt)
}

func TestCheckCertificateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPrerequisiteService()

	_, err := svc.Check(context.Background(), db, uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestCheckOrphanTemplateFailsOpen(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPrerequisiteService()

	// cert merujuk template yang sudah tidak ada — jangan kunci peserta selamanya
	cert := seedCertificate(t, db, uuid.New(), 1)

	res, err := svc.Check(context.Background(), db, cert.CertID, uuid.New())
	require.NoError(t, err)
	require.True(t, res.CanDownload)
}
