package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	certModel "pertandinganku_backend/internals/features/competitions/certificates/model"
)

func seedTemplate(t *testing.T, db *gorm.DB, targetType, status string) certModel.CertificateTemplateModel {
	t.Helper()
	tpl := certModel.CertificateTemplateModel{
		CertTemplateEventID:    uuid.New(),
		CertTemplateName:       "Sijil Penyertaan",
		CertTemplateTargetType: targetType,
		CertTemplateStatus:     status,
	}
	require.NoError(t, db.Create(&tpl).Error)
	return tpl
}

func strPtr(s string) *string { return &s }

func TestCreateBulkPartialFailureIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService()
	tpl := seedTemplate(t, db, certModel.TargetTypeGeneral, certModel.TemplateStatusActive)

	// 10 baris, baris ke-5 nama kosong → 9 sukses, 1 error yang merujuk baris 5
	rows := make([]BulkRow, 10)
	for i := range rows {
		rows[i] = BulkRow{RecipientName: "Peserta", RecipientEmail: strPtr("  peserta@contoh.my  ")}
	}
	rows[4].RecipientName = "   "

	created, rowErrors, err := svc.CreateBulk(context.Background(), db, tpl.CertTemplateID, rows)
	require.NoError(t, err)
	require.Len(t, created, 9)
	require.Len(t, rowErrors, 1)
	require.Equal(t, 5, rowErrors[0].Row)

	// serial rapat 1..9, status LISTED, file path kosong, email di-trim
	for i, cert := range created {
		require.Equal(t, int64(i+1), cert.CertSerialNumber)
		require.Equal(t, certModel.CertStatusListed, cert.CertStatus)
		require.Nil(t, cert.CertFilePath)
		require.NotEmpty(t, cert.CertUniqueCode)
		require.NotNil(t, cert.CertRecipientEmail)
		require.Equal(t, "peserta@contoh.my", *cert.CertRecipientEmail)
	}
}

func TestCreateBulkNormalizesOptionalFieldsToNil(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService()
	tpl := seedTemplate(t, db, certModel.TargetTypeEventWinner, certModel.TemplateStatusActive)

	rank := 1
	rows := []BulkRow{{
		RecipientName: "  Juara Satu  ",
		ICNumber:      strPtr("   "), // whitespace → nil
		TeamName:      strPtr("Pasukan A"),
		Rank:          &rank,
	}}

	created, rowErrors, err := svc.CreateBulk(context.Background(), db, tpl.CertTemplateID, rows)
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Len(t, created, 1)

	cert := created[0]
	require.Equal(t, "Juara Satu", cert.CertRecipientName)
	require.Nil(t, cert.CertICNumber)
	require.NotNil(t, cert.CertTeamName)
	require.Equal(t, certModel.TargetTypeEventWinner, cert.CertType)
	require.Equal(t, true, cert.CertOwnership["pre_generated"])
}

func TestCreateBulkTemplateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService()

	_, _, err := svc.CreateBulk(context.Background(), db, uuid.New(), []BulkRow{{RecipientName: "X"}})
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCreateBulkTemplateInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCertificateService()
	tpl := seedTemplate(t, db, certModel.TargetTypeGeneral, certModel.TemplateStatusInactive)

	_, _, err := svc.CreateBulk(context.Background(), db, tpl.CertTemplateID, []BulkRow{{RecipientName: "X"}})
	require.ErrorIs(t, err, ErrTemplateInactive)
}
