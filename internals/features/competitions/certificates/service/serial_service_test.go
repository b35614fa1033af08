package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	certModel "pertandinganku_backend/internals/features/competitions/certificates/model"
	surveyModel "pertandinganku_backend/internals/features/competitions/surveys/model"
)

// setupTestDB: sqlite in-memory, satu koneksi supaya akses paralel terserialisasi
// seperti row-lock di Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&certModel.CertificateTemplateModel{},
		&certModel.CertificateModel{},
		&certModel.SerialCounterModel{},
		&surveyModel.SurveyModel{},
		&surveyModel.SurveySubmissionModel{},
	))

	return db
}

func TestSerialIssueMonotonic(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSerialService()

	var prev int64
	for i := 1; i <= 10; i++ {
		serial, err := svc.IssueOne(context.Background(), db, certModel.TargetTypeGeneral)
		require.NoError(t, err)
		require.Equal(t, int64(i), serial)
		require.Greater(t, serial, prev)
		prev = serial
	}
}

func TestSerialIssuePerClassification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSerialService()

	// klasifikasi berbeda = urutan serial independen
	s1, err := svc.IssueOne(context.Background(), db, certModel.TargetTypeGeneral)
	require.NoError(t, err)
	s2, err := svc.IssueOne(context.Background(), db, certModel.TargetTypeEventWinner)
	require.NoError(t, err)
	s3, err := svc.IssueOne(context.Background(), db, certModel.TargetTypeGeneral)
	require.NoError(t, err)

	require.Equal(t, int64(1), s1)
	require.Equal(t, int64(1), s2)
	require.Equal(t, int64(2), s3)
}

func TestSerialIssueRejectsUnknownClassification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSerialService()

	_, err := svc.IssueOne(context.Background(), db, "BUKAN_KLASIFIKASI")
	require.Error(t, err)
}

// N penerbit paralel → N nilai berbeda, tanpa duplikat dan tanpa bolong.
func TestSerialIssueConcurrentDistinct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSerialService()

	const n = 25
	results := make(chan int64, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serial, err := svc.IssueOne(context.Background(), db, certModel.TargetTypeTrainers)
			if err != nil {
				errs <- err
				return
			}
			results <- serial
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var serials []int64
	for s := range results {
		serials = append(serials, s)
	}
	require.Len(t, serials, n)

	sort.Slice(serials, func(i, j int) bool { return serials[i] < serials[j] })
	for i, s := range serials {
		require.Equal(t, int64(i+1), s, "serial harus rapat tanpa bolong/duplikat")
	}
}
