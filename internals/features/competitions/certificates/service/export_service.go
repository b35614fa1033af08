// file: internals/features/competitions/certificates/service/export_service.go
package service

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var ErrNoValidFiles = errors.New("tidak ada file sertifikat valid untuk di-export")

// CertFileRef: referensi satu file PDF sertifikat yang mau digabung.
type CertFileRef struct {
	Serial int64
	Code   string
	Path   string
}

// ExportOptions: parameter operasional export — batch size & level kompresi
// dikonfigurasi, bukan konstanta (tuning tanpa ubah kode).
type ExportOptions struct {
	BatchSize   int
	ZipLevel    int
	EventID     string
	TemplateID  string
	Scope       string
	GeneratedBy string
}

// ExportManifest: metadata.json yang ditanam di arsip zip.
type ExportManifest struct {
	EventID           string    `json:"event_id"`
	TemplateID        string    `json:"template_id,omitempty"`
	TotalCertificates int       `json:"total_certificates"`
	Batches           int       `json:"batches"`
	BatchSize         int       `json:"batch_size"`
	SkippedFiles      []string  `json:"skipped_files,omitempty"`
	GeneratedAt       time.Time `json:"generated_at"`
	GeneratedBy       string    `json:"generated_by,omitempty"`
	Scope             string    `json:"scope,omitempty"`
}

type ExportService struct{}

func NewExportService() *ExportService { return &ExportService{} }

// ResolveFiles memilah referensi yang filenya benar-benar ada di disk.
// File hilang di-skip (dicatat), bukan menggagalkan export.
func ResolveFiles(refs []CertFileRef) (ok []CertFileRef, skipped []CertFileRef) {
	for _, ref := range refs {
		if ref.Path == "" {
			skipped = append(skipped, ref)
			continue
		}
		if _, err := os.Stat(ref.Path); err != nil {
			log.Printf("[EXPORT] ⚠️ file sertifikat %s hilang di disk (%s), di-skip", ref.Code, ref.Path)
			skipped = append(skipped, ref)
			continue
		}
		ok = append(ok, ref)
	}
	return ok, skipped
}

// PartitionRefs memecah daftar (urutan dipertahankan) jadi batch berukuran batchSize.
func PartitionRefs(refs []CertFileRef, batchSize int) [][]CertFileRef {
	if batchSize < 1 {
		batchSize = 50
	}
	var batches [][]CertFileRef
	for start := 0; start < len(refs); start += batchSize {
		end := start + batchSize
		if end > len(refs) {
			end = len(refs)
		}
		batches = append(batches, refs[start:end])
	}
	return batches
}

// batchFilename: nama PDF gabungan dari serial pertama/terakhir anggota batch.
func batchFilename(batch []CertFileRef) string {
	return fmt.Sprintf("sijil_%06d-%06d.pdf", batch[0].Serial, batch[len(batch)-1].Serial)
}

// MergeForDownload menjalankan seluruh pipeline export:
// resolve → partisi → merge per batch (pdfcpu) → zip (+ metadata.json) ke w.
// Satu file sumber korup hanya di-skip dengan warning; deadline ctx dicek antar
// batch supaya export terberat tetap bisa dihentikan.
func (s *ExportService) MergeForDownload(ctx context.Context, w io.Writer, refs []CertFileRef, opts ExportOptions) error {
	resolved, skipped := ResolveFiles(refs)
	if len(resolved) == 0 {
		return ErrNoValidFiles
	}

	tmpDir, err := os.MkdirTemp("", "cert-export-*")
	if err != nil {
		return fmt.Errorf("gagal membuat folder kerja: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	batchSize := opts.BatchSize
	if batchSize < 1 {
		batchSize = 50
	}
	batches := PartitionRefs(resolved, batchSize)

	type mergedBatch struct {
		name string
		path string
	}
	var merged []mergedBatch

	for i, batch := range batches {
		select {
		case <-ctx.Done():
			return fmt.Errorf("export dibatalkan: %w", ctx.Err())
		default:
		}

		// validasi dulu: anggota korup di-skip, sisanya tetap digabung
		var inFiles []string
		var kept []CertFileRef
		for _, ref := range batch {
			if err := api.ValidateFile(ref.Path, nil); err != nil {
				log.Printf("[EXPORT] ⚠️ PDF %s korup (%v), di-skip", ref.Code, err)
				skipped = append(skipped, ref)
				continue
			}
			inFiles = append(inFiles, ref.Path)
			kept = append(kept, ref)
		}
		if len(inFiles) == 0 {
			log.Printf("[EXPORT] batch %d kosong setelah validasi, di-skip", i+1)
			continue
		}

		// nama batch dari serial anggota yang benar-benar ikut digabung
		outName := batchFilename(kept)
		outPath := filepath.Join(tmpDir, outName)
		if err := api.MergeCreateFile(inFiles, outPath, false, nil); err != nil {
			return fmt.Errorf("gagal merge batch %d: %w", i+1, err)
		}
		merged = append(merged, mergedBatch{name: outName, path: outPath})
	}

	if len(merged) == 0 {
		return ErrNoValidFiles
	}

	// ===== zip stream =====
	zw := zip.NewWriter(w)
	zipLevel := opts.ZipLevel
	if zipLevel < 1 || zipLevel > 9 {
		zipLevel = flate.DefaultCompression
	}
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, zipLevel)
	})

	for _, mb := range merged {
		entry, err := zw.Create(mb.name)
		if err != nil {
			return fmt.Errorf("gagal menulis entri zip: %w", err)
		}
		f, err := os.Open(mb.path)
		if err != nil {
			return fmt.Errorf("gagal membuka batch %s: %w", mb.name, err)
		}
		_, err = io.Copy(entry, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("gagal menyalin batch %s: %w", mb.name, err)
		}
	}

	manifest := ExportManifest{
		EventID:           opts.EventID,
		TemplateID:        opts.TemplateID,
		TotalCertificates: len(resolved),
		Batches:           len(merged),
		BatchSize:         batchSize,
		GeneratedAt:       time.Now(),
		GeneratedBy:       opts.GeneratedBy,
		Scope:             opts.Scope,
	}
	for _, ref := range skipped {
		manifest.SkippedFiles = append(manifest.SkippedFiles, ref.Code)
	}

	metaEntry, err := zw.Create("metadata.json")
	if err != nil {
		return fmt.Errorf("gagal menulis metadata.json: %w", err)
	}
	enc := json.NewEncoder(metaEntry)
	enc.SetIndent("", "  ")
	if err := enc.Encode(manifest); err != nil {
		return fmt.Errorf("gagal encode metadata.json: %w", err)
	}

	return zw.Close()
}
