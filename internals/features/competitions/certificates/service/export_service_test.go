package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/require"
)

// writeSamplePDF membuat PDF satu halaman beneran (import PNG via pdfcpu).
func writeSamplePDF(t *testing.T, dir, name string) string {
	t.Helper()

	pngPath := filepath.Join(dir, name+".png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	require.NoError(t, f.Close())

	pdfPath := filepath.Join(dir, name+".pdf")
	require.NoError(t, api.ImportImagesFile([]string{pngPath}, pdfPath, nil, nil))
	return pdfPath
}

// readZipEntries membongkar arsip hasil export jadi map nama→isi.
func readZipEntries(t *testing.T, buf *bytes.Buffer) map[string][]byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	entries := map[string][]byte{}
	for _, zf := range zr.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[zf.Name] = data
	}
	return entries
}

func entryPageCount(t *testing.T, dir, name string, data []byte) int {
	t.Helper()
	p := filepath.Join(dir, "keluar_"+name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	n, err := api.PageCountFile(p)
	require.NoError(t, err)
	return n
}

func makeRefs(n int) []CertFileRef {
	refs := make([]CertFileRef, n)
	for i := range refs {
		refs[i] = CertFileRef{Serial: int64(i + 1), Code: fmt.Sprintf("SIJIL-%06d", i+1)}
	}
	return refs
}

func TestPartitionRefsContiguousBatches(t *testing.T) {
	// 125 sertifikat, batch 50 → [50, 50, 25], urutan serial dipertahankan
	batches := PartitionRefs(makeRefs(125), 50)
	require.Len(t, batches, 3)
	require.Len(t, batches[0], 50)
	require.Len(t, batches[1], 50)
	require.Len(t, batches[2], 25)

	var next int64 = 1
	for _, batch := range batches {
		for _, ref := range batch {
			require.Equal(t, next, ref.Serial)
			next++
		}
	}
	require.Equal(t, int64(126), next)
}

func TestPartitionRefsExactMultipleAndSmallInput(t *testing.T) {
	require.Len(t, PartitionRefs(makeRefs(100), 50), 2)

	batches := PartitionRefs(makeRefs(3), 50)
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 3)

	require.Empty(t, PartitionRefs(nil, 50))

	// batch size tidak masuk akal → fallback 50
	require.Len(t, PartitionRefs(makeRefs(120), 0), 3)
}

func TestBatchFilenameUsesSerialRange(t *testing.T) {
	batch := []CertFileRef{{Serial: 51}, {Serial: 52}, {Serial: 100}}
	require.Equal(t, "sijil_000051-000100.pdf", batchFilename(batch))
}

func TestResolveFilesSkipsMissing(t *testing.T) {
	dir := t.TempDir()

	existing := filepath.Join(dir, "ada.pdf")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))

	refs := []CertFileRef{
		{Serial: 1, Code: "A", Path: existing},
		{Serial: 2, Code: "B", Path: filepath.Join(dir, "hilang.pdf")},
		{Serial: 3, Code: "C", Path: ""},
	}

	ok, skipped := ResolveFiles(refs)
	require.Len(t, ok, 1)
	require.Equal(t, "A", ok[0].Code)
	require.Len(t, skipped, 2)
}

func TestMergeForDownloadProducesBatchedZip(t *testing.T) {
	svc := NewExportService()
	dir := t.TempDir()

	refs := []CertFileRef{
		{Serial: 1, Code: "SIJIL-A", Path: writeSamplePDF(t, dir, "a")},
		{Serial: 2, Code: "SIJIL-B", Path: writeSamplePDF(t, dir, "b")},
		{Serial: 3, Code: "SIJIL-C", Path: writeSamplePDF(t, dir, "c")},
	}

	var buf bytes.Buffer
	err := svc.MergeForDownload(context.Background(), &buf, refs, ExportOptions{
		BatchSize: 2,
		ZipLevel:  6,
		EventID:   "evt-1",
		Scope:     "event",
	})
	require.NoError(t, err)

	entries := readZipEntries(t, &buf)
	require.Len(t, entries, 3)
	require.Contains(t, entries, "sijil_000001-000002.pdf")
	require.Contains(t, entries, "sijil_000003-000003.pdf")
	require.Contains(t, entries, "metadata.json")

	// halaman PDF gabungan = jumlah halaman anggotanya
	require.Equal(t, 2, entryPageCount(t, dir, "b1.pdf", entries["sijil_000001-000002.pdf"]))
	require.Equal(t, 1, entryPageCount(t, dir, "b2.pdf", entries["sijil_000003-000003.pdf"]))

	var manifest ExportManifest
	require.NoError(t, json.Unmarshal(entries["metadata.json"], &manifest))
	require.Equal(t, "evt-1", manifest.EventID)
	require.Equal(t, 3, manifest.TotalCertificates)
	require.Equal(t, 2, manifest.Batches)
	require.Equal(t, 2, manifest.BatchSize)
	require.Empty(t, manifest.SkippedFiles)
}

func TestMergeForDownloadSkipsCorruptMember(t *testing.T) {
	svc := NewExportService()
	dir := t.TempDir()

	// anggota pertama korup: merge tetap jalan tanpa halamannya,
	// dan nama batch mengikuti serial anggota yang selamat
	corrupt := filepath.Join(dir, "rosak.pdf")
	require.NoError(t, os.WriteFile(corrupt, []byte("bukan pdf"), 0o644))

	refs := []CertFileRef{
		{Serial: 1, Code: "SIJIL-A", Path: corrupt},
		{Serial: 2, Code: "SIJIL-B", Path: writeSamplePDF(t, dir, "b")},
		{Serial: 3, Code: "SIJIL-C", Path: writeSamplePDF(t, dir, "c")},
	}

	var buf bytes.Buffer
	err := svc.MergeForDownload(context.Background(), &buf, refs, ExportOptions{BatchSize: 50, EventID: "evt-1"})
	require.NoError(t, err)

	entries := readZipEntries(t, &buf)
	require.Contains(t, entries, "sijil_000002-000003.pdf")
	require.NotContains(t, entries, "sijil_000001-000003.pdf")
	require.Equal(t, 2, entryPageCount(t, dir, "b1.pdf", entries["sijil_000002-000003.pdf"]))

	var manifest ExportManifest
	require.NoError(t, json.Unmarshal(entries["metadata.json"], &manifest))
	require.Equal(t, []string{"SIJIL-A"}, manifest.SkippedFiles)
}

func TestMergeForDownloadManifestRecordsEffectiveBatchSize(t *testing.T) {
	svc := NewExportService()
	dir := t.TempDir()

	refs := []CertFileRef{{Serial: 1, Code: "SIJIL-A", Path: writeSamplePDF(t, dir, "a")}}

	var buf bytes.Buffer
	err := svc.MergeForDownload(context.Background(), &buf, refs, ExportOptions{BatchSize: 0, EventID: "evt-1"})
	require.NoError(t, err)

	// batch size 0 → efektifnya fallback 50, manifest harus mencatat itu
	var manifest ExportManifest
	entries := readZipEntries(t, &buf)
	require.NoError(t, json.Unmarshal(entries["metadata.json"], &manifest))
	require.Equal(t, 50, manifest.BatchSize)
	require.Equal(t, 1, manifest.Batches)
}

func TestMergeForDownloadNoValidFiles(t *testing.T) {
	svc := NewExportService()
	var buf bytes.Buffer

	refs := []CertFileRef{
		{Serial: 1, Code: "A", Path: filepath.Join(t.TempDir(), "tidak-ada.pdf")},
	}
	err := svc.MergeForDownload(context.Background(), &buf, refs, ExportOptions{BatchSize: 50})
	require.ErrorIs(t, err, ErrNoValidFiles)
	require.Zero(t, buf.Len())
}

func TestMergeForDownloadAllCorruptMembers(t *testing.T) {
	svc := NewExportService()
	dir := t.TempDir()

	// file ada di disk tapi bukan PDF → lolos resolve, gagal validasi, batch kosong
	corrupt := filepath.Join(dir, "rosak.pdf")
	require.NoError(t, os.WriteFile(corrupt, []byte("bukan pdf"), 0o644))

	var buf bytes.Buffer
	refs := []CertFileRef{{Serial: 1, Code: "A", Path: corrupt}}
	err := svc.MergeForDownload(context.Background(), &buf, refs, ExportOptions{BatchSize: 50})
	require.ErrorIs(t, err, ErrNoValidFiles)
}

func TestMergeForDownloadCancelledContext(t *testing.T) {
	svc := NewExportService()
	dir := t.TempDir()

	f := filepath.Join(dir, "ada.pdf")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	refs := []CertFileRef{{Serial: 1, Code: "A", Path: f}}
	err := svc.MergeForDownload(ctx, &buf, refs, ExportOptions{BatchSize: 50})
	require.ErrorIs(t, err, context.Canceled)
}
