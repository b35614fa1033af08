// file: internals/helpers/convert_image.go
package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const backgroundMaxWidth = 2480 // ~A4 landscape @300dpi

// SaveImageAsWebp menerima upload gambar (png/jpg/webp), resize bila terlalu besar,
// lalu simpan sebagai .webp di folder tujuan. Return path file yang tersimpan.
func SaveImageAsWebp(fileHeader *multipart.FileHeader, destDir string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	if img.Bounds().Dx() > backgroundMaxWidth {
		img = imaging.Resize(img, backgroundMaxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	base := strings.TrimSuffix(SanitizeFilename(fileHeader.Filename), filepath.Ext(fileHeader.Filename))
	if base == "" {
		base = "background"
	}
	filename := fmt.Sprintf("%s_%s.webp", base, uuid.NewString()[:8])
	destPath := filepath.Join(destDir, filename)

	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("gagal membuat file webp: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 85}); err != nil {
		_ = os.Remove(destPath)
		return "", fmt.Errorf("encode webp gagal: %w", err)
	}

	return destPath, nil
}
