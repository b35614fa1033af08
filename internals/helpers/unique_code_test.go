package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^SIJIL-\d{14}-[A-HJ-NP-Z2-9]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := GenerateUniqueCode("sijil")
		require.Regexp(t, re, code)
		require.False(t, seen[code], "kode duplikat: %s", code)
		seen[code] = true
	}
}

func TestGenerateUniqueCodeWithoutPrefix(t *testing.T) {
	code := GenerateUniqueCode("")
	require.Regexp(t, `^\d{14}-[A-HJ-NP-Z2-9]{6}$`, code)
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "sijil_2026_final.pdf", SanitizeFilename("sijil 2026/final.pdf"))
	require.Equal(t, "laporan-akhir_v2.zip", SanitizeFilename("laporan-akhir_v2.zip"))
}
