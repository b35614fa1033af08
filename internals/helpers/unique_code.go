// file: internals/helpers/unique_code.go
package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // tanpa karakter ambigu (0/O, 1/I)

// GenerateUniqueCode membuat kode sertifikat unik: timestamp + suffix acak.
// Probabilitas tabrakan praktis nol; unique index di DB tetap jadi pagar terakhir.
func GenerateUniqueCode(prefix string) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			// fallback: pakai nanodetik, tetap unik secara praktis
			suffix[i] = codeAlphabet[time.Now().UnixNano()%int64(len(codeAlphabet))]
			continue
		}
		suffix[i] = codeAlphabet[n.Int64()]
	}
	ts := time.Now().Format("20060102150405")
	if prefix == "" {
		return fmt.Sprintf("%s-%s", ts, string(suffix))
	}
	return fmt.Sprintf("%s-%s-%s", strings.ToUpper(prefix), ts, string(suffix))
}

var reFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename menghapus karakter selain huruf, angka, titik, dash, underscore.
func SanitizeFilename(filename string) string {
	return reFilename.ReplaceAllString(filename, "_")
}
