package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// randomPartBytes is the number of random bytes mixed into generated
// filenames; hex encoding doubles it to 12 characters.
const randomPartBytes = 6

// GenerateSecureFilename returns a storage name of the form
// "<unix-millis>-<12 hex chars><ext>", where ext is the extension of
// originalName. The original base name never appears in the result.
func GenerateSecureFilename(originalName string, now time.Time) (string, error) {
	random := make([]byte, randomPartBytes)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), hex.EncodeToString(random), filepath.Ext(originalName)), nil
}

// NormalizedExt returns the lower-cased extension of name including the dot,
// or an empty string if name has none.
func NormalizedExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
