package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NormalizeEmail trims whitespace and lowercases. Applied before every
// lookup and insert so stored emails compare case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UploadFileName builds a collision-resistant server-side filename:
// millisecond timestamp plus a random suffix, keeping the original
// extension. Concurrent uploads never produce the same name.
func UploadFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
