package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

// GenerateUploadName returns "file-<unix millis>-<9 random digits><ext>",
// keeping the original extension lower-cased.
func GenerateUploadName(now time.Time, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("file-%d-%09d%s", now.UnixMilli(), rand.Intn(1_000_000_000), ext)
}
