package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const keyPrefix = "feedback_images"

// ObjectKey builds a collision-resistant storage key for an uploaded image:
// millisecond timestamp plus a random component plus the original base
// filename, so keys stay human-readable but never collide even for
// same-millisecond uploads of the same file.
func ObjectKey(filename string) string {
	name := sanitizeFilename(filename)
	rand := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%d_%s_%s", keyPrefix, time.Now().UnixMilli(), rand, name)
}

func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "image"
	}
	// Path separators from foreign OSes and spaces make awkward object keys
	name = strings.NewReplacer("\\", "_", "/", "_", " ", "_").Replace(name)
	return name
}
