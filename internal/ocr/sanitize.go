package ocr

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	brTag  = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// Sanitize reduces OCR output to plain text. The upstream service encodes
// line breaks as <br> tags and extracted text may contain arbitrary markup
// from the scanned page; everything but the line breaks is stripped so the
// result is safe to render or feed to speech synthesis.
func Sanitize(s string) string {
	s = brTag.ReplaceAllString(s, "\n")
	s = strict.Sanitize(s)
	// The strict policy entity-escapes what it keeps; undo that for plain text
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
