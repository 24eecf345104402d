// Package api holds the wire types of the feedback HTTP surface plus a Go
// client for it. Storage-layer field naming (image_url vs imageUrl) never
// leaks past this package: responses always carry the canonical shape.
package api

// FeedbackResponse is one feedback record as served by GET /feedback.
// Timestamp is an ISO-8601 (RFC 3339) string, or null when the stored
// timestamp was unreadable.
type FeedbackResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name,omitempty"`
	Feedback      string  `json:"feedback"`
	ImageURL      *string `json:"imageUrl"`
	ExtractedText string  `json:"extractedText,omitempty"`
	Timestamp     *string `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// OCRResponse mirrors the external OCR service's contract.
type OCRResponse struct {
	ExtractedText string `json:"extracted_text"`
}
