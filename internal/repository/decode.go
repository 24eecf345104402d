package repository

import (
	"time"

	"classpulse-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func feedbackFromRaw(raw bson.Raw) models.Feedback {
	var fb models.Feedback
	if v, err := raw.LookupErr("_id"); err == nil {
		if oid, ok := v.ObjectIDOK(); ok {
			fb.ID = oid
		}
	}
	fb.Name = stringField(raw, "name")
	fb.Text = stringField(raw, "feedback")
	if url := stringField(raw, "image_url", "imageUrl"); url != "" {
		fb.ImageURL = &url
	}
	fb.ExtractedText = stringField(raw, "extracted_text")
	fb.CreatedAt = timeField(raw, "timestamp")
	return fb
}

// stringField returns the first of the given keys that holds a string.
func stringField(raw bson.Raw, keys ...string) string {
	for _, key := range keys {
		v, err := raw.LookupErr(key)
		if err != nil {
			continue
		}
		if s, ok := v.StringValueOK(); ok {
			return s
		}
	}
	return ""
}

// timeField accepts both native BSON datetimes and ISO-8601 strings (the
// OCR pipeline variant stored timestamps as strings). Anything else decodes
// to the zero time, which serializes as a null timestamp downstream.
func timeField(raw bson.Raw, key string) time.Time {
	v, err := raw.LookupErr(key)
	if err != nil {
		return time.Time{}
	}
	if ts, ok := v.TimeOK(); ok {
		return ts.UTC()
	}
	if s, ok := v.StringValueOK(); ok {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
