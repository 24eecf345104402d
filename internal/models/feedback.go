package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback is one submitted piece of student feedback. Records are created
// once and deleted once; there is no update path.
//
// ExtractedText is never written by this backend — the OCR result stays
// ephemeral — but older documents written by the OCR pipeline may carry it,
// so reads tolerate the field.
type Feedback struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name,omitempty" json:"name,omitempty"`
	Text          string        `bson:"feedback" json:"feedback"`
	ImageURL      *string       `bson:"image_url" json:"imageUrl"`
	ExtractedText string        `bson:"extracted_text,omitempty" json:"extractedText,omitempty"`
	CreatedAt     time.Time     `bson:"timestamp" json:"timestamp"`
}
