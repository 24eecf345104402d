// Package service orchestrates the feedback lifecycle: validate, upload the
// optional image, persist the record, serve it back newest-first, delete.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"classpulse-backend/internal/api"
	"classpulse-backend/internal/apperrors"
	"classpulse-backend/internal/models"
	"classpulse-backend/internal/notify"
	"classpulse-backend/internal/storage"
)

// Store is the document-store surface the service needs.
type Store interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
	Delete(ctx context.Context, id string) error
}

type FeedbackService struct {
	store    Store
	blobs    storage.BlobStore
	notifier notify.Notifier
}

func New(store Store, blobs storage.BlobStore, notifier notify.Notifier) *FeedbackService {
	return &FeedbackService{
		store:    store,
		blobs:    blobs,
		notifier: notifier,
	}
}

// CreateInput carries one submission. Image is optional; Text is not.
type CreateInput struct {
	Name      string
	Text      string
	Image     []byte
	ImageName string
	ImageMime string
}

// Create validates the input, uploads the image when present, and writes the
// record. The document write never happens before the upload succeeds, so a
// stored image_url always resolves. If the document write fails after the
// upload, the blob is removed again rather than left orphaned.
func (s *FeedbackService) Create(ctx context.Context, in CreateInput) (*models.Feedback, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: feedback text is required", apperrors.ErrValidation)
	}

	var imageURL *string
	var key string
	if len(in.Image) > 0 {
		key = storage.ObjectKey(in.ImageName)
		url, err := s.blobs.Upload(ctx, key, in.ImageMime, bytes.NewReader(in.Image), int64(len(in.Image)))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUpload, err)
		}
		imageURL = &url
	}

	feedback := &models.Feedback{
		Name:     strings.TrimSpace(in.Name),
		Text:     text,
		ImageURL: imageURL,
	}

	if err := s.store.Create(ctx, feedback); err != nil {
		if key != "" {
			// Compensate: don't leave a blob no record points at
			if rmErr := s.blobs.Remove(context.WithoutCancel(ctx), key); rmErr != nil {
				log.Printf("⚠️  Failed to remove orphaned blob %s: %v", key, rmErr)
			}
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	// Notify in the background; a slow mail provider must not delay the response
	go func() {
		if err := s.notifier.FeedbackReceived(context.Background(), feedback.Name, feedback.Text); err != nil {
			log.Printf("Error sending feedback notification: %v", err)
		}
	}()

	return feedback, nil
}

// List returns all records, newest first, in the canonical wire shape.
func (s *FeedbackService) List(ctx context.Context) ([]api.FeedbackResponse, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	out := make([]api.FeedbackResponse, 0, len(records))
	for i := range records {
		out = append(out, ToResponse(&records[i]))
	}
	return out, nil
}

// Delete removes a record. The associated blob is left in place; see the
// delete handling notes in DESIGN.md.
func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// ToResponse converts a stored record into the canonical wire shape. The
// timestamp becomes an RFC 3339 string at full stored precision, or null
// when the stored value was unreadable. Sub-second precision is kept so a
// parsed-back timestamp never lands before the moment the record was
// created.
func ToResponse(fb *models.Feedback) api.FeedbackResponse {
	resp := api.FeedbackResponse{
		ID:            fb.ID.Hex(),
		Name:          fb.Name,
		Feedback:      fb.Text,
		ImageURL:      fb.ImageURL,
		ExtractedText: fb.ExtractedText,
	}
	if !fb.CreatedAt.IsZero() {
		ts := fb.CreatedAt.UTC().Format(time.RFC3339Nano)
		resp.Timestamp = &ts
	}
	return resp
}
