package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"classpulse-backend/internal/apperrors"
	"classpulse-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeStore keeps records in memory and assigns ids and timestamps the way
// the Mongo repo does.
type fakeStore struct {
	mu      sync.Mutex
	records []models.Feedback
	failOn  string // "create", "list" or "delete"
}

func (f *fakeStore) Create(ctx context.Context, fb *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "create" {
		return errors.New("write concern error")
	}
	fb.ID = bson.NewObjectID()
	fb.CreatedAt = time.Now().UTC()
	f.records = append(f.records, *fb)
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "list" {
		return nil, errors.New("cursor error")
	}
	// newest first
	out := make([]models.Feedback, len(f.records))
	for i, fb := range f.records {
		out[len(f.records)-1-i] = fb
	}
	return out, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "delete" {
		return errors.New("connection reset")
	}
	for i, fb := range f.records {
		if fb.ID.Hex() == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeBlobs struct {
	mu       sync.Mutex
	objects  map[string][]byte
	uploads  int
	removals []string
	failPut  bool
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut {
		return "", errors.New("bucket unreachable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.objects[key] = data
	f.uploads++
	return fmt.Sprintf("http://blobs.local/%s", key), nil
}

func (f *fakeBlobs) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.removals = append(f.removals, key)
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeNotifier) FeedbackReceived(ctx context.Context, name, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func newService(store *fakeStore, blobs *fakeBlobs) *FeedbackService {
	return New(store, blobs, &fakeNotifier{})
}

func TestCreateThenListTextOnly(t *testing.T) {
	store := &fakeStore{}
	blobs := newFakeBlobs()
	svc := newService(store, blobs)
	ctx := context.Background()

	before := time.Now().UTC()

	fb, err := svc.Create(ctx, CreateInput{Name: "Ada", Text: "Great course"})
	require.NoError(t, err)
	assert.False(t, fb.ID.IsZero())
	assert.Nil(t, fb.ImageURL)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Great course", list[0].Feedback)
	assert.Equal(t, "Ada", list[0].Name)
	assert.Nil(t, list[0].ImageURL)

	require.NotNil(t, list[0].Timestamp)
	ts, err := time.Parse(time.RFC3339, *list[0].Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before), "timestamp must not predate the create call")

	assert.Equal(t, 0, blobs.uploads, "no blob write for a text-only submission")
}

func TestCreateWithImage(t *testing.T) {
	store := &fakeStore{}
	blobs := newFakeBlobs()
	svc := newService(store, blobs)

	fb, err := svc.Create(context.Background(), CreateInput{
		Text:      "Slides are blurry",
		Image:     []byte{0x89, 0x50, 0x4e, 0x47},
		ImageName: "slide.png",
		ImageMime: "image/png",
	})
	require.NoError(t, err)
	require.NotNil(t, fb.ImageURL)
	assert.Contains(t, *fb.ImageURL, "feedback_images/")
	assert.Equal(t, 1, blobs.uploads)
}

func TestCreateEmptyTextRejected(t *testing.T) {
	store := &fakeStore{}
	blobs := newFakeBlobs()
	svc := newService(store, blobs)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Create(context.Background(), CreateInput{
			Text:      text,
			Image:     []byte{1, 2, 3},
			ImageName: "x.png",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	}

	assert.Empty(t, store.records, "no record for rejected input")
	assert.Equal(t, 0, blobs.uploads, "validation must run before any upload")
}

func TestCreateUploadFailure(t *testing.T) {
	store := &fakeStore{}
	blobs := newFakeBlobs()
	blobs.failPut = true
	svc := newService(store, blobs)

	_, err := svc.Create(context.Background(), CreateInput{
		Text:      "with image",
		Image:     []byte{1},
		ImageName: "x.png",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUpload))
	assert.Empty(t, store.records, "upload failure must not create a dangling record")
}

func TestCreatePersistenceFailureCompensatesBlob(t *testing.T) {
	store := &fakeStore{failOn: "create"}
	blobs := newFakeBlobs()
	svc := newService(store, blobs)

	_, err := svc.Create(context.Background(), CreateInput{
		Text:      "doomed",
		Image:     []byte{1, 2},
		ImageName: "x.png",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPersistence))

	require.Len(t, blobs.removals, 1, "uploaded blob must be removed when the document write fails")
	assert.Empty(t, blobs.objects, "no orphaned blob left behind")
}

func TestListOrderingNonIncreasing(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store, newFakeBlobs())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, CreateInput{Text: fmt.Sprintf("feedback %d", i)})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)

	var prev time.Time
	for i, item := range list {
		require.NotNil(t, item.Timestamp)
		ts, err := time.Parse(time.RFC3339, *item.Timestamp)
		require.NoError(t, err)
		if i > 0 {
			assert.False(t, ts.After(prev), "list must be non-increasing by timestamp")
		}
		prev = ts
	}
	assert.Equal(t, "feedback 4", list[0].Feedback, "most recent first")
}

func TestDeleteThenList(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store, newFakeBlobs())
	ctx := context.Background()

	fb, err := svc.Create(ctx, CreateInput{Text: "delete me"})
	require.NoError(t, err)
	id := fb.ID.Hex()

	require.NoError(t, svc.Delete(ctx, id))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	for _, item := range list {
		assert.NotEqual(t, id, item.ID)
	}

	// Second delete of the same id: not found, not a crash
	err = svc.Delete(ctx, id)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestListPersistenceFailure(t *testing.T) {
	svc := newService(&fakeStore{failOn: "list"}, newFakeBlobs())
	_, err := svc.List(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrPersistence))
}

func TestDeletePersistenceFailure(t *testing.T) {
	svc := newService(&fakeStore{failOn: "delete"}, newFakeBlobs())
	err := svc.Delete(context.Background(), bson.NewObjectID().Hex())
	assert.True(t, errors.Is(err, apperrors.ErrPersistence))
}

func TestToResponseKeepsSubSecondPrecision(t *testing.T) {
	created := time.Date(2026, 8, 29, 10, 0, 0, 500_000_000, time.UTC)
	fb := &models.Feedback{ID: bson.NewObjectID(), Text: "mid-second", CreatedAt: created}

	resp := ToResponse(fb)
	require.NotNil(t, resp.Timestamp)

	parsed, err := time.Parse(time.RFC3339, *resp.Timestamp)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(created), "serialized %q parsed to %v, want %v", *resp.Timestamp, parsed, created)
	assert.False(t, parsed.Before(created), "parsed timestamp must not land before the creation instant")
}

func TestToResponseZeroTimestampIsNull(t *testing.T) {
	fb := &models.Feedback{ID: bson.NewObjectID(), Text: "old doc"}
	resp := ToResponse(fb)
	assert.Nil(t, resp.Timestamp, "unreadable timestamp serializes as null, record still returned")
	assert.Equal(t, "old doc", resp.Feedback)
}
