package repository

import (
	"context"
	"time"

	"classpulse-backend/internal/apperrors"
	"classpulse-backend/internal/database"
	"classpulse-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{
		collection: database.GetCollection("feedbacks"),
	}
}

// Create inserts the record with a server-assigned timestamp. The caller's
// clock is never trusted for ordering.
func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.CreatedAt = time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// List returns all records ordered by timestamp descending. Documents are
// decoded field by field rather than through struct tags: the collection may
// hold documents written by older pipeline variants that used imageUrl
// instead of image_url or stored the timestamp as an ISO string, and a
// record with an unreadable timestamp is still returned (with zero time)
// rather than dropped.
func (r *FeedbackRepo) List(ctx context.Context) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := make([]models.Feedback, 0)
	for cursor.Next(ctx) {
		feedbacks = append(feedbacks, feedbackFromRaw(cursor.Current))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Delete removes the record permanently. A missing or malformed id reports
// apperrors.ErrNotFound, so retried deletes stay harmless.
func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotFound
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the descending timestamp index backing List.
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
