package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"emostore/internal/domain/model"
)

type MediaLister struct {
	db *Database
}

func NewMediaLister(db *Database) *MediaLister {
	return &MediaLister{db: db}
}

func (l *MediaLister) find(ctx context.Context, filter bson.M,
	opts *options.FindOptions,
) ([]model.MediaRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(MediaCollection)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.MediaRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (l *MediaLister) ListBySession(ctx context.Context, sessionID string) ([]model.MediaRecord, error) {
	return l.find(ctx,
		bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.D{{Key: "captured_at", Value: 1}}))
}

func (l *MediaLister) ListByUser(ctx context.Context, userID string) ([]model.MediaRecord, error) {
	return l.find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "captured_at", Value: -1}}))
}

func (l *MediaLister) ListOlderThan(ctx context.Context, cutoff time.Time,
	limit int64,
) ([]model.MediaRecord, error) {
	return l.find(ctx,
		bson.M{"created_at": bson.M{"$lt": cutoff}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}).SetLimit(limit))
}

func (l *MediaLister) ListOldestFirst(ctx context.Context, limit int64) ([]model.MediaRecord, error) {
	return l.find(ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}).SetLimit(limit))
}
