package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"emostore/internal/domain/model"
)

// ResponseReader reads the assessment collaborator's response collections.
// This side of the schema is owned elsewhere; we only query it for export.
type ResponseReader struct {
	db *Database
}

func NewResponseReader(db *Database) *ResponseReader {
	return &ResponseReader{db: db}
}

func (r *ResponseReader) PHQ9BySession(ctx context.Context, sessionID string) ([]model.PHQ9Response, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PHQ9Collection)

	cursor, err := coll.Find(ctx, bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.D{{Key: "question_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []model.PHQ9Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	return responses, nil
}

func (r *ResponseReader) OpenQuestionsBySession(ctx context.Context,
	sessionID string,
) ([]model.OpenQuestionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(OpenQuestionCollection)

	cursor, err := coll.Find(ctx, bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []model.OpenQuestionResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	return responses, nil
}
