package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"emostore/internal/domain/model"
)

type MediaCreator struct {
	db *Database
}

func NewMediaCreator(db *Database) *MediaCreator {
	return &MediaCreator{db: db}
}

func (c *MediaCreator) Create(ctx context.Context, record *model.MediaRecord) error {
	ctx, cancel := context.WithTimeout(ctx, c.db.QueryTimeout)
	defer cancel()

	coll := c.db.Client.Database(c.db.DBName).Collection(MediaCollection)

	_, err := coll.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: duplicate relative path %s", model.ErrLedgerWriteFailed, record.RelativePath)
		}

		return fmt.Errorf("%w: %s", model.ErrLedgerWriteFailed, err.Error())
	}

	return nil
}
