package database

import (
	"context"

	"emostore/internal/domain/model"
)

// Retriever reads single ledger rows.
type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.MediaRecord, error)
	ExistsPath(ctx context.Context, relativePath string) (bool, error)
}
