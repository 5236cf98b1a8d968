package database

import (
	"context"

	"emostore/internal/domain/model"
)

// Creator inserts one ledger row. The unique index on relative_path makes
// duplicate paths fail here rather than silently overwriting.
type Creator interface {
	Create(ctx context.Context, record *model.MediaRecord) error
}
