package database

import (
	"context"
	"time"

	"emostore/internal/domain/model"
)

// Lister queries ledger rows for export, listings and retention.
type Lister interface {
	// ListBySession returns all records of a session ordered by the
	// client-reported capture timestamp (advisory order, used by export).
	ListBySession(ctx context.Context, sessionID string) ([]model.MediaRecord, error)

	// ListByUser returns all records of a user, newest capture first.
	ListByUser(ctx context.Context, userID string) ([]model.MediaRecord, error)

	// ListOlderThan returns up to limit records with created_at strictly
	// before the cutoff, oldest first. created_at is server-assigned and
	// authoritative for retention decisions.
	ListOlderThan(ctx context.Context, cutoff time.Time, limit int64) ([]model.MediaRecord, error)

	// ListOldestFirst returns up to limit records ordered by created_at
	// ascending, for capacity eviction.
	ListOldestFirst(ctx context.Context, limit int64) ([]model.MediaRecord, error)
}
