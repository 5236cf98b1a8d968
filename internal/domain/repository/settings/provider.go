package settings

import (
	"context"

	"emostore/internal/domain/model"
)

// Provider returns the storage policy in effect right now. Callers take
// one snapshot per operation and never re-read it mid-flight.
type Provider interface {
	Current(ctx context.Context) model.StoragePolicy
}
