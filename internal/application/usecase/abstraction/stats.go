package abstraction

import (
	"context"

	"emostore/internal/domain/dto"
)

// StatsReader serves the storage usage report. userID may be empty for
// the global view.
type StatsReader interface {
	StorageStats(ctx context.Context, userID string) (dto.StorageStats, error)
}
