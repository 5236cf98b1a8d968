package abstraction

import (
	"context"

	"emostore/internal/domain/dto"
)

// Lister serves the metadata-only file listings.
type Lister interface {
	SessionFiles(ctx context.Context, sessionID string) ([]dto.MediaDescriptor, error)
	UserFiles(ctx context.Context, userID string) ([]dto.MediaDescriptor, error)
}
