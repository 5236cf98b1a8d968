package abstraction

import (
	"context"
	"io"

	"emostore/internal/domain/model"
)

// Getter opens one stored capture for direct retrieval. Unlike export,
// a missing blob here is fatal.
type Getter interface {
	OpenMedia(ctx context.Context, id string) (*model.MediaRecord, io.ReadCloser, error)
}
