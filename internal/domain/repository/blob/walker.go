package blob

import (
	"context"
	"time"
)

// ObjectInfo describes one stored blob during a reconciliation walk.
type ObjectInfo struct {
	RelativePath string
	SizeBytes    int64
	ModifiedAt   time.Time
}

// Walker enumerates every blob in the store. Used only by the orphan
// reconciliation sweep, never on the capture hot path.
type Walker interface {
	Walk(ctx context.Context, fn func(ObjectInfo) error) error
}
