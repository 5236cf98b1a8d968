package blob

import (
	"context"
	"io"

	"emostore/internal/domain/entity"
)

// Writer persists the bytes of one capture at an allocated relative path.
// The write is all-or-nothing: on any failure no readable partial object
// may remain at the path.
type Writer interface {
	Write(ctx context.Context, relativePath string, body io.Reader,
		maxSizeBytes int64) (entity.BlobWriteResult, error)
}
