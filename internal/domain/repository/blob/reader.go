package blob

import (
	"context"
	"io"
)

// Reader opens a stored blob for streaming. Implementations return
// model.ErrNotFound (wrapped) when no blob exists at the path.
type Reader interface {
	Open(ctx context.Context, relativePath string) (io.ReadCloser, int64, error)
}
