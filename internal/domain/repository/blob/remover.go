package blob

import "context"

// Remover deletes a stored blob. Removing an already-absent path is not
// an error.
type Remover interface {
	Remove(ctx context.Context, relativePath string) error
}
