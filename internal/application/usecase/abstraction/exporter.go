package abstraction

import (
	"context"
	"io"
)

// Exporter streams a session's export archive into w.
type Exporter interface {
	ExportSession(ctx context.Context, sessionID string, w io.Writer) error
}
