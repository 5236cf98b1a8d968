package abstraction

import (
	"context"

	"emostore/internal/domain/entity"
	"emostore/internal/domain/model"
)

// Capturer persists one capture: blob plus ledger row, atomically from
// the caller's point of view.
type Capturer interface {
	Capture(ctx context.Context, req entity.CaptureRequest) (*model.MediaRecord, error)
}
