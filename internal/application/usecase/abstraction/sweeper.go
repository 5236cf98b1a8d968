package abstraction

import (
	"context"
	"time"

	"emostore/internal/domain/dto"
)

// Sweeper applies the retention and capacity eviction policy.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (dto.SweepReport, error)
}

// Reconciler repairs the residual inconsistency window of the two-phase
// capture write: blobs with no ledger row.
type Reconciler interface {
	Reconcile(ctx context.Context, now time.Time) (dto.ReconcileReport, error)
}
