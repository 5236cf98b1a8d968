package usecase

import (
	"context"
	"time"

	"emostore/internal/domain/dto"
	"emostore/internal/domain/repository/blob"
	dbRepository "emostore/internal/domain/repository/database"
	"emostore/internal/domain/repository/settings"
	"emostore/pkg/logger"
)

// Reconciler closes the crash window of the two-phase capture write: a
// process killed between the blob write and the ledger insert leaves a
// blob no row points to. The reconciliation walk deletes such blobs once
// they are older than the grace period; younger ones may belong to a
// capture still in flight and are only counted.
type Reconciler struct {
	walker      blob.Walker
	blobRemover blob.Remover
	retriever   dbRepository.Retriever
	policy      settings.Provider
}

func NewReconciler(walker blob.Walker, blobRemover blob.Remover,
	retriever dbRepository.Retriever, policy settings.Provider,
) *Reconciler {
	return &Reconciler{
		walker:      walker,
		blobRemover: blobRemover,
		retriever:   retriever,
		policy:      policy,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context, now time.Time) (dto.ReconcileReport, error) {
	grace := r.policy.Current(ctx).OrphanGracePeriod

	var report dto.ReconcileReport

	err := r.walker.Walk(ctx, func(info blob.ObjectInfo) error {
		report.ScannedBlobs++

		linked, err := r.retriever.ExistsPath(ctx, info.RelativePath)
		if err != nil {
			logger.Error("reconcile: ledger probe failed", "path", info.RelativePath, "err", err.Error())

			return nil
		}
		if linked {
			return nil
		}

		report.OrphansFound++
		logger.Warn("orphan detected", "path", info.RelativePath,
			"size_bytes", info.SizeBytes, "modified_at", info.ModifiedAt)

		if now.Sub(info.ModifiedAt) <= grace {
			return nil
		}

		if err := r.blobRemover.Remove(ctx, info.RelativePath); err != nil {
			logger.Error("reconcile: orphan delete failed", "path", info.RelativePath, "err", err.Error())

			return nil
		}

		report.OrphansDeleted++
		report.FreedBytes += info.SizeBytes

		return nil
	})
	if err != nil {
		return report, err
	}

	return report, nil
}
