package usecase

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"emostore/internal/domain/dto"
	"emostore/internal/domain/model"
	"emostore/internal/domain/repository/blob"
	dbRepository "emostore/internal/domain/repository/database"
	"emostore/internal/domain/repository/settings"
	"emostore/pkg/logger"
)

// sweepBatch is how many ledger rows each eviction query pulls.
const sweepBatch = 100

// Sweeper enforces the retention window and the capacity ceiling. Age
// eviction runs first, then oldest-first capacity eviction until usage is
// at or below the ceiling or the ledger is exhausted. The blob is always
// deleted before its ledger row; if the blob delete fails the row stays,
// so indexed bytes are never silently unaccounted.
type Sweeper struct {
	lister      dbRepository.Lister
	dbRemover   dbRepository.Remover
	blobRemover blob.Remover
	usage       blob.UsageMeter
	policy      settings.Provider
}

func NewSweeper(lister dbRepository.Lister, dbRemover dbRepository.Remover,
	blobRemover blob.Remover, usage blob.UsageMeter, policy settings.Provider,
) *Sweeper {
	return &Sweeper{
		lister:      lister,
		dbRemover:   dbRemover,
		blobRemover: blobRemover,
		usage:       usage,
		policy:      policy,
	}
}

// Sweep runs one eviction pass. The wall-clock snapshot and the policy
// are taken once at sweep start and never re-evaluated per row, so a
// sweep overlapping in-flight captures cannot evict a record that was
// inside the window when the sweep began.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (dto.SweepReport, error) {
	policy := s.policy.Current(ctx)
	cutoff := now.Add(-policy.RetentionWindow)

	var report dto.SweepReport

	for {
		records, err := s.lister.ListOlderThan(ctx, cutoff, sweepBatch)
		if err != nil {
			return report, err
		}
		if len(records) == 0 {
			break
		}

		progressed := false
		for i := range records {
			if s.evict(ctx, &records[i], &report) {
				progressed = true
				report.AgeEvictions++
			}
		}

		// Every remaining row in this batch failed; trying again now
		// would spin on the same rows.
		if !progressed {
			break
		}

		if len(records) < sweepBatch {
			break
		}
	}

	if err := s.evictForCapacity(ctx, policy, &report); err != nil {
		return report, err
	}

	if report.DeletedCount > 0 {
		logger.Info("sweep complete",
			"deleted", report.DeletedCount,
			"freed", humanize.Bytes(uint64(report.FreedBytes)),
			"age_evictions", report.AgeEvictions,
			"size_evictions", report.SizeEvictions)
	}

	return report, nil
}

func (s *Sweeper) evictForCapacity(ctx context.Context, policy model.StoragePolicy,
	report *dto.SweepReport,
) error {
	usage, err := s.usage.UsageBytes(ctx)
	if err != nil {
		return err
	}

	for usage > policy.CapacityCeilingBytes {
		records, err := s.lister.ListOldestFirst(ctx, sweepBatch)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			break
		}

		progressed := false
		for i := range records {
			if usage <= policy.CapacityCeilingBytes {
				break
			}
			if s.evict(ctx, &records[i], report) {
				progressed = true
				report.SizeEvictions++
				usage -= records[i].SizeBytes
			}
		}

		if !progressed {
			break
		}
	}

	return nil
}

// evict deletes one record, blob first. Individual failures are logged
// and skipped; they never abort the rest of the sweep.
func (s *Sweeper) evict(ctx context.Context, record *model.MediaRecord,
	report *dto.SweepReport,
) bool {
	if err := s.blobRemover.Remove(ctx, record.RelativePath); err != nil {
		logger.Error("sweep: blob delete failed, keeping ledger row",
			"id", record.ID, "path", record.RelativePath, "err", err.Error())
		report.SkippedFailures++

		return false
	}

	if err := s.dbRemover.RemoveByID(ctx, record.ID); err != nil {
		logger.Error("sweep: ledger delete failed after blob delete",
			"id", record.ID, "path", record.RelativePath, "err", err.Error())
		report.SkippedFailures++

		return false
	}

	report.DeletedCount++
	report.FreedBytes += record.SizeBytes

	return true
}
