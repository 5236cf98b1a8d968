package usecase

import (
	"context"

	"github.com/dustin/go-humanize"

	"emostore/internal/domain/dto"
	dbRepository "emostore/internal/domain/repository/database"
	"emostore/internal/domain/repository/settings"
)

// StatsReader builds the storage dashboard report from ledger aggregates
// and the current policy.
type StatsReader struct {
	stats  dbRepository.StatsReader
	policy settings.Provider
}

func NewStatsReader(stats dbRepository.StatsReader, policy settings.Provider) *StatsReader {
	return &StatsReader{stats: stats, policy: policy}
}

func (s *StatsReader) StorageStats(ctx context.Context, userID string) (dto.StorageStats, error) {
	ledger, err := s.stats.Stats(ctx, userID)
	if err != nil {
		return dto.StorageStats{}, err
	}

	policy := s.policy.Current(ctx)

	usagePercent := 0.0
	if policy.CapacityCeilingBytes > 0 {
		usagePercent = float64(ledger.TotalSizeBytes) / float64(policy.CapacityCeilingBytes) * 100
	}

	return dto.StorageStats{
		DatabaseRecords:  ledger.Records,
		VideoRecords:     ledger.VideoRecords,
		ImageRecords:     ledger.ImageRecords,
		TotalSizeBytes:   ledger.TotalSizeBytes,
		TotalSizeHuman:   humanize.Bytes(uint64(ledger.TotalSizeBytes)),
		UsagePercent:     usagePercent,
		CapacityBytes:    policy.CapacityCeilingBytes,
		RetentionDays:    int(policy.RetentionWindow.Hours() / 24),
		MaxFileSizeBytes: policy.MaxFileSizeBytes,
	}, nil
}
