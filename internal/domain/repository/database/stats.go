package database

import "context"

// LedgerStats is the aggregate view of the ledger used by the capacity
// check and the storage-stats endpoint.
type LedgerStats struct {
	Records        int64
	VideoRecords   int64
	ImageRecords   int64
	TotalSizeBytes int64
}

// StatsReader aggregates counts and byte totals, globally or per user.
// userID may be empty for the global view.
type StatsReader interface {
	Stats(ctx context.Context, userID string) (LedgerStats, error)
}
