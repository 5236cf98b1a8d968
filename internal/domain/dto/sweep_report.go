package dto

// SweepReport summarizes one retention/capacity sweep.
type SweepReport struct {
	DeletedCount    int   `json:"deleted_count"`
	FreedBytes      int64 `json:"freed_bytes"`
	AgeEvictions    int   `json:"age_evictions"`
	SizeEvictions   int   `json:"size_evictions"`
	SkippedFailures int   `json:"skipped_failures"`
}

// ReconcileReport summarizes one orphan reconciliation pass.
type ReconcileReport struct {
	ScannedBlobs   int   `json:"scanned_blobs"`
	OrphansFound   int   `json:"orphans_found"`
	OrphansDeleted int   `json:"orphans_deleted"`
	FreedBytes     int64 `json:"freed_bytes"`
}
