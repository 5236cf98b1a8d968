package dto

// StorageStats is the aggregate storage report served to dashboards.
type StorageStats struct {
	DatabaseRecords  int64   `json:"database_records"`
	VideoRecords     int64   `json:"video_records"`
	ImageRecords     int64   `json:"image_records"`
	TotalSizeBytes   int64   `json:"total_size_bytes"`
	TotalSizeHuman   string  `json:"total_size_human"`
	UsagePercent     float64 `json:"usage_percent"`
	CapacityBytes    int64   `json:"capacity_bytes"`
	RetentionDays    int     `json:"retention_days"`
	MaxFileSizeBytes int64   `json:"max_file_size_bytes"`
}
