package settings

type Config struct {
	MaxFileSizeMB   int64 `yaml:"max_file_size_in_mb"`
	CapacityGB      int64 `yaml:"capacity_in_gb"`
	RetentionDays   int   `yaml:"retention_days"`
	OrphanGraceMins int   `yaml:"orphan_grace_in_minutes"`
	CacheTTLSeconds int   `yaml:"cache_ttl_in_seconds"`
}
