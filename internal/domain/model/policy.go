package model

import "time"

// Storage policy defaults, used when the settings collection carries no override.
const (
	DefaultMaxFileSizeBytes     = 50 * 1024 * 1024
	DefaultCapacityCeilingBytes = 10 * 1024 * 1024 * 1024
	DefaultRetentionWindow      = 30 * 24 * time.Hour
	DefaultOrphanGracePeriod    = time.Hour
)

// StoragePolicy is the runtime storage configuration snapshot. The core
// never reads these values from ambient global state; callers fetch a
// snapshot per operation so behavior stays reproducible while an
// administrator edits settings.
type StoragePolicy struct {
	MaxFileSizeBytes     int64
	CapacityCeilingBytes int64
	RetentionWindow      time.Duration
	OrphanGracePeriod    time.Duration
}

// DefaultStoragePolicy returns the built-in policy values.
func DefaultStoragePolicy() StoragePolicy {
	return StoragePolicy{
		MaxFileSizeBytes:     DefaultMaxFileSizeBytes,
		CapacityCeilingBytes: DefaultCapacityCeilingBytes,
		RetentionWindow:      DefaultRetentionWindow,
		OrphanGracePeriod:    DefaultOrphanGracePeriod,
	}
}
