package settings

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"emostore/internal/domain/model"
	"emostore/internal/infrastructure/database"
	"emostore/pkg/logger"
)

// Provider serves the storage policy. Config values are the baseline; the
// app_settings collection, editable by an administrator at runtime,
// overrides them. Lookups are cached for the TTL so policy reads stay off
// the capture hot path.
type Provider struct {
	db       *database.Database
	defaults model.StoragePolicy
	ttl      time.Duration

	mu        sync.Mutex
	cached    model.StoragePolicy
	fetchedAt time.Time
}

func NewProvider(db *database.Database, cfg Config) *Provider {
	defaults := model.DefaultStoragePolicy()
	if cfg.MaxFileSizeMB > 0 {
		defaults.MaxFileSizeBytes = cfg.MaxFileSizeMB * 1024 * 1024
	}
	if cfg.CapacityGB > 0 {
		defaults.CapacityCeilingBytes = cfg.CapacityGB * 1024 * 1024 * 1024
	}
	if cfg.RetentionDays > 0 {
		defaults.RetentionWindow = time.Duration(cfg.RetentionDays) * 24 * time.Hour
	}
	if cfg.OrphanGraceMins > 0 {
		defaults.OrphanGracePeriod = time.Duration(cfg.OrphanGraceMins) * time.Minute
	}

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Provider{db: db, defaults: defaults, ttl: ttl}
}

// Current returns the policy snapshot in effect. Database faults fall
// back to the last cached value, then to the config defaults: policy
// lookup must never block a capture.
func (p *Provider) Current(ctx context.Context) model.StoragePolicy {
	p.mu.Lock()
	if time.Since(p.fetchedAt) < p.ttl && !p.fetchedAt.IsZero() {
		cached := p.cached
		p.mu.Unlock()

		return cached
	}
	p.mu.Unlock()

	policy, err := p.fetch(ctx)
	if err != nil {
		logger.Warn("settings lookup failed, using defaults", "err", err.Error())

		p.mu.Lock()
		if !p.fetchedAt.IsZero() {
			policy = p.cached
		} else {
			policy = p.defaults
		}
		p.mu.Unlock()

		return policy
	}

	p.mu.Lock()
	p.cached = policy
	p.fetchedAt = time.Now()
	p.mu.Unlock()

	return policy
}

func (p *Provider) fetch(ctx context.Context) (model.StoragePolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, p.db.QueryTimeout)
	defer cancel()

	coll := p.db.Client.Database(p.db.DBName).Collection(database.SettingsCollection)

	cursor, err := coll.Find(ctx, bson.M{"key": bson.M{"$in": bson.A{
		"max_file_size_mb", "max_storage_gb", "retention_days", "orphan_grace_minutes",
	}}})
	if err != nil {
		return model.StoragePolicy{}, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   string `bson:"key"`
		Value string `bson:"value"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return model.StoragePolicy{}, err
	}

	policy := p.defaults
	for _, row := range rows {
		n, err := strconv.ParseInt(row.Value, 10, 64)
		if err != nil || n <= 0 {
			logger.Warn("ignoring malformed setting", "key", row.Key, "value", row.Value)

			continue
		}

		switch row.Key {
		case "max_file_size_mb":
			policy.MaxFileSizeBytes = n * 1024 * 1024
		case "max_storage_gb":
			policy.CapacityCeilingBytes = n * 1024 * 1024 * 1024
		case "retention_days":
			policy.RetentionWindow = time.Duration(n) * 24 * time.Hour
		case "orphan_grace_minutes":
			policy.OrphanGracePeriod = time.Duration(n) * time.Minute
		}
	}

	return policy, nil
}

// Static wraps a fixed policy, for tests and single-tenant deployments
// that do not use the settings collection.
type Static struct {
	Policy model.StoragePolicy
}

func (s Static) Current(context.Context) model.StoragePolicy {
	return s.Policy
}
