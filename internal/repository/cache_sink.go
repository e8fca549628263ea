package repository

import (
	"context"
	"time"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	"BioPulse/pkg/cache"
)

const lastSnapshotKey = "snapshot:last"

// CacheSink mirrors the latest snapshot into the cache layer so a restarted
// process can warm-start with the previous generation instead of serving
// empty lists until the first run finishes.
type CacheSink struct {
	cache cache.Service
	ttl   time.Duration
}

func NewCacheSink(svc cache.Service, ttl time.Duration) *CacheSink {
	return &CacheSink{cache: svc, ttl: ttl}
}

func (c *CacheSink) Persist(ctx context.Context, snap *models.Snapshot) error {
	return c.cache.Set(ctx, lastSnapshotKey, snap, c.ttl)
}

// Restore loads the most recently persisted snapshot, if any survives in the
// cache. A miss is not an error.
func (c *CacheSink) Restore(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := c.cache.Get(ctx, lastSnapshotKey, &snap); err != nil {
		if err == cache.ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}

var _ drepo.SnapshotSink = (*CacheSink)(nil)
