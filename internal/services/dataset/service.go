package dataset

import (
	"context"
	"log"
	"time"

	"github.com/Ramiogue/dashboard-app2/internal/models"
	"github.com/Ramiogue/dashboard-app2/internal/repositories/cache"

	"github.com/google/uuid"
)

const snapshotCacheKey = "dataset:snapshot"

type Service interface {
	// Snapshot returns one consistent load of the transactions dataset.
	// A request sees either the cached snapshot or a fresh load, never a
	// mix of the two.
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

type service struct {
	loader *Loader
	cache  cache.Cache
	ttl    time.Duration
}

// NewService builds the snapshot service. cache may be nil, in which case
// every call re-reads the extract.
func NewService(loader *Loader, c cache.Cache, ttl time.Duration) Service {
	return &service{
		loader: loader,
		cache:  c,
		ttl:    ttl,
	}
}

func (s *service) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	if s.cache != nil {
		var snap models.Snapshot
		found, err := s.cache.Get(ctx, snapshotCacheKey, &snap)
		if err != nil {
			log.Printf("snapshot cache read failed, loading fresh: %v", err)
		} else if found {
			return &snap, nil
		}
	}

	table, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	cols, err := validateSchema(table.Header)
	if err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		ID:       uuid.NewString(),
		Source:   table.Path,
		LoadedAt: time.Now().UTC(),
		Rows:     normalize(table, cols),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshotCacheKey, snap, s.ttl); err != nil {
			log.Printf("snapshot cache write failed: %v", err)
		}
	}

	return snap, nil
}
