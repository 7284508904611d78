package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"land-marketplace-service/internal/adapter/cache"
	domain "land-marketplace-service/internal/domain/land"
	"land-marketplace-service/internal/usecase/land"
	"land-marketplace-service/pkg/metrics"
)

// CachedLandRepository implements land.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation.
type CachedLandRepository struct {
	dbRepo  land.Repository
	cache   cache.LandCache
	metrics *metrics.Metrics
	log     *zap.Logger
	group   singleflight.Group
}

// NewCachedLandRepository creates a new instance of CachedLandRepository.
// m may be nil when metrics are not collected.
func NewCachedLandRepository(dbRepo land.Repository, c cache.LandCache, m *metrics.Metrics, log *zap.Logger) land.Repository {
	return &CachedLandRepository{
		dbRepo:  dbRepo,
		cache:   c,
		metrics: m,
		log:     log,
	}
}

// Create delegates to the DB repository.
func (r *CachedLandRepository) Create(ctx context.Context, l *domain.Land) (int64, error) {
	return r.dbRepo.Create(ctx, l)
}

// GetByID retrieves a land by ID using the cache-aside pattern.
func (r *CachedLandRepository) GetByID(ctx context.Context, id int64) (*domain.Land, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cached != nil {
			r.hit()
			r.log.Debug("land retrieved from cache", zap.Int64("id", id))
			return cached, nil
		}
	}
	r.miss()

	// Concurrent misses for the same id share one database read.
	key := fmt.Sprintf("land:%d", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		if r.cache != nil {
			cached, err := r.cache.Get(ctx, id)
			if err == nil && cached != nil {
				return cached, nil
			}
		}

		l, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, l); err != nil {
				r.log.Warn("failed to cache land", zap.Int64("id", id), zap.Error(err))
			}
		}

		return l, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers may mutate the land, so each gets its own copy.
	l := *result.(*domain.Land)
	return &l, nil
}

// Update updates the land in DB and invalidates the cache.
func (r *CachedLandRepository) Update(ctx context.Context, id int64, p domain.Patch) error {
	if err := r.dbRepo.Update(ctx, id, p); err != nil {
		return err
	}
	r.invalidate(ctx, id, "update")
	return nil
}

// UpdateAvailability updates the flag in DB and invalidates the cache.
func (r *CachedLandRepository) UpdateAvailability(ctx context.Context, id int64, isAvailable bool) (*domain.Land, error) {
	l, err := r.dbRepo.UpdateAvailability(ctx, id, isAvailable)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, id, "availability update")
	return l, nil
}

// Delete deletes the land from DB and invalidates the cache.
func (r *CachedLandRepository) Delete(ctx context.Context, id int64) error {
	if err := r.dbRepo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id, "delete")
	return nil
}

// List delegates to the DB repository.
func (r *CachedLandRepository) List(ctx context.Context, f domain.Filter, page, limit int64) ([]domain.Land, int64, error) {
	return r.dbRepo.List(ctx, f, page, limit)
}

// ListBySeller delegates to the DB repository.
func (r *CachedLandRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Land, error) {
	return r.dbRepo.ListBySeller(ctx, sellerID)
}

func (r *CachedLandRepository) invalidate(ctx context.Context, id int64, op string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("failed to invalidate cache after "+op, zap.Int64("id", id), zap.Error(err))
	}
}

func (r *CachedLandRepository) hit() {
	if r.metrics != nil {
		r.metrics.CacheHit()
	}
}

func (r *CachedLandRepository) miss() {
	if r.metrics != nil {
		r.metrics.CacheMiss()
	}
}
