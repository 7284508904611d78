package cached

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"land-marketplace-service/internal/adapter/cache"
	domain "land-marketplace-service/internal/domain/land"
	apperrors "land-marketplace-service/pkg/errors"
	"land-marketplace-service/pkg/metrics"
)

// countingRepo is an in-memory land repository that counts reads.
type countingRepo struct {
	mu    sync.Mutex
	lands map[int64]domain.Land
	reads atomic.Int64
	delay time.Duration
}

func newCountingRepo(lands ...domain.Land) *countingRepo {
	r := &countingRepo{lands: make(map[int64]domain.Land)}
	for _, l := range lands {
		r.lands[l.ID] = l
	}
	return r
}

func (r *countingRepo) Create(_ context.Context, l *domain.Land) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = int64(len(r.lands) + 1)
	r.lands[l.ID] = *l
	return l.ID, nil
}

func (r *countingRepo) GetByID(_ context.Context, id int64) (*domain.Land, error) {
	r.reads.Add(1)
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lands[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("land", "land not found")
	}
	return &l, nil
}

func (r *countingRepo) Update(_ context.Context, id int64, p domain.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lands[id]
	if !ok {
		return apperrors.NewNotFoundError("land", "land not found")
	}
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	r.lands[id] = l
	return nil
}

func (r *countingRepo) UpdateAvailability(_ context.Context, id int64, isAvailable bool) (*domain.Land, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lands[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("land", "land not found")
	}
	l.IsAvailable = isAvailable
	r.lands[id] = l
	return &l, nil
}

func (r *countingRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lands[id]; !ok {
		return apperrors.NewNotFoundError("land", "land not found")
	}
	delete(r.lands, id)
	return nil
}

func (r *countingRepo) List(_ context.Context, _ domain.Filter, _, _ int64) ([]domain.Land, int64, error) {
	return nil, 0, nil
}

func (r *countingRepo) ListBySeller(_ context.Context, _ int64) ([]domain.Land, error) {
	return nil, nil
}

func setupCachedRepo(t *testing.T, db *countingRepo) (*CachedLandRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := zaptest.NewLogger(t)
	c := cache.NewRedisLandCache(client, time.Minute, log)
	repo := NewCachedLandRepository(db, c, metrics.New(), log).(*CachedLandRepository)
	return repo, mr
}

func TestCachedLandRepository_GetByID_CacheAside(t *testing.T) {
	db := newCountingRepo(domain.Land{ID: 1, Name: "Green Acres", IsAvailable: true})
	repo, mr := setupCachedRepo(t, db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", got.Name)
	assert.True(t, mr.Exists(cache.Key(1)))

	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", got.Name)
	assert.Equal(t, int64(1), db.reads.Load(), "second read must be served from cache")
}

func TestCachedLandRepository_GetByID_NotFoundIsNotCached(t *testing.T) {
	db := newCountingRepo()
	repo, mr := setupCachedRepo(t, db)

	_, err := repo.GetByID(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, mr.Exists(cache.Key(42)))
}

func TestCachedLandRepository_SingleFlight(t *testing.T) {
	db := newCountingRepo(domain.Land{ID: 1, Name: "Green Acres"})
	db.delay = 50 * time.Millisecond
	repo, _ := setupCachedRepo(t, db)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := repo.GetByID(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), l.ID)
		}()
	}
	wg.Wait()

	assert.Less(t, db.reads.Load(), int64(10))
}

func TestCachedLandRepository_InvalidatesOnWrite(t *testing.T) {
	db := newCountingRepo(domain.Land{ID: 1, Name: "Green Acres", IsAvailable: true})
	repo, mr := setupCachedRepo(t, db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.Key(1)))

	updated, err := repo.UpdateAvailability(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.False(t, mr.Exists(cache.Key(1)))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	name := "Renamed"
	require.NoError(t, repo.Update(ctx, 1, domain.Patch{Name: &name}))
	assert.False(t, mr.Exists(cache.Key(1)))

	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, repo.Delete(ctx, 1))
	assert.False(t, mr.Exists(cache.Key(1)))

	_, err = repo.GetByID(ctx, 1)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCachedLandRepository_RedisDownFallsBackToDB(t *testing.T) {
	db := newCountingRepo(domain.Land{ID: 1, Name: "Green Acres"})
	repo, mr := setupCachedRepo(t, db)
	mr.Close()

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", got.Name)
}

func TestCachedLandRepository_NilCache(t *testing.T) {
	db := newCountingRepo(domain.Land{ID: 1, Name: "Green Acres"})
	repo := NewCachedLandRepository(db, nil, nil, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), db.reads.Load())
	require.NoError(t, repo.Delete(ctx, 1))
}
