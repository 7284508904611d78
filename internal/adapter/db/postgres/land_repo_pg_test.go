package postgres

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"land-marketplace-service/internal/domain/land"
	apperrors "land-marketplace-service/pkg/errors"
)

func seedLands(t *testing.T, repo *LandRepoPG) []int64 {
	t.Helper()

	lands := []land.Land{
		{Name: "Green Acres", Location: "Riverside", Price: 12000, IsAvailable: true, SellerID: 1},
		{Name: "Hill Top", Location: "North Ridge", Price: 8000, IsAvailable: false, SellerID: 1},
		{Name: "Lot_7", Location: "Riverside East", Price: 5000, IsAvailable: true, SellerID: 2},
	}

	ids := make([]int64, 0, len(lands))
	for i := range lands {
		id, err := repo.Create(context.Background(), &lands[i])
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestLandRepoPG_CreateThenGet_RoundTrip(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	in := &land.Land{
		Name:        "Green Acres",
		Location:    "Riverside",
		Price:       12500.5,
		IsAvailable: true,
		SellerID:    7,
		Description: "Flat, fenced",
	}
	id, err := repo.Create(ctx, in)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Location, got.Location)
	assert.Equal(t, in.Price, got.Price)
	assert.Equal(t, in.IsAvailable, got.IsAvailable)
	assert.Equal(t, in.SellerID, got.SellerID)
	assert.Equal(t, in.Description, got.Description)
}

func TestLandRepoPG_Create_UnavailableIsKept(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &land.Land{Name: "Plot", Location: "Bay", Price: 1, IsAvailable: false, SellerID: 1})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestLandRepoPG_UpdateAvailability_Toggle(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()
	ids := seedLands(t, repo)

	updated, err := repo.UpdateAvailability(ctx, ids[0], false)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)

	updated, err = repo.UpdateAvailability(ctx, ids[0], true)
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)

	// Setting the current value again is not a miss
	updated, err = repo.UpdateAvailability(ctx, ids[0], true)
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)

	_, err = repo.UpdateAvailability(ctx, 999, true)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLandRepoPG_Update(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()
	ids := seedLands(t, repo)

	name := "Hill Top Deluxe"
	price := 9500.0
	require.NoError(t, repo.Update(ctx, ids[1], land.Patch{Name: &name, Price: &price}))

	got, err := repo.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "Hill Top Deluxe", got.Name)
	assert.Equal(t, float64(9500), got.Price)
	assert.Equal(t, "North Ridge", got.Location)

	require.NoError(t, repo.Update(ctx, ids[1], land.Patch{}))

	err = repo.Update(ctx, 999, land.Patch{Name: &name})
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Update(ctx, 999, land.Patch{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLandRepoPG_Update_KeepsAvailability(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()
	ids := seedLands(t, repo)

	before, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	require.True(t, before.IsAvailable)

	_, err = repo.UpdateAvailability(ctx, ids[0], false)
	require.NoError(t, err)

	price := 99.0
	require.NoError(t, repo.Update(ctx, ids[0], land.Patch{Price: &price}))

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, 99.0, got.Price)
}

func TestLandRepoPG_Delete(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()
	ids := seedLands(t, repo)

	require.NoError(t, repo.Delete(ctx, ids[0]))

	_, err := repo.GetByID(ctx, ids[0])
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Delete(ctx, ids[0])
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLandRepoPG_ListBySeller(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()
	ids := seedLands(t, repo)

	lands, err := repo.ListBySeller(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lands, 2)
	// Newest first
	assert.Equal(t, ids[1], lands[0].ID)
	assert.Equal(t, ids[0], lands[1].ID)

	none, err := repo.ListBySeller(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLandRepoPG_List(t *testing.T) {
	repo := NewLandRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()
	seedLands(t, repo)

	tests := []struct {
		name      string
		filter    land.Filter
		page      int64
		limit     int64
		wantCount int
		wantTotal int64
	}{
		{"all", land.Filter{}, 1, 10, 3, 3},
		{"search is case insensitive", land.Filter{Query: "riverside"}, 1, 10, 2, 2},
		{"search by name", land.Filter{Query: "hill"}, 1, 10, 1, 1},
		{"underscore is literal", land.Filter{Query: "lot_7"}, 1, 10, 1, 1},
		{"only available", land.Filter{OnlyAvailable: true}, 1, 10, 2, 2},
		{"by seller", land.Filter{SellerID: 2}, 1, 10, 1, 1},
		{"second page", land.Filter{}, 2, 2, 1, 3},
		{"no match", land.Filter{Query: "desert"}, 1, 10, 0, 0},
		{"huge page is empty", land.Filter{}, math.MaxInt64, 100, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lands, total, err := repo.List(ctx, tt.filter, tt.page, tt.limit)
			require.NoError(t, err)
			assert.Len(t, lands, tt.wantCount)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
