package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"land-marketplace-service/internal/domain/user"
	apperrors "land-marketplace-service/pkg/errors"
)

func TestUserRepoPG_CreateAndGet(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "John Doe", Email: "john@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.False(t, got.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, id, byEmail.ID)
}

func TestUserRepoPG_GetByEmail_Missing(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))

	u, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepoPG_GetByID_NotFound(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))

	_, err := repo.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserRepoPG_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Name: "John", Email: "dup@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.User{Name: "Jane", Email: "dup@example.com", PasswordHash: "h"})
	assert.Error(t, err)
}

func TestUserRepoPG_Create_Nil(t *testing.T) {
	repo := NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))

	_, err := repo.Create(context.Background(), nil)
	assert.EqualError(t, err, "user cannot be nil")
}
