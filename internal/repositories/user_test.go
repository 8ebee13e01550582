package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Create(t *testing.T) {
	db := setupSQLiteDB(t)
	writeRepo := NewUserWriteRepository(db, GetTxFromContext)
	readRepo := NewUserReadRepository(db, GetTxFromContext)
	ctx := context.Background()

	user, err := writeRepo.Create(ctx, 1001, "alice")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, int64(1001), user.ExternalID)
	assert.Equal(t, "alice", user.DisplayName)

	got, err := readRepo.GetByExternalID(ctx, 1001)
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	t.Run("DuplicateExternalID", func(t *testing.T) {
		dup, err := writeRepo.Create(ctx, 1001, "alice2")
		assert.ErrorIs(t, err, models.ErrDuplicateExternalID)
		assert.Nil(t, dup)
	})
}

func TestUserReadRepository_GetByExternalID_NotFound(t *testing.T) {
	db := setupSQLiteDB(t)
	readRepo := NewUserReadRepository(db, GetTxFromContext)

	user, err := readRepo.GetByExternalID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserWriteRepository_UpdateDisplayName(t *testing.T) {
	db := setupSQLiteDB(t)
	writeRepo := NewUserWriteRepository(db, GetTxFromContext)
	readRepo := NewUserReadRepository(db, GetTxFromContext)
	ctx := context.Background()

	user, err := writeRepo.Create(ctx, 7, "")
	require.NoError(t, err)

	assert.NoError(t, writeRepo.UpdateDisplayName(ctx, user.ID, "bob"))

	got, err := readRepo.GetByExternalID(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "bob", got.DisplayName)
}

func TestUserWriteRepository_DeleteByExternalID(t *testing.T) {
	db := setupSQLiteDB(t)
	writeRepo := NewUserWriteRepository(db, GetTxFromContext)
	ctx := context.Background()

	_, err := writeRepo.Create(ctx, 9, "carol")
	require.NoError(t, err)

	deleted, err := writeRepo.DeleteByExternalID(ctx, 9)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = writeRepo.DeleteByExternalID(ctx, 9)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
