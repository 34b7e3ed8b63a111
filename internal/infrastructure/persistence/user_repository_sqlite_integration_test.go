//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t, "Alice")
	user.Email = "  Alice@Example.COM "
	require.NoError(t, tc.UserRepo.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)

	byEmail, err := tc.UserRepo.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserSqliteRepository_DuplicateEmail(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	first := CreateTestUser(t, "Bob")
	require.NoError(t, tc.UserRepo.Create(ctx, first))

	second := CreateTestUser(t, "Bobby")
	second.Email = first.Email
	err := tc.UserRepo.Create(ctx, second)
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)
}

func TestUserSqliteRepository_InvalidUser(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.UserRepo.Create(context.Background(), &users.User{})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestUserSqliteRepository_ListPaginates(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, tc.UserRepo.Create(ctx, CreateTestUser(t, name)))
	}

	page, total, err := tc.UserRepo.List(ctx, pagination.New(2, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "C", page[0].Name)
	assert.Equal(t, "D", page[1].Name)

	count, err := tc.UserRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestUserSqliteRepository_UpdateAndDelete(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := CreateTestUser(t, "Carol")
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	user.Role = users.RoleAdmin
	user.Name = "Carol Admin"
	require.NoError(t, tc.UserRepo.Update(ctx, user))

	fetched, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, fetched.Role)
	assert.Equal(t, "Carol Admin", fetched.Name)

	require.NoError(t, tc.UserRepo.DeleteByID(ctx, user.ID))

	_, err = tc.UserRepo.GetByID(ctx, user.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	err = tc.UserRepo.DeleteByID(ctx, user.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestUserSqliteRepository_UpdateMissing(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "Ghost")
	user.ID = 404
	err := tc.UserRepo.Update(context.Background(), user)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
