//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePostgres(t *testing.T) {
	t.Helper()
	if os.Getenv("MODARFLOR_TEST_POSTGRES") == "" {
		t.Skip("set MODARFLOR_TEST_POSTGRES=1 to run against a local PostgreSQL")
	}
}

func TestServicePostgresRepository_Transactions(t *testing.T) {
	requirePostgres(t)
	tc := SetupTestDB(t, config.PostgresDbType)
	ctx := context.Background()

	svc := CreateTestService(t, "Hardwood", 0, "Oak", "Maple")
	require.NoError(t, tc.ServiceRepo.Create(ctx, svc))

	svc.Features = []catalog.ServiceFeature{{Description: "Walnut"}}
	require.NoError(t, tc.ServiceRepo.Update(ctx, svc))
	require.Len(t, svc.Features, 1)

	err := tc.ServiceRepo.Create(ctx, CreateTestService(t, "Hardwood", 1))
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)

	require.NoError(t, tc.ServiceRepo.DeleteByID(ctx, svc.ID))
}

func TestUserPostgresRepository_DuplicateEmail(t *testing.T) {
	requirePostgres(t)
	tc := SetupTestDB(t, config.PostgresDbType)
	ctx := context.Background()

	user := CreateTestUser(t, "Pat")
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	dup := CreateTestUser(t, "Pat")
	dup.Email = user.Email
	assert.True(t, errors.Is(tc.UserRepo.Create(ctx, dup), apperr.ErrConflict))
}

func TestPing(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	assert.NoError(t, Ping(context.Background(), tc.DB))
}
