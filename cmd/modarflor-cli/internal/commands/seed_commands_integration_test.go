//go:build integration
// +build integration

package commands

import (
	"context"
	"testing"

	"github.com/kagailawrence/modarflor/internal/app"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/infrastructure/cache"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeeder(t *testing.T) (*Seeder, *persistence.TestContext) {
	t.Helper()

	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	log := testutil.SetupTestLogger(t)
	store := cache.NoopStore{}

	flooringTypeService, err := app.NewFlooringTypeService(tc.FlooringRepo, store, log)
	require.NoError(t, err)
	faqService, err := app.NewFAQService(tc.FAQRepo, store, log)
	require.NoError(t, err)
	catalogService, err := app.NewServiceCatalogService(tc.ServiceRepo, store, log)
	require.NoError(t, err)

	return NewSeeder(flooringTypeService, faqService, catalogService, log), tc
}

func TestSeeder_Run(t *testing.T) {
	seeder, tc := newTestSeeder(t)
	ctx := context.Background()

	result, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultFlooringTypes), result.FlooringTypes)
	assert.Equal(t, len(defaultFAQs), result.FAQs)
	assert.Equal(t, len(defaultServices), result.Services)

	services, err := tc.ServiceRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, len(defaultServices))
	assert.Equal(t, "Hardwood Installation", services[0].Title)
	assert.Len(t, services[0].Features, 3)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	seeder, tc := newTestSeeder(t)
	ctx := context.Background()

	// one default question already exists with different casing
	require.NoError(t, tc.FAQRepo.Create(ctx, &faqs.FAQ{Question: "do you offer a warranty?", Answer: "Yes."}))

	first, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultFAQs)-1, first.FAQs)

	second, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, *second)

	types, err := tc.FlooringRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(defaultFlooringTypes))
}
