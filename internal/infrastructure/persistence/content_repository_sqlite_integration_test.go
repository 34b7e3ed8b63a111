//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialSqliteRepository_CRUD(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	tm := &testimonials.Testimonial{Name: "Jane", Role: "Homeowner", Content: "Beautiful oak floors", Rating: 5}
	require.NoError(t, tc.TestimonialRepo.Create(ctx, tm))
	require.NoError(t, tc.TestimonialRepo.Create(ctx, &testimonials.Testimonial{Name: "Raj", Content: "On time", Rating: 4}))

	list, total, err := tc.TestimonialRepo.List(ctx, pagination.New(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 1)

	tm.Rating = 4
	require.NoError(t, tc.TestimonialRepo.Update(ctx, tm))
	fetched, err := tc.TestimonialRepo.GetByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched.Rating)

	tm.Rating = 9
	assert.True(t, errors.Is(tc.TestimonialRepo.Update(ctx, tm), apperr.ErrValidation))

	require.NoError(t, tc.TestimonialRepo.DeleteByID(ctx, tm.ID))
	_, err = tc.TestimonialRepo.GetByID(ctx, tm.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestFAQSqliteRepository_OrderAndUnique(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, tc.FAQRepo.Create(ctx, &faqs.FAQ{Question: "How long does install take?", Answer: "1-3 days", OrderIndex: 2}))
	require.NoError(t, tc.FAQRepo.Create(ctx, &faqs.FAQ{Question: "Do you offer financing?", Answer: "Yes", OrderIndex: 1}))

	list, err := tc.FAQRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Do you offer financing?", list[0].Question)

	err = tc.FAQRepo.Create(ctx, &faqs.FAQ{Question: "Do you offer financing?", Answer: "Again"})
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)
}

func TestFlooringTypeSqliteRepository_DeleteDetachesQuotes(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	oak := &pricing.FlooringType{Name: "Oak", MaterialPricePerSqft: 6, LaborPricePerSqft: 3}
	require.NoError(t, tc.FlooringRepo.Create(ctx, oak))
	assert.Equal(t, pricing.DefaultUnit, oak.Unit)

	byName, err := tc.FlooringRepo.GetByName(ctx, "Oak")
	require.NoError(t, err)
	assert.Equal(t, oak.ID, byName.ID)

	cost := 900.0
	quote := &leads.Quote{Name: "Lee", Email: "lee@example.com", AreaSqft: 100, FlooringTypeID: &oak.ID, FlooringTypeName: oak.Name, EstimatedCost: &cost}
	require.NoError(t, tc.QuoteRepo.Create(ctx, quote))

	require.NoError(t, tc.FlooringRepo.DeleteByID(ctx, oak.ID))

	fetched, err := tc.QuoteRepo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.FlooringTypeID)
	assert.Equal(t, "Oak", fetched.FlooringTypeName)
	require.NotNil(t, fetched.EstimatedCost)
	assert.Equal(t, 900.0, *fetched.EstimatedCost)
}
