//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCatalogService_Lifecycle(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	second, err := ts.ServiceCatalog.Create(ctx, &catalog.ServiceInput{
		Title: "Tile Installation", Description: "Ceramic and porcelain", OrderIndex: 2,
		Features: []string{"Waterproofing", " ", "Grout sealing"},
	})
	require.NoError(t, err)
	assert.Len(t, second.Features, 2, "blank feature lines are dropped")

	first, err := ts.ServiceCatalog.Create(ctx, &catalog.ServiceInput{
		Title: "Hardwood Installation", Description: "Solid and engineered", OrderIndex: 1,
		Features: []string{"Oak", "Maple"},
	})
	require.NoError(t, err)

	list, err := ts.ServiceCatalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Len(t, list[1].Features, 2)

	updated, err := ts.ServiceCatalog.Update(ctx, first.ID, &catalog.ServiceInput{
		Title: "Hardwood Installation", Description: "Solid, engineered and reclaimed", OrderIndex: 3,
		Features: []string{"Reclaimed barn wood"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Features, 1)
	assert.Equal(t, "Reclaimed barn wood", updated.Features[0].Description)

	_, err = ts.ServiceCatalog.Create(ctx, &catalog.ServiceInput{Title: "Tile Installation", Description: "dup"})
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)

	_, err = ts.ServiceCatalog.Create(ctx, &catalog.ServiceInput{Title: "", Description: "missing title"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	require.NoError(t, ts.ServiceCatalog.DeleteByID(ctx, first.ID))
	_, err = ts.ServiceCatalog.GetByID(ctx, first.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	var orphans int64
	require.NoError(t, ts.DBContext.DB.Table("service_features").Where("service_id = ?", first.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestProjectService_FeaturedImageAndCategories(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	p, err := ts.ProjectService.Create(ctx, &projects.ProjectInput{
		Title: "Downtown Loft", Category: "Hardwood", Type: "Residential",
		Images: []projects.ProjectImageInput{
			{URL: "/api/v1/media/a.jpg", IsFeatured: false},
			{URL: "/api/v1/media/b.jpg", IsFeatured: true},
			{URL: "/api/v1/media/c.jpg", IsFeatured: true},
		},
	})
	require.NoError(t, err)

	got, err := ts.ProjectService.GetByID(ctx, p.ID)
	require.NoError(t, err)
	featured := 0
	for _, img := range got.Images {
		if img.IsFeatured {
			featured++
			assert.Equal(t, "/api/v1/media/b.jpg", img.URL)
		}
	}
	assert.Equal(t, 1, featured)

	_, err = ts.ProjectService.Create(ctx, &projects.ProjectInput{Title: "Office Lobby", Category: "Tile", Type: "Commercial"})
	require.NoError(t, err)

	categories, err := ts.ProjectService.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hardwood", "Tile"}, categories)

	query := projects.NewProjectQuery()
	query.Category = "Tile"
	page, err := ts.ProjectService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Office Lobby", page.Items[0].Title)
	assert.Equal(t, int64(1), page.Meta.Total)

	updated, err := ts.ProjectService.Update(ctx, p.ID, &projects.ProjectInput{Title: "Downtown Loft", Category: "Hardwood"})
	require.NoError(t, err)
	assert.Empty(t, updated.Images)
}

func TestTestimonialAndFAQServices(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := ts.TestimonialService.Create(ctx, &testimonials.Testimonial{Name: "Ann", Content: "Great", Rating: 6})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	tm, err := ts.TestimonialService.Create(ctx, &testimonials.Testimonial{Name: " Ann ", Content: "Great work", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "Ann", tm.Name)

	page, err := ts.TestimonialService.List(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Meta.Total)

	faq, err := ts.FAQService.Create(ctx, &faqs.FAQ{Question: "How long does install take?", Answer: "Usually **1-3 days**."})
	require.NoError(t, err)

	_, err = ts.FAQService.Create(ctx, &faqs.FAQ{Question: "How long does install take?", Answer: "dup"})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	faq.OrderIndex = 4
	updated, err := ts.FAQService.Update(ctx, faq.ID, faq)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.OrderIndex)

	list, err := ts.FAQService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, ts.FAQService.DeleteByID(ctx, faq.ID))
	assert.True(t, errors.Is(ts.FAQService.DeleteByID(ctx, faq.ID), apperr.ErrNotFound))
}

func TestFlooringTypeService_Estimate(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	ft, err := ts.FlooringTypeService.Create(ctx, &pricing.FlooringType{
		Name: "Luxury Vinyl Plank", MaterialPricePerSqft: 3.25, LaborPricePerSqft: 2.10,
	})
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultUnit, ft.Unit)

	est, err := ts.FlooringTypeService.Estimate(ctx, ft.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, 650.0, est.MaterialCost)
	assert.Equal(t, 420.0, est.LaborCost)
	assert.Equal(t, 1070.0, est.EstimatedCost)

	_, err = ts.FlooringTypeService.Estimate(ctx, ft.ID, 0)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = ts.FlooringTypeService.Estimate(ctx, 999, 10)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = ts.FlooringTypeService.Create(ctx, &pricing.FlooringType{Name: "Cork", MaterialPricePerSqft: -1})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}
