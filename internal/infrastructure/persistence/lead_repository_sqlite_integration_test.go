//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSqliteRepository_StatusWorkflow(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		c := &leads.Contact{Name: "Visitor", Email: "v@example.com", Message: "Hello"}
		require.NoError(t, tc.ContactRepo.Create(ctx, c))
		assert.Equal(t, leads.ContactStatusNew, c.Status)
	}

	require.NoError(t, tc.ContactRepo.UpdateStatus(ctx, 2, leads.ContactStatusReplied))

	query := leads.NewLeadQuery()
	query.Status = leads.ContactStatusNew
	list, total, err := tc.ContactRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	err = tc.ContactRepo.UpdateStatus(ctx, 2, leads.QuoteStatusWon)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	err = tc.ContactRepo.UpdateStatus(ctx, 99, leads.ContactStatusRead)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	require.NoError(t, tc.ContactRepo.DeleteByID(ctx, 1))
	_, err = tc.ContactRepo.GetByID(ctx, 1)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestScheduleSqliteRepository_CreateAndList(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	s := CreateTestSchedule(t)
	require.NoError(t, tc.ScheduleRepo.Create(ctx, s))
	assert.Equal(t, leads.ScheduleStatusPending, s.Status)

	require.NoError(t, tc.ScheduleRepo.UpdateStatus(ctx, s.ID, leads.ScheduleStatusConfirmed))

	fetched, err := tc.ScheduleRepo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, leads.ScheduleStatusConfirmed, fetched.Status)
	assert.Equal(t, s.PreferredDate.Unix(), fetched.PreferredDate.Unix())

	list, total, err := tc.ScheduleRepo.List(ctx, leads.NewLeadQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}

func TestQuoteSqliteRepository_WithoutFlooringType(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	q := &leads.Quote{Name: "Kim", Email: "kim@example.com", AreaSqft: 80, Rooms: 1, Details: "Bathroom tile"}
	require.NoError(t, tc.QuoteRepo.Create(ctx, q))
	assert.Nil(t, q.FlooringTypeID)
	assert.Nil(t, q.EstimatedCost)

	require.NoError(t, tc.QuoteRepo.UpdateStatus(ctx, q.ID, leads.QuoteStatusContacted))
	require.NoError(t, tc.QuoteRepo.DeleteByID(ctx, q.ID))
	assert.True(t, errors.Is(tc.QuoteRepo.DeleteByID(ctx, q.ID), apperr.ErrNotFound))
}

func TestMediaSqliteRepository_CRUD(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	m := &media.Media{
		FileName:     "0b7d.png",
		OriginalName: "floor.png",
		ContentType:  "image/png",
		Size:         2048,
		URL:          "/api/v1/media/0b7d.png",
		UploadedBy:   1,
	}
	require.NoError(t, tc.MediaRepo.Create(ctx, m))

	byName, err := tc.MediaRepo.GetByFileName(ctx, "0b7d.png")
	require.NoError(t, err)
	assert.Equal(t, m.ID, byName.ID)

	list, total, err := tc.MediaRepo.List(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	dup := *m
	dup.ID = 0
	assert.True(t, errors.Is(tc.MediaRepo.Create(ctx, &dup), apperr.ErrConflict))

	require.NoError(t, tc.MediaRepo.DeleteByID(ctx, m.ID))
	_, err = tc.MediaRepo.GetByID(ctx, m.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
