//go:build unit
// +build unit

package app

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryCache is a ListCache over a map, storing JSON like the redis store
type memoryCache struct {
	values  map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if c.failGet {
		return false, errors.New("connection refused")
	}
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	for k := range c.values {
		if strings.HasPrefix(k, prefix) {
			delete(c.values, k)
		}
	}
	return nil
}

type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) Create(ctx context.Context, faq *faqs.FAQ) error {
	args := m.Called(ctx, faq)
	faq.ID = 1
	return args.Error(0)
}

func (m *MockFAQRepository) List(ctx context.Context) ([]*faqs.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*faqs.FAQ), args.Error(1)
}

func (m *MockFAQRepository) GetByID(ctx context.Context, id uint) (*faqs.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*faqs.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Update(ctx context.Context, faq *faqs.FAQ) error {
	return m.Called(ctx, faq).Error(0)
}

func (m *MockFAQRepository) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestFAQService_ListIsCachedUntilWrite(t *testing.T) {
	repo := new(MockFAQRepository)
	cache := newMemoryCache()
	svc, err := NewFAQService(repo, cache, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("List", mock.Anything).Return([]*faqs.FAQ{{ID: 1, Question: "Q?", Answer: "A"}}, nil).Twice()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first[0].Question, second[0].Question)
	repo.AssertNumberOfCalls(t, "List", 1)

	_, err = svc.Create(ctx, &faqs.FAQ{Question: "New?", Answer: "Yes"})
	require.NoError(t, err)
	assert.Empty(t, cache.values)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "List", 2)
}

func TestReadThrough_CacheErrorsFallBackToLoader(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet = true

	calls := 0
	got, err := readThrough(context.Background(), cache, testutil.SetupTestLogger(t), "k", func() ([]string, error) {
		calls++
		return []string{"fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)
	assert.Equal(t, 1, calls)
}

func TestReadThrough_LoaderErrorIsNotCached(t *testing.T) {
	cache := newMemoryCache()

	_, err := readThrough(context.Background(), cache, testutil.SetupTestLogger(t), "k", func() ([]string, error) {
		return nil, errors.New("db down")
	})
	assert.Error(t, err)
	assert.Empty(t, cache.values)
}
