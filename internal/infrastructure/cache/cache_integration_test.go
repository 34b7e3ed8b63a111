//go:build integration
// +build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("MODARFLOR_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set MODARFLOR_TEST_REDIS_ADDR to run against redis")
	}

	ctx := context.Background()
	store, err := NewRedisStore(ctx, &config.CacheSettings{Enabled: true, Addr: addr, TTL: time.Minute}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	defer store.Close()

	type item struct {
		Title string `json:"title"`
	}

	require.NoError(t, store.Set(ctx, "test:services:list", []item{{Title: "Hardwood"}}))
	require.NoError(t, store.Set(ctx, "test:services:1", item{Title: "Tile"}))

	var got []item
	hit, err := store.Get(ctx, "test:services:list", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Hardwood", got[0].Title)

	require.NoError(t, store.DeletePrefix(ctx, "test:services"))

	hit, err = store.Get(ctx, "test:services:1", &item{})
	require.NoError(t, err)
	assert.False(t, hit)
}
