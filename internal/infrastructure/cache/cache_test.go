//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_DisabledReturnsNoop(t *testing.T) {
	store, err := NewStore(context.Background(), &config.CacheSettings{Enabled: false}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.IsType(t, NoopStore{}, store)

	var out []string
	hit, err := store.Get(context.Background(), "services", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, store.Set(context.Background(), "services", []string{"a"}))
	assert.NoError(t, store.DeletePrefix(context.Background(), "services"))
	assert.NoError(t, store.Close())
}

func TestNewStore_EnabledRequiresAddr(t *testing.T) {
	_, err := NewStore(context.Background(), &config.CacheSettings{Enabled: true, TTL: time.Minute}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestNewStore_UnreachableRedisReturnsNilStore(t *testing.T) {
	settings := &config.CacheSettings{Enabled: true, Addr: "127.0.0.1:1", TTL: time.Minute}

	store, err := NewStore(context.Background(), settings, testutil.SetupTestLogger(t))

	assert.Error(t, err)
	assert.True(t, store == nil, "a failed store must be a nil interface, not a typed nil")
}
