//go:build unit
// +build unit

package connector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalConnector(t *testing.T) (*LocalMediaConnector, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")

	c, err := NewLocalMediaConnector(&config.MediaSettings{LocalDir: dir}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return c.(*LocalMediaConnector), dir
}

func TestLocalMediaConnector_UploadDownloadDelete(t *testing.T) {
	c, dir := newLocalConnector(t)
	ctx := context.Background()

	require.NoError(t, c.Upload(ctx, "a.png", "image/png", testutil.PNGHeader))
	assert.FileExists(t, filepath.Join(dir, "a.png"))

	data, err := c.Download(ctx, "a.png")
	require.NoError(t, err)
	assert.Equal(t, testutil.PNGHeader, data)

	require.NoError(t, c.Delete(ctx, "a.png"))
	assert.NoFileExists(t, filepath.Join(dir, "a.png"))

	_, err = c.Download(ctx, "a.png")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.NoError(t, c.Delete(ctx, "a.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must not be left behind")
}

func TestLocalMediaConnector_RejectsTraversal(t *testing.T) {
	c, _ := newLocalConnector(t)
	ctx := context.Background()

	for _, name := range []string{"", "..", "../etc/passwd", "sub/file.png", `..\x.png`} {
		assert.Error(t, c.Upload(ctx, name, "image/png", testutil.PNGHeader), name)
		_, err := c.Download(ctx, name)
		assert.True(t, errors.Is(err, apperr.ErrNotFound), name)
	}
}

func TestNewMediaConnector_SelectsProvider(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	settings := &config.MediaSettings{
		Provider:      config.MediaProviderLocal,
		LocalDir:      t.TempDir(),
		PublicBaseURL: "/api/v1/media",
		MaxFileSize:   1024,
		MaxFiles:      5,
	}

	c, err := NewMediaConnector(context.Background(), settings, log)
	require.NoError(t, err)
	assert.IsType(t, &LocalMediaConnector{}, c)

	settings.Provider = config.MediaProviderAzure
	_, err = NewMediaConnector(context.Background(), settings, log)
	assert.Error(t, err)
}
