//go:build integration
// +build integration

package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaService_UploadListDownloadDelete(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	form := testutil.CreateMultipleTestFilesForm(t,
		testutil.TestFile{Name: "floor.png", ContentType: "image/png", Content: testutil.PNGHeader},
		testutil.TestFile{Name: "stairs.jpg", ContentType: "application/octet-stream", Content: testutil.JPEGHeader},
	)

	uploaded, err := ts.MediaService.Upload(ctx, form, 1)
	require.NoError(t, err)
	require.Len(t, uploaded, 2)

	png := uploaded[0]
	assert.Equal(t, "floor.png", png.OriginalName)
	assert.Equal(t, "image/png", png.ContentType)
	assert.Equal(t, filepath.Ext(png.FileName), ".png")
	assert.Equal(t, "/api/v1/media/"+png.FileName, png.URL)
	assert.Equal(t, "image/jpeg", uploaded[1].ContentType, "content type is sniffed from the bytes")

	page, err := ts.MediaService.List(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Meta.Total)

	data, meta, err := ts.MediaService.Download(ctx, png.FileName)
	require.NoError(t, err)
	assert.Equal(t, testutil.PNGHeader, data)
	assert.Equal(t, png.ID, meta.ID)

	require.NoError(t, ts.MediaService.DeleteByID(ctx, png.ID))
	_, err = os.Stat(filepath.Join(ts.MediaDir, png.FileName))
	assert.True(t, os.IsNotExist(err))

	_, _, err = ts.MediaService.Download(ctx, png.FileName)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestMediaService_UploadValidation(t *testing.T) {
	ts := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	tests := []struct {
		name  string
		files []testutil.TestFile
		want  string
	}{
		{
			name:  "no files",
			files: nil,
			want:  "no files",
		},
		{
			name: "too many files",
			files: []testutil.TestFile{
				{Name: "1.png", Content: testutil.PNGHeader},
				{Name: "2.png", Content: testutil.PNGHeader},
				{Name: "3.png", Content: testutil.PNGHeader},
				{Name: "4.png", Content: testutil.PNGHeader},
			},
			want: "at most 3",
		},
		{
			name:  "not an image",
			files: []testutil.TestFile{{Name: "notes.png", ContentType: "image/png", Content: []byte("plain text pretending to be a png")}},
			want:  "not a supported image",
		},
		{
			name:  "too large",
			files: []testutil.TestFile{{Name: "huge.png", Content: append(append([]byte{}, testutil.PNGHeader...), bytes.Repeat([]byte{0}, 1<<20)...)}},
			want:  "exceeds the maximum size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := testutil.CreateEmptyForm()
			if len(tt.files) > 0 {
				form = testutil.CreateMultipleTestFilesForm(t, tt.files...)
			}

			_, err := ts.MediaService.Upload(ctx, form, 1)
			assert.True(t, errors.Is(err, apperr.ErrValidation), "got %v", err)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	entries, err := os.ReadDir(ts.MediaDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads leave nothing behind")
}
