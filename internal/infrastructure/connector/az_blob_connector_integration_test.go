//go:build integration
// +build integration

package connector

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AzureBlobConnectorTest struct {
	connector media.MediaConnector
}

func NewAzureBlobConnectorTest(t *testing.T) *AzureBlobConnectorTest {
	t.Helper()
	if os.Getenv("MODARFLOR_TEST_AZURITE") == "" {
		t.Skip("set MODARFLOR_TEST_AZURITE to run against a local Azurite emulator")
	}

	settings := &config.MediaSettings{
		Provider:         config.MediaProviderAzure,
		PublicBaseURL:    "/api/v1/media",
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
		MaxFileSize:      1 << 20,
		MaxFiles:         10,
	}

	connector, err := NewAzureBlobConnector(context.Background(), settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &AzureBlobConnectorTest{connector: connector}
}

func TestAzureBlobConnector_UploadDownloadDelete(t *testing.T) {
	abct := NewAzureBlobConnectorTest(t)
	ctx := context.Background()
	name := uuid.NewString() + ".png"

	require.NoError(t, abct.connector.Upload(ctx, name, "image/png", testutil.PNGHeader))

	data, err := abct.connector.Download(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, testutil.PNGHeader, data)

	require.NoError(t, abct.connector.Delete(ctx, name))

	_, err = abct.connector.Download(ctx, name)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	// a second delete is a no-op
	assert.NoError(t, abct.connector.Delete(ctx, name))
}

func TestAzureBlobConnector_Download_NotFound(t *testing.T) {
	abct := NewAzureBlobConnectorTest(t)

	_, err := abct.connector.Download(context.Background(), uuid.NewString()+".jpg")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestNewAzureBlobConnector_InvalidSettings(t *testing.T) {
	_, err := NewAzureBlobConnector(context.Background(), &config.MediaSettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
