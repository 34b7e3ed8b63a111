package connector

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

// AzureBlobConnector stores media objects in one Azure Blob Storage container
type AzureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector connects with a connection string and creates the container if missing
func NewAzureBlobConnector(ctx context.Context, settings *config.MediaSettings, logger logger.Logger) (media.MediaConnector, error) {
	if settings.ConnectionString == "" || settings.ContainerName == "" {
		return nil, fmt.Errorf("azure media provider requires connection_string and container_name")
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload stores data as a block blob with its content type
func (c *AzureBlobConnector) Upload(ctx context.Context, fileName, contentType string, data []byte) error {
	if err := validObjectName(fileName); err != nil {
		return err
	}

	_, err := c.client.UploadBuffer(ctx, c.containerName, fileName, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", fileName, err)
	}

	c.logger.Info("media blob uploaded", "container", c.containerName, "file", fileName, "size", len(data))
	return nil
}

// Download reads the whole blob
func (c *AzureBlobConnector) Download(ctx context.Context, fileName string) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, fileName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, apperr.NotFound("media object", fileName)
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", fileName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", fileName, err)
	}
	return data, nil
}

// Delete removes the blob
func (c *AzureBlobConnector) Delete(ctx context.Context, fileName string) error {
	_, err := c.client.DeleteBlob(ctx, c.containerName, fileName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob %s: %w", fileName, err)
	}

	c.logger.Info("media blob deleted", "container", c.containerName, "file", fileName)
	return nil
}
