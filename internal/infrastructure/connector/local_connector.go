package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

// LocalMediaConnector keeps media objects as flat files in one directory
type LocalMediaConnector struct {
	dir    string
	logger logger.Logger
}

// NewLocalMediaConnector creates the storage directory if needed
func NewLocalMediaConnector(settings *config.MediaSettings, logger logger.Logger) (media.MediaConnector, error) {
	if settings.LocalDir == "" {
		return nil, fmt.Errorf("local media directory is required")
	}

	dir, err := filepath.Abs(settings.LocalDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", dir, err)
	}

	return &LocalMediaConnector{dir: dir, logger: logger}, nil
}

// Upload writes data to a temporary file and renames it into place
func (c *LocalMediaConnector) Upload(_ context.Context, fileName, _ string, data []byte) error {
	if err := validObjectName(fileName); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", fileName, err)
	}
	if err := os.Rename(tmpName, filepath.Join(c.dir, fileName)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to store %s: %w", fileName, err)
	}

	c.logger.Info("media object stored", "file", fileName, "size", len(data))
	return nil
}

// Download reads the stored file
func (c *LocalMediaConnector) Download(_ context.Context, fileName string) ([]byte, error) {
	if err := validObjectName(fileName); err != nil {
		return nil, apperr.NotFound("media object", fileName)
	}

	data, err := os.ReadFile(filepath.Join(c.dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound("media object", fileName)
		}
		return nil, fmt.Errorf("failed to read %s: %w", fileName, err)
	}
	return data, nil
}

// Delete removes the stored file
func (c *LocalMediaConnector) Delete(_ context.Context, fileName string) error {
	if err := validObjectName(fileName); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(c.dir, fileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", fileName, err)
	}

	c.logger.Info("media object deleted", "file", fileName)
	return nil
}
