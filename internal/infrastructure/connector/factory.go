package connector

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

// NewMediaConnector returns the connector selected by settings.Provider
func NewMediaConnector(ctx context.Context, settings *config.MediaSettings, logger logger.Logger) (media.MediaConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case config.MediaProviderLocal:
		return NewLocalMediaConnector(settings, logger)
	case config.MediaProviderAzure:
		return NewAzureBlobConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported media provider: %s", settings.Provider)
	}
}

// validObjectName rejects names that could escape the storage root
func validObjectName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid object name %q", name)
	}
	for _, r := range name {
		if r == '/' || r == '\\' || r == 0 {
			return fmt.Errorf("invalid object name %q", name)
		}
	}
	return nil
}
