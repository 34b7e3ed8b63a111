package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

// mediaService implements the MediaService interface for the upload library
type mediaService struct {
	connector     media.MediaConnector
	mediaRepo     media.MediaRepository
	maxFileSize   int64
	maxFiles      int
	publicBaseURL string
	logger        logger.Logger
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(connector media.MediaConnector, mediaRepo media.MediaRepository, settings *config.MediaSettings, logger logger.Logger) (media.MediaService, error) {
	if settings.MaxFileSize <= 0 || settings.MaxFiles <= 0 {
		return nil, fmt.Errorf("media limits must be positive")
	}
	return &mediaService{
		connector:     connector,
		mediaRepo:     mediaRepo,
		maxFileSize:   settings.MaxFileSize,
		maxFiles:      settings.MaxFiles,
		publicBaseURL: strings.TrimRight(settings.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// pendingUpload is a validated file waiting to be stored
type pendingUpload struct {
	originalName string
	contentType  string
	data         []byte
}

// Upload validates every file before storing any of them. When storing fails midway,
// the objects and rows written so far are removed again.
func (s *mediaService) Upload(ctx context.Context, form *multipart.Form, userID uint) ([]*media.Media, error) {
	if form == nil || len(form.File[media.FormField]) == 0 {
		return nil, apperr.Invalid("no files provided in upload request")
	}
	headers := form.File[media.FormField]
	if len(headers) > s.maxFiles {
		return nil, apperr.Invalid("at most %d files may be uploaded at once", s.maxFiles)
	}

	pending := make([]*pendingUpload, 0, len(headers))
	for _, fh := range headers {
		p, err := s.readFile(fh)
		if err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}

	stored := make([]*media.Media, 0, len(pending))
	for _, p := range pending {
		m, err := s.store(ctx, p, userID)
		if err != nil {
			s.rollback(stored)
			return nil, err
		}
		stored = append(stored, m)
	}

	s.logger.Info("media uploaded", "count", len(stored), "user_id", userID)
	return stored, nil
}

func (s *mediaService) readFile(fh *multipart.FileHeader) (*pendingUpload, error) {
	name := filepath.Base(fh.Filename)
	if fh.Size > s.maxFileSize {
		return nil, apperr.Invalid("file %s exceeds the maximum size of %d bytes", name, s.maxFileSize)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %s: %w", name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %s: %w", name, err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, apperr.Invalid("file %s exceeds the maximum size of %d bytes", name, s.maxFileSize)
	}
	if len(data) == 0 {
		return nil, apperr.Invalid("file %s is empty", name)
	}

	// The declared Content-Type is not trusted; the bytes decide.
	contentType := http.DetectContentType(data)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	if _, ok := validators.ImageContentTypes[contentType]; !ok {
		return nil, apperr.Invalid("file %s is not a supported image (jpeg, png, webp, gif)", name)
	}

	return &pendingUpload{originalName: name, contentType: contentType, data: data}, nil
}

func (s *mediaService) store(ctx context.Context, p *pendingUpload, userID uint) (*media.Media, error) {
	fileName := uuid.NewString() + validators.ImageContentTypes[p.contentType]

	m := &media.Media{
		FileName:     fileName,
		OriginalName: p.originalName,
		ContentType:  p.contentType,
		Size:         int64(len(p.data)),
		URL:          s.publicBaseURL + "/" + fileName,
		UploadedBy:   userID,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.connector.Upload(ctx, fileName, p.contentType, p.data); err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", p.originalName, err)
	}

	if err := s.mediaRepo.Create(ctx, m); err != nil {
		if delErr := s.connector.Delete(context.WithoutCancel(ctx), fileName); delErr != nil {
			s.logger.Error("failed to remove orphaned media object", "file", fileName, "error", delErr)
		}
		return nil, fmt.Errorf("failed to record %s: %w", p.originalName, err)
	}

	return m, nil
}

func (s *mediaService) rollback(stored []*media.Media) {
	ctx := context.Background()
	for _, m := range stored {
		if err := s.connector.Delete(ctx, m.FileName); err != nil {
			s.logger.Error("failed to roll back media object", "file", m.FileName, "error", err)
		}
		if err := s.mediaRepo.DeleteByID(ctx, m.ID); err != nil {
			s.logger.Error("failed to roll back media row", "media_id", m.ID, "error", err)
		}
	}
}

// List returns one page of uploaded media, newest first
func (s *mediaService) List(ctx context.Context, page pagination.Params) (pagination.Page[*media.Media], error) {
	items, total, err := s.mediaRepo.List(ctx, page)
	if err != nil {
		return pagination.Page[*media.Media]{}, fmt.Errorf("failed to list media: %w", err)
	}
	return pagination.Page[*media.Media]{Items: items, Meta: pagination.NewMeta(page, total)}, nil
}

// GetByID retrieves media metadata by ID
func (s *mediaService) GetByID(ctx context.Context, id uint) (*media.Media, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

// DeleteByID removes the stored object first, then its row
func (s *mediaService) DeleteByID(ctx context.Context, id uint) error {
	m, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.connector.Delete(ctx, m.FileName); err != nil {
		return fmt.Errorf("failed to delete media object: %w", err)
	}
	if err := s.mediaRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("media deleted", "media_id", id, "file", m.FileName)
	return nil
}

// Download returns the object bytes for a stored file name
func (s *mediaService) Download(ctx context.Context, fileName string) ([]byte, *media.Media, error) {
	m, err := s.mediaRepo.GetByFileName(ctx, fileName)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.connector.Download(ctx, m.FileName)
	if err != nil {
		return nil, nil, err
	}
	return data, m, nil
}
