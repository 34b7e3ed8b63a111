package persistence

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence/models"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"gorm.io/gorm"
)

type gormMediaRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMediaRepository creates a new gorm-based MediaRepository implementation
func NewGormMediaRepository(db *gorm.DB, logger logger.Logger) (media.MediaRepository, error) {
	return &gormMediaRepository{db: db, logger: logger}, nil
}

func (r *gormMediaRepository) Create(ctx context.Context, m *media.Media) error {
	if err := m.Validate(); err != nil {
		return err
	}

	model := &models.MediaModel{}
	model.FromDomain(m)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "media", m.FileName)
	}

	*m = *model.ToDomain()
	r.logger.Info("created media metadata", "id", m.ID, "file", m.FileName)
	return nil
}

func (r *gormMediaRepository) List(ctx context.Context, page pagination.Params) ([]*media.Media, int64, error) {
	var modelList []*models.MediaModel
	query := r.db.WithContext(ctx).Model(&models.MediaModel{})

	total, err := paginate(query, page.Offset(), page.Limit, "created_at DESC, id DESC", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch media: %w", err)
	}

	domainList := make([]*media.Media, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormMediaRepository) GetByID(ctx context.Context, id uint) (*media.Media, error) {
	var model models.MediaModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "media", id)
	}
	return model.ToDomain(), nil
}

func (r *gormMediaRepository) GetByFileName(ctx context.Context, fileName string) (*media.Media, error) {
	var model models.MediaModel
	if err := r.db.WithContext(ctx).Where("file_name = ?", fileName).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "media", fileName)
	}
	return model.ToDomain(), nil
}

func (r *gormMediaRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := rowsAffected(r.db.WithContext(ctx).Delete(&models.MediaModel{}, id), "delete", "media", id); err != nil {
		return err
	}

	r.logger.Info("deleted media metadata", "id", id)
	return nil
}
