package persistence

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence/models"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormServiceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormServiceRepository creates a new gorm-based ServiceRepository implementation
func NewGormServiceRepository(db *gorm.DB, logger logger.Logger) (catalog.ServiceRepository, error) {
	return &gormServiceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormServiceRepository) Create(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	model := &models.ServiceModel{}
	model.FromDomain(service)
	features := model.Features

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Features").Create(model).Error; err != nil {
			return translateError(err, "create", "service", service.Title)
		}
		return insertFeatures(tx, model.ID, features)
	})
	if err != nil {
		return err
	}

	created, err := r.GetByID(ctx, model.ID)
	if err != nil {
		return err
	}
	*service = *created

	r.logger.Info("created service", "id", service.ID, "features", len(service.Features))
	return nil
}

func (r *gormServiceRepository) List(ctx context.Context) ([]*catalog.Service, error) {
	var modelList []*models.ServiceModel
	err := r.db.WithContext(ctx).
		Preload("Features", orderByID).
		Order("order_index ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	domainList := make([]*catalog.Service, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormServiceRepository) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).Preload("Features", orderByID).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "service", id)
	}
	return model.ToDomain(), nil
}

// Update rewrites the service row and replaces its features atomically.
func (r *gormServiceRepository) Update(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	model := &models.ServiceModel{}
	model.FromDomain(service)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ServiceModel{}).Where("id = ?", service.ID).Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"image_url":   model.ImageURL,
			"order_index": model.OrderIndex,
		})
		if result.Error != nil {
			return translateError(result.Error, "update", "service", service.ID)
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound, "update", "service", service.ID)
		}

		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceFeatureModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear service features: %w", err)
		}
		return insertFeatures(tx, service.ID, model.Features)
	})
	if err != nil {
		return err
	}

	updated, err := r.GetByID(ctx, service.ID)
	if err != nil {
		return err
	}
	*service = *updated

	r.logger.Info("updated service", "id", service.ID, "features", len(service.Features))
	return nil
}

// DeleteByID removes the features explicitly as well, so the result does not depend on
// the driver enforcing ON DELETE CASCADE.
func (r *gormServiceRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&models.ServiceFeatureModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete service features: %w", err)
		}
		result := tx.Delete(&models.ServiceModel{}, id)
		if result.Error != nil {
			return translateError(result.Error, "delete", "service", id)
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound, "delete", "service", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("deleted service", "id", id)
	return nil
}

func insertFeatures(tx *gorm.DB, serviceID uint, features []models.ServiceFeatureModel) error {
	if len(features) == 0 {
		return nil
	}
	for i := range features {
		features[i].ID = 0
		features[i].ServiceID = serviceID
	}
	if err := tx.Create(&features).Error; err != nil {
		return fmt.Errorf("failed to create service features: %w", err)
	}
	return nil
}
