package persistence

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence/models"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new gorm-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.ProjectRepository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *projects.Project) error {
	project.NormalizeFeatured()
	if err := project.Validate(); err != nil {
		return err
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)
	images := model.Images

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Create(model).Error; err != nil {
			return translateError(err, "create", "project", project.Title)
		}
		return insertImages(tx, model.ID, images)
	})
	if err != nil {
		return err
	}

	created, err := r.GetByID(ctx, model.ID)
	if err != nil {
		return err
	}
	*project = *created

	r.logger.Info("created project", "id", project.ID, "images", len(project.Images))
	return nil
}

func (r *gormProjectRepository) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.ProjectModel{})

	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}

	var modelList []*models.ProjectModel
	total, err := paginate(dbQuery, query.Page.Offset(), query.Page.Limit, "created_at DESC, id DESC", &modelList, "Images")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch projects: %w", err)
	}

	domainList := make([]*projects.Project, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormProjectRepository) GetByID(ctx context.Context, id uint) (*projects.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Preload("Images", orderByID).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "project", id)
	}
	return model.ToDomain(), nil
}

// Update rewrites the project row and replaces its images atomically.
func (r *gormProjectRepository) Update(ctx context.Context, project *projects.Project) error {
	project.NormalizeFeatured()
	if err := project.Validate(); err != nil {
		return err
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProjectModel{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"category":    model.Category,
			"type":        model.Type,
		})
		if result.Error != nil {
			return translateError(result.Error, "update", "project", project.ID)
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound, "update", "project", project.ID)
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectImageModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear project images: %w", err)
		}
		return insertImages(tx, project.ID, model.Images)
	})
	if err != nil {
		return err
	}

	updated, err := r.GetByID(ctx, project.ID)
	if err != nil {
		return err
	}
	*project = *updated

	r.logger.Info("updated project", "id", project.ID, "images", len(project.Images))
	return nil
}

func (r *gormProjectRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete project images: %w", err)
		}
		result := tx.Delete(&models.ProjectModel{}, id)
		if result.Error != nil {
			return translateError(result.Error, "delete", "project", id)
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound, "delete", "project", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("deleted project", "id", id)
	return nil
}

func (r *gormProjectRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project categories: %w", err)
	}
	return categories, nil
}

func insertImages(tx *gorm.DB, projectID uint, images []models.ProjectImageModel) error {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ID = 0
		images[i].ProjectID = projectID
	}
	if err := tx.Create(&images).Error; err != nil {
		return fmt.Errorf("failed to create project images: %w", err)
	}
	return nil
}
