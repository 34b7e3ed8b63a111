package persistence

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence/models"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new gorm-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	user.Email = users.NormalizeEmail(user.Email)
	if err := user.Validate(); err != nil {
		return err
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "user", user.Email)
	}

	*user = *model.ToDomain()
	r.logger.Info("created user", "id", user.ID, "role", user.Role)
	return nil
}

func (r *gormUserRepository) List(ctx context.Context, page pagination.Params) ([]*users.User, int64, error) {
	var modelList []*models.UserModel
	query := r.db.WithContext(ctx).Model(&models.UserModel{})

	total, err := paginate(query, page.Offset(), page.Limit, "id ASC", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id uint) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "user", id)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	email = users.NormalizeEmail(email)

	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "user", email)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *users.User) error {
	user.Email = users.NormalizeEmail(user.Email)
	if err := user.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"name":          user.Name,
		"role":          user.Role,
	})
	if result.Error != nil {
		return translateError(result.Error, "update", "user", user.ID)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "update", "user", user.ID)
	}

	r.logger.Info("updated user", "id", user.ID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return translateError(result.Error, "delete", "user", id)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "delete", "user", id)
	}

	r.logger.Info("deleted user", "id", id)
	return nil
}

func (r *gormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
