package persistence

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence/models"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"gorm.io/gorm"
)

type gormTestimonialRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTestimonialRepository creates a new gorm-based TestimonialRepository implementation
func NewGormTestimonialRepository(db *gorm.DB, logger logger.Logger) (testimonials.TestimonialRepository, error) {
	return &gormTestimonialRepository{db: db, logger: logger}, nil
}

func (r *gormTestimonialRepository) Create(ctx context.Context, testimonial *testimonials.Testimonial) error {
	if err := testimonial.Validate(); err != nil {
		return err
	}

	model := &models.TestimonialModel{}
	model.FromDomain(testimonial)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "testimonial", testimonial.Name)
	}

	*testimonial = *model.ToDomain()
	r.logger.Info("created testimonial", "id", testimonial.ID)
	return nil
}

func (r *gormTestimonialRepository) List(ctx context.Context, page pagination.Params) ([]*testimonials.Testimonial, int64, error) {
	var modelList []*models.TestimonialModel
	query := r.db.WithContext(ctx).Model(&models.TestimonialModel{})

	total, err := paginate(query, page.Offset(), page.Limit, "created_at DESC, id DESC", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch testimonials: %w", err)
	}

	domainList := make([]*testimonials.Testimonial, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormTestimonialRepository) GetByID(ctx context.Context, id uint) (*testimonials.Testimonial, error) {
	var model models.TestimonialModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "testimonial", id)
	}
	return model.ToDomain(), nil
}

func (r *gormTestimonialRepository) Update(ctx context.Context, testimonial *testimonials.Testimonial) error {
	if err := testimonial.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.TestimonialModel{}).Where("id = ?", testimonial.ID).Updates(map[string]interface{}{
		"name":      testimonial.Name,
		"role":      testimonial.Role,
		"content":   testimonial.Content,
		"rating":    testimonial.Rating,
		"image_url": testimonial.ImageURL,
	})
	if err := rowsAffected(result, "update", "testimonial", testimonial.ID); err != nil {
		return err
	}

	r.logger.Info("updated testimonial", "id", testimonial.ID)
	return nil
}

func (r *gormTestimonialRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TestimonialModel{}, id)
	if err := rowsAffected(result, "delete", "testimonial", id); err != nil {
		return err
	}

	r.logger.Info("deleted testimonial", "id", id)
	return nil
}

type gormFAQRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFAQRepository creates a new gorm-based FAQRepository implementation
func NewGormFAQRepository(db *gorm.DB, logger logger.Logger) (faqs.FAQRepository, error) {
	return &gormFAQRepository{db: db, logger: logger}, nil
}

func (r *gormFAQRepository) Create(ctx context.Context, faq *faqs.FAQ) error {
	if err := faq.Validate(); err != nil {
		return err
	}

	model := &models.FAQModel{}
	model.FromDomain(faq)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "faq", faq.Question)
	}

	*faq = *model.ToDomain()
	r.logger.Info("created faq", "id", faq.ID)
	return nil
}

func (r *gormFAQRepository) List(ctx context.Context) ([]*faqs.FAQ, error) {
	var modelList []*models.FAQModel
	if err := r.db.WithContext(ctx).Order("order_index ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch faqs: %w", err)
	}

	domainList := make([]*faqs.FAQ, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormFAQRepository) GetByID(ctx context.Context, id uint) (*faqs.FAQ, error) {
	var model models.FAQModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "faq", id)
	}
	return model.ToDomain(), nil
}

func (r *gormFAQRepository) Update(ctx context.Context, faq *faqs.FAQ) error {
	if err := faq.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.FAQModel{}).Where("id = ?", faq.ID).Updates(map[string]interface{}{
		"question":    faq.Question,
		"answer":      faq.Answer,
		"order_index": faq.OrderIndex,
	})
	if err := rowsAffected(result, "update", "faq", faq.ID); err != nil {
		return err
	}

	r.logger.Info("updated faq", "id", faq.ID)
	return nil
}

func (r *gormFAQRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQModel{}, id)
	if err := rowsAffected(result, "delete", "faq", id); err != nil {
		return err
	}

	r.logger.Info("deleted faq", "id", id)
	return nil
}

type gormFlooringTypeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFlooringTypeRepository creates a new gorm-based FlooringTypeRepository implementation
func NewGormFlooringTypeRepository(db *gorm.DB, logger logger.Logger) (pricing.FlooringTypeRepository, error) {
	return &gormFlooringTypeRepository{db: db, logger: logger}, nil
}

func (r *gormFlooringTypeRepository) Create(ctx context.Context, flooringType *pricing.FlooringType) error {
	if err := flooringType.Validate(); err != nil {
		return err
	}

	model := &models.FlooringTypeModel{}
	model.FromDomain(flooringType)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "flooring type", flooringType.Name)
	}

	*flooringType = *model.ToDomain()
	r.logger.Info("created flooring type", "id", flooringType.ID, "name", flooringType.Name)
	return nil
}

func (r *gormFlooringTypeRepository) List(ctx context.Context) ([]*pricing.FlooringType, error) {
	var modelList []*models.FlooringTypeModel
	if err := r.db.WithContext(ctx).Order("order_index ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch flooring types: %w", err)
	}

	domainList := make([]*pricing.FlooringType, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormFlooringTypeRepository) GetByID(ctx context.Context, id uint) (*pricing.FlooringType, error) {
	var model models.FlooringTypeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "flooring type", id)
	}
	return model.ToDomain(), nil
}

func (r *gormFlooringTypeRepository) GetByName(ctx context.Context, name string) (*pricing.FlooringType, error) {
	var model models.FlooringTypeModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translateError(err, "fetch", "flooring type", name)
	}
	return model.ToDomain(), nil
}

func (r *gormFlooringTypeRepository) Update(ctx context.Context, flooringType *pricing.FlooringType) error {
	if err := flooringType.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.FlooringTypeModel{}).Where("id = ?", flooringType.ID).Updates(map[string]interface{}{
		"name":                    flooringType.Name,
		"description":             flooringType.Description,
		"material_price_per_sqft": flooringType.MaterialPricePerSqft,
		"labor_price_per_sqft":    flooringType.LaborPricePerSqft,
		"unit":                    flooringType.Unit,
		"order_index":             flooringType.OrderIndex,
	})
	if err := rowsAffected(result, "update", "flooring type", flooringType.ID); err != nil {
		return err
	}

	r.logger.Info("updated flooring type", "id", flooringType.ID)
	return nil
}

func (r *gormFlooringTypeRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Quotes keep the copied name; the reference is cleared like ON DELETE SET NULL.
		if err := tx.Model(&models.QuoteModel{}).Where("flooring_type_id = ?", id).Update("flooring_type_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach quotes: %w", err)
		}
		return rowsAffected(tx.Delete(&models.FlooringTypeModel{}, id), "delete", "flooring type", id)
	})
	if err != nil {
		return err
	}

	r.logger.Info("deleted flooring type", "id", id)
	return nil
}

// rowsAffected turns a finished update or delete into a translated error,
// reporting apperr.ErrNotFound when no row matched.
func rowsAffected(result *gorm.DB, action, entity string, id interface{}) error {
	if result.Error != nil {
		return translateError(result.Error, action, entity, id)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, action, entity, id)
	}
	return nil
}
