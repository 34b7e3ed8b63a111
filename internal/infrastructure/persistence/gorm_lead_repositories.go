package persistence

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence/models"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"

	"gorm.io/gorm"
)

// listLeads applies the optional status filter and loads one page, newest first.
func listLeads(ctx context.Context, db *gorm.DB, model interface{}, query *leads.LeadQuery, dest interface{}) (int64, error) {
	dbQuery := db.WithContext(ctx).Model(model)
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	return paginate(dbQuery, query.Page.Offset(), query.Page.Limit, "created_at DESC, id DESC", dest)
}

func updateLeadStatus(ctx context.Context, db *gorm.DB, model interface{}, entity string, id uint, status string) error {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Update("status", status)
	return rowsAffected(result, "update", entity, id)
}

type gormContactRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContactRepository creates a new gorm-based ContactRepository implementation
func NewGormContactRepository(db *gorm.DB, logger logger.Logger) (leads.ContactRepository, error) {
	return &gormContactRepository{db: db, logger: logger}, nil
}

func (r *gormContactRepository) Create(ctx context.Context, contact *leads.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	model := &models.ContactModel{}
	model.FromDomain(contact)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "contact", contact.Email)
	}

	*contact = *model.ToDomain()
	r.logger.Info("stored contact", "id", contact.ID)
	return nil
}

func (r *gormContactRepository) List(ctx context.Context, query *leads.LeadQuery) ([]*leads.Contact, int64, error) {
	var modelList []*models.ContactModel
	total, err := listLeads(ctx, r.db, &models.ContactModel{}, query, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contacts: %w", err)
	}

	domainList := make([]*leads.Contact, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormContactRepository) GetByID(ctx context.Context, id uint) (*leads.Contact, error) {
	var model models.ContactModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "contact", id)
	}
	return model.ToDomain(), nil
}

func (r *gormContactRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := leads.ValidateStatus(leads.KindContact, status); err != nil {
		return err
	}
	if err := updateLeadStatus(ctx, r.db, &models.ContactModel{}, "contact", id, status); err != nil {
		return err
	}

	r.logger.Info("updated contact status", "id", id, "status", status)
	return nil
}

func (r *gormContactRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := rowsAffected(r.db.WithContext(ctx).Delete(&models.ContactModel{}, id), "delete", "contact", id); err != nil {
		return err
	}

	r.logger.Info("deleted contact", "id", id)
	return nil
}

type gormScheduleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScheduleRepository creates a new gorm-based ScheduleRepository implementation
func NewGormScheduleRepository(db *gorm.DB, logger logger.Logger) (leads.ScheduleRepository, error) {
	return &gormScheduleRepository{db: db, logger: logger}, nil
}

func (r *gormScheduleRepository) Create(ctx context.Context, schedule *leads.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	model := &models.ScheduleModel{}
	model.FromDomain(schedule)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "schedule", schedule.Email)
	}

	*schedule = *model.ToDomain()
	r.logger.Info("stored schedule", "id", schedule.ID)
	return nil
}

func (r *gormScheduleRepository) List(ctx context.Context, query *leads.LeadQuery) ([]*leads.Schedule, int64, error) {
	var modelList []*models.ScheduleModel
	total, err := listLeads(ctx, r.db, &models.ScheduleModel{}, query, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	domainList := make([]*leads.Schedule, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormScheduleRepository) GetByID(ctx context.Context, id uint) (*leads.Schedule, error) {
	var model models.ScheduleModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "schedule", id)
	}
	return model.ToDomain(), nil
}

func (r *gormScheduleRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := leads.ValidateStatus(leads.KindSchedule, status); err != nil {
		return err
	}
	if err := updateLeadStatus(ctx, r.db, &models.ScheduleModel{}, "schedule", id, status); err != nil {
		return err
	}

	r.logger.Info("updated schedule status", "id", id, "status", status)
	return nil
}

func (r *gormScheduleRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := rowsAffected(r.db.WithContext(ctx).Delete(&models.ScheduleModel{}, id), "delete", "schedule", id); err != nil {
		return err
	}

	r.logger.Info("deleted schedule", "id", id)
	return nil
}

type gormQuoteRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormQuoteRepository creates a new gorm-based QuoteRepository implementation
func NewGormQuoteRepository(db *gorm.DB, logger logger.Logger) (leads.QuoteRepository, error) {
	return &gormQuoteRepository{db: db, logger: logger}, nil
}

func (r *gormQuoteRepository) Create(ctx context.Context, quote *leads.Quote) error {
	if err := quote.Validate(); err != nil {
		return err
	}

	model := &models.QuoteModel{}
	model.FromDomain(quote)
	if err := r.db.WithContext(ctx).Omit("FlooringType").Create(model).Error; err != nil {
		return translateError(err, "create", "quote", quote.Email)
	}

	*quote = *model.ToDomain()
	r.logger.Info("stored quote", "id", quote.ID)
	return nil
}

func (r *gormQuoteRepository) List(ctx context.Context, query *leads.LeadQuery) ([]*leads.Quote, int64, error) {
	var modelList []*models.QuoteModel
	total, err := listLeads(ctx, r.db, &models.QuoteModel{}, query, &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	domainList := make([]*leads.Quote, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormQuoteRepository) GetByID(ctx context.Context, id uint) (*leads.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateError(err, "fetch", "quote", id)
	}
	return model.ToDomain(), nil
}

func (r *gormQuoteRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := leads.ValidateStatus(leads.KindQuote, status); err != nil {
		return err
	}
	if err := updateLeadStatus(ctx, r.db, &models.QuoteModel{}, "quote", id, status); err != nil {
		return err
	}

	r.logger.Info("updated quote status", "id", id, "status", status)
	return nil
}

func (r *gormQuoteRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := rowsAffected(r.db.WithContext(ctx).Delete(&models.QuoteModel{}, id), "delete", "quote", id); err != nil {
		return err
	}

	r.logger.Info("deleted quote", "id", id)
	return nil
}
