package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
)

// contactService implements the ContactService interface
type contactService struct {
	contactRepo leads.ContactRepository
	notifier    leads.Notifier
	logger      logger.Logger
}

// NewContactService creates a new instance of ContactService
func NewContactService(contactRepo leads.ContactRepository, notifier leads.Notifier, logger logger.Logger) (leads.ContactService, error) {
	return &contactService{contactRepo: contactRepo, notifier: notifier, logger: logger}, nil
}

// Submit stores the message and hands it to the notifier
func (s *contactService) Submit(ctx context.Context, contact *leads.Contact) (*leads.Contact, error) {
	contact.ID = 0
	contact.Status = leads.ContactStatusNew
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)
	contact.Subject = strings.TrimSpace(contact.Subject)
	contact.Message = strings.TrimSpace(contact.Message)
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to store contact: %w", err)
	}
	s.logger.Info("lead stored", "kind", leads.KindContact, "id", contact.ID)

	s.notifier.ContactSubmitted(contact)
	return contact, nil
}

func (s *contactService) List(ctx context.Context, query *leads.LeadQuery) (pagination.Page[*leads.Contact], error) {
	if err := query.Validate(leads.KindContact); err != nil {
		return pagination.Page[*leads.Contact]{}, err
	}
	items, total, err := s.contactRepo.List(ctx, query)
	if err != nil {
		return pagination.Page[*leads.Contact]{}, fmt.Errorf("failed to list contacts: %w", err)
	}
	return pagination.Page[*leads.Contact]{Items: items, Meta: pagination.NewMeta(query.Page, total)}, nil
}

func (s *contactService) GetByID(ctx context.Context, id uint) (*leads.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

func (s *contactService) UpdateStatus(ctx context.Context, id uint, status string) (*leads.Contact, error) {
	if err := leads.ValidateStatus(leads.KindContact, status); err != nil {
		return nil, err
	}
	if err := s.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.logger.Info("lead status changed", "kind", leads.KindContact, "id", id, "status", status)
	return s.contactRepo.GetByID(ctx, id)
}

func (s *contactService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.contactRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("lead deleted", "kind", leads.KindContact, "id", id)
	return nil
}

// scheduleService implements the ScheduleService interface
type scheduleService struct {
	scheduleRepo leads.ScheduleRepository
	notifier     leads.Notifier
	logger       logger.Logger
}

// NewScheduleService creates a new instance of ScheduleService
func NewScheduleService(scheduleRepo leads.ScheduleRepository, notifier leads.Notifier, logger logger.Logger) (leads.ScheduleService, error) {
	return &scheduleService{scheduleRepo: scheduleRepo, notifier: notifier, logger: logger}, nil
}

// Submit stores the appointment request and hands it to the notifier
func (s *scheduleService) Submit(ctx context.Context, schedule *leads.Schedule) (*leads.Schedule, error) {
	schedule.ID = 0
	schedule.Status = leads.ScheduleStatusPending
	schedule.Name = strings.TrimSpace(schedule.Name)
	schedule.Email = strings.TrimSpace(schedule.Email)
	schedule.Phone = strings.TrimSpace(schedule.Phone)
	schedule.Address = strings.TrimSpace(schedule.Address)
	schedule.ServiceType = strings.TrimSpace(schedule.ServiceType)
	schedule.PreferredTime = strings.TrimSpace(schedule.PreferredTime)
	schedule.Notes = strings.TrimSpace(schedule.Notes)
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to store schedule: %w", err)
	}
	s.logger.Info("lead stored", "kind", leads.KindSchedule, "id", schedule.ID)

	s.notifier.ScheduleSubmitted(schedule)
	return schedule, nil
}

func (s *scheduleService) List(ctx context.Context, query *leads.LeadQuery) (pagination.Page[*leads.Schedule], error) {
	if err := query.Validate(leads.KindSchedule); err != nil {
		return pagination.Page[*leads.Schedule]{}, err
	}
	items, total, err := s.scheduleRepo.List(ctx, query)
	if err != nil {
		return pagination.Page[*leads.Schedule]{}, fmt.Errorf("failed to list schedules: %w", err)
	}
	return pagination.Page[*leads.Schedule]{Items: items, Meta: pagination.NewMeta(query.Page, total)}, nil
}

func (s *scheduleService) GetByID(ctx context.Context, id uint) (*leads.Schedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

func (s *scheduleService) UpdateStatus(ctx context.Context, id uint, status string) (*leads.Schedule, error) {
	if err := leads.ValidateStatus(leads.KindSchedule, status); err != nil {
		return nil, err
	}
	if err := s.scheduleRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.logger.Info("lead status changed", "kind", leads.KindSchedule, "id", id, "status", status)
	return s.scheduleRepo.GetByID(ctx, id)
}

func (s *scheduleService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.scheduleRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("lead deleted", "kind", leads.KindSchedule, "id", id)
	return nil
}

// quoteService implements the QuoteService interface
type quoteService struct {
	quoteRepo    leads.QuoteRepository
	flooringRepo pricing.FlooringTypeRepository
	notifier     leads.Notifier
	logger       logger.Logger
}

// NewQuoteService creates a new instance of QuoteService
func NewQuoteService(quoteRepo leads.QuoteRepository, flooringRepo pricing.FlooringTypeRepository, notifier leads.Notifier, logger logger.Logger) (leads.QuoteService, error) {
	return &quoteService{quoteRepo: quoteRepo, flooringRepo: flooringRepo, notifier: notifier, logger: logger}, nil
}

// Submit prices the request from the flooring-type list, stores it and hands it to the notifier.
// A client supplied estimate is always replaced.
func (s *quoteService) Submit(ctx context.Context, quote *leads.Quote) (*leads.Quote, error) {
	quote.ID = 0
	quote.Status = leads.QuoteStatusNew
	quote.EstimatedCost = nil
	quote.Name = strings.TrimSpace(quote.Name)
	quote.Email = strings.TrimSpace(quote.Email)
	quote.Phone = strings.TrimSpace(quote.Phone)
	quote.FlooringTypeName = strings.TrimSpace(quote.FlooringTypeName)
	quote.Details = strings.TrimSpace(quote.Details)
	if err := quote.Validate(); err != nil {
		return nil, err
	}

	if err := s.price(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}
	s.logger.Info("lead stored", "kind", leads.KindQuote, "id", quote.ID, "priced", quote.EstimatedCost != nil)

	s.notifier.QuoteSubmitted(quote)
	return quote, nil
}

// price resolves the flooring type by id, or by name when no id was given, and fills the estimate
func (s *quoteService) price(ctx context.Context, quote *leads.Quote) error {
	var (
		ft  *pricing.FlooringType
		err error
	)

	switch {
	case quote.FlooringTypeID != nil:
		ft, err = s.flooringRepo.GetByID(ctx, *quote.FlooringTypeID)
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Invalid("flooring type %d does not exist", *quote.FlooringTypeID)
		}
	case quote.FlooringTypeName != "":
		ft, err = s.flooringRepo.GetByName(ctx, quote.FlooringTypeName)
		if errors.Is(err, apperr.ErrNotFound) {
			// free-text flooring names are kept unpriced
			return nil
		}
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up flooring type: %w", err)
	}

	estimate, err := ft.EstimateFor(quote.AreaSqft)
	if err != nil {
		return err
	}

	id := ft.ID
	quote.FlooringTypeID = &id
	quote.FlooringTypeName = ft.Name
	quote.EstimatedCost = &estimate.EstimatedCost
	return nil
}

func (s *quoteService) List(ctx context.Context, query *leads.LeadQuery) (pagination.Page[*leads.Quote], error) {
	if err := query.Validate(leads.KindQuote); err != nil {
		return pagination.Page[*leads.Quote]{}, err
	}
	items, total, err := s.quoteRepo.List(ctx, query)
	if err != nil {
		return pagination.Page[*leads.Quote]{}, fmt.Errorf("failed to list quotes: %w", err)
	}
	return pagination.Page[*leads.Quote]{Items: items, Meta: pagination.NewMeta(query.Page, total)}, nil
}

func (s *quoteService) GetByID(ctx context.Context, id uint) (*leads.Quote, error) {
	return s.quoteRepo.GetByID(ctx, id)
}

func (s *quoteService) UpdateStatus(ctx context.Context, id uint, status string) (*leads.Quote, error) {
	if err := leads.ValidateStatus(leads.KindQuote, status); err != nil {
		return nil, err
	}
	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.logger.Info("lead status changed", "kind", leads.KindQuote, "id", id, "status", status)
	return s.quoteRepo.GetByID(ctx, id)
}

func (s *quoteService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.quoteRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("lead deleted", "kind", leads.KindQuote, "id", id)
	return nil
}
