package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
)

// testimonialService implements the TestimonialService interface
type testimonialService struct {
	testimonialRepo testimonials.TestimonialRepository
	logger          logger.Logger
}

// NewTestimonialService creates a new instance of TestimonialService
func NewTestimonialService(testimonialRepo testimonials.TestimonialRepository, logger logger.Logger) (testimonials.TestimonialService, error) {
	return &testimonialService{testimonialRepo: testimonialRepo, logger: logger}, nil
}

func (s *testimonialService) Create(ctx context.Context, t *testimonials.Testimonial) (*testimonials.Testimonial, error) {
	t.ID = 0
	trimTestimonial(t)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.testimonialRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	s.logger.Info("testimonial created", "testimonial_id", t.ID, "rating", t.Rating)
	return t, nil
}

func (s *testimonialService) List(ctx context.Context, page pagination.Params) (pagination.Page[*testimonials.Testimonial], error) {
	items, total, err := s.testimonialRepo.List(ctx, page)
	if err != nil {
		return pagination.Page[*testimonials.Testimonial]{}, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return pagination.Page[*testimonials.Testimonial]{Items: items, Meta: pagination.NewMeta(page, total)}, nil
}

func (s *testimonialService) GetByID(ctx context.Context, id uint) (*testimonials.Testimonial, error) {
	return s.testimonialRepo.GetByID(ctx, id)
}

func (s *testimonialService) Update(ctx context.Context, id uint, t *testimonials.Testimonial) (*testimonials.Testimonial, error) {
	existing, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	trimTestimonial(t)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.testimonialRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	s.logger.Info("testimonial updated", "testimonial_id", t.ID)
	return t, nil
}

func (s *testimonialService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.testimonialRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("testimonial deleted", "testimonial_id", id)
	return nil
}

func trimTestimonial(t *testimonials.Testimonial) {
	t.Name = strings.TrimSpace(t.Name)
	t.Role = strings.TrimSpace(t.Role)
	t.Content = strings.TrimSpace(t.Content)
	t.ImageURL = strings.TrimSpace(t.ImageURL)
}

// faqService implements the FAQService interface
type faqService struct {
	faqRepo faqs.FAQRepository
	cache   ListCache
	logger  logger.Logger
}

// NewFAQService creates a new instance of FAQService
func NewFAQService(faqRepo faqs.FAQRepository, cache ListCache, logger logger.Logger) (faqs.FAQService, error) {
	return &faqService{faqRepo: faqRepo, cache: cache, logger: logger}, nil
}

func (s *faqService) Create(ctx context.Context, faq *faqs.FAQ) (*faqs.FAQ, error) {
	faq.ID = 0
	faq.Question = strings.TrimSpace(faq.Question)
	faq.Answer = strings.TrimSpace(faq.Answer)
	if err := faq.Validate(); err != nil {
		return nil, err
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyFAQs)

	s.logger.Info("faq created", "faq_id", faq.ID)
	return faq, nil
}

func (s *faqService) List(ctx context.Context) ([]*faqs.FAQ, error) {
	return readThrough(ctx, s.cache, s.logger, cacheKeyFAQs, func() ([]*faqs.FAQ, error) {
		items, err := s.faqRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list faqs: %w", err)
		}
		return items, nil
	})
}

func (s *faqService) GetByID(ctx context.Context, id uint) (*faqs.FAQ, error) {
	return s.faqRepo.GetByID(ctx, id)
}

func (s *faqService) Update(ctx context.Context, id uint, faq *faqs.FAQ) (*faqs.FAQ, error) {
	existing, err := s.faqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	faq.ID = existing.ID
	faq.CreatedAt = existing.CreatedAt
	faq.Question = strings.TrimSpace(faq.Question)
	faq.Answer = strings.TrimSpace(faq.Answer)
	if err := faq.Validate(); err != nil {
		return nil, err
	}
	if err := s.faqRepo.Update(ctx, faq); err != nil {
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyFAQs)

	s.logger.Info("faq updated", "faq_id", faq.ID)
	return faq, nil
}

func (s *faqService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.faqRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyFAQs)

	s.logger.Info("faq deleted", "faq_id", id)
	return nil
}

// flooringTypeService implements the FlooringTypeService interface
type flooringTypeService struct {
	flooringRepo pricing.FlooringTypeRepository
	cache        ListCache
	logger       logger.Logger
}

// NewFlooringTypeService creates a new instance of FlooringTypeService
func NewFlooringTypeService(flooringRepo pricing.FlooringTypeRepository, cache ListCache, logger logger.Logger) (pricing.FlooringTypeService, error) {
	return &flooringTypeService{flooringRepo: flooringRepo, cache: cache, logger: logger}, nil
}

func (s *flooringTypeService) Create(ctx context.Context, ft *pricing.FlooringType) (*pricing.FlooringType, error) {
	ft.ID = 0
	ft.Name = strings.TrimSpace(ft.Name)
	if err := ft.Validate(); err != nil {
		return nil, err
	}
	if err := s.flooringRepo.Create(ctx, ft); err != nil {
		return nil, fmt.Errorf("failed to create flooring type: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyFlooringTypes)

	s.logger.Info("flooring type created", "flooring_type_id", ft.ID, "name", ft.Name)
	return ft, nil
}

func (s *flooringTypeService) List(ctx context.Context) ([]*pricing.FlooringType, error) {
	return readThrough(ctx, s.cache, s.logger, cacheKeyFlooringTypes, func() ([]*pricing.FlooringType, error) {
		items, err := s.flooringRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list flooring types: %w", err)
		}
		return items, nil
	})
}

func (s *flooringTypeService) GetByID(ctx context.Context, id uint) (*pricing.FlooringType, error) {
	return s.flooringRepo.GetByID(ctx, id)
}

func (s *flooringTypeService) Update(ctx context.Context, id uint, ft *pricing.FlooringType) (*pricing.FlooringType, error) {
	existing, err := s.flooringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ft.ID = existing.ID
	ft.CreatedAt = existing.CreatedAt
	ft.Name = strings.TrimSpace(ft.Name)
	if err := ft.Validate(); err != nil {
		return nil, err
	}
	if err := s.flooringRepo.Update(ctx, ft); err != nil {
		return nil, fmt.Errorf("failed to update flooring type: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyFlooringTypes)

	s.logger.Info("flooring type updated", "flooring_type_id", ft.ID)
	return ft, nil
}

// DeleteByID removes the flooring type; quotes referencing it keep their copied name
func (s *flooringTypeService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.flooringRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyFlooringTypes)

	s.logger.Info("flooring type deleted", "flooring_type_id", id)
	return nil
}

// Estimate prices an area without storing anything
func (s *flooringTypeService) Estimate(ctx context.Context, flooringTypeID uint, areaSqft float64) (*pricing.Estimate, error) {
	ft, err := s.flooringRepo.GetByID(ctx, flooringTypeID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Invalid("flooring type %d does not exist", flooringTypeID)
		}
		return nil, err
	}
	return ft.EstimateFor(areaSqft)
}
