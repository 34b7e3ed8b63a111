// Package faqs defines the frequently asked questions list.
package faqs

import (
	"context"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

var validate = validators.New()

// FAQ entity. Answer is markdown.
type FAQ struct {
	ID         uint
	Question   string `validate:"required,min=1,max=500"`
	Answer     string `validate:"required"`
	OrderIndex int    `validate:"gte=0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate for validating FAQ struct
func (f *FAQ) Validate() error {
	return apperr.FromValidator(validate.Struct(f))
}

// FAQRepository defines the persistence operations for FAQs
type FAQRepository interface {
	Create(ctx context.Context, faq *FAQ) error
	// List returns all FAQs ordered by order_index then id
	List(ctx context.Context) ([]*FAQ, error)
	GetByID(ctx context.Context, id uint) (*FAQ, error)
	Update(ctx context.Context, faq *FAQ) error
	DeleteByID(ctx context.Context, id uint) error
}

// FAQService defines the FAQ operations
type FAQService interface {
	Create(ctx context.Context, faq *FAQ) (*FAQ, error)
	List(ctx context.Context) ([]*FAQ, error)
	GetByID(ctx context.Context, id uint) (*FAQ, error)
	Update(ctx context.Context, id uint, faq *FAQ) (*FAQ, error)
	DeleteByID(ctx context.Context, id uint) error
}
