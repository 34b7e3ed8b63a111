// Package testimonials defines customer reviews shown on the home page.
package testimonials

import (
	"context"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

var validate = validators.New()

// Testimonial entity
type Testimonial struct {
	ID        uint
	Name      string `validate:"required,min=1,max=100"`
	Role      string `validate:"omitempty,max=100"`
	Content   string `validate:"required,min=1,max=2000"`
	Rating    int    `validate:"required,min=1,max=5"`
	ImageURL  string `validate:"omitempty,max=500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Testimonial struct
func (t *Testimonial) Validate() error {
	return apperr.FromValidator(validate.Struct(t))
}

// TestimonialRepository defines the persistence operations for testimonials
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *Testimonial) error
	// List returns one page, newest first, and the total count
	List(ctx context.Context, page pagination.Params) ([]*Testimonial, int64, error)
	GetByID(ctx context.Context, id uint) (*Testimonial, error)
	Update(ctx context.Context, testimonial *Testimonial) error
	DeleteByID(ctx context.Context, id uint) error
}

// TestimonialService defines the testimonial operations
type TestimonialService interface {
	Create(ctx context.Context, testimonial *Testimonial) (*Testimonial, error)
	List(ctx context.Context, page pagination.Params) (pagination.Page[*Testimonial], error)
	GetByID(ctx context.Context, id uint) (*Testimonial, error)
	Update(ctx context.Context, id uint, testimonial *Testimonial) (*Testimonial, error)
	DeleteByID(ctx context.Context, id uint) error
}
