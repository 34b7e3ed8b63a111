package leads

import (
	"context"

	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
)

// ContactRepository defines the persistence operations for contact messages
type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	List(ctx context.Context, query *LeadQuery) ([]*Contact, int64, error)
	GetByID(ctx context.Context, id uint) (*Contact, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	DeleteByID(ctx context.Context, id uint) error
}

// ScheduleRepository defines the persistence operations for schedule requests
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *Schedule) error
	List(ctx context.Context, query *LeadQuery) ([]*Schedule, int64, error)
	GetByID(ctx context.Context, id uint) (*Schedule, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	DeleteByID(ctx context.Context, id uint) error
}

// QuoteRepository defines the persistence operations for quote requests
type QuoteRepository interface {
	Create(ctx context.Context, quote *Quote) error
	List(ctx context.Context, query *LeadQuery) ([]*Quote, int64, error)
	GetByID(ctx context.Context, id uint) (*Quote, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	DeleteByID(ctx context.Context, id uint) error
}

// ContactService stores contact messages and manages their status
type ContactService interface {
	// Submit stores the message and triggers notifications without waiting for them
	Submit(ctx context.Context, contact *Contact) (*Contact, error)
	List(ctx context.Context, query *LeadQuery) (pagination.Page[*Contact], error)
	GetByID(ctx context.Context, id uint) (*Contact, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*Contact, error)
	DeleteByID(ctx context.Context, id uint) error
}

// ScheduleService stores schedule requests and manages their status
type ScheduleService interface {
	Submit(ctx context.Context, schedule *Schedule) (*Schedule, error)
	List(ctx context.Context, query *LeadQuery) (pagination.Page[*Schedule], error)
	GetByID(ctx context.Context, id uint) (*Schedule, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*Schedule, error)
	DeleteByID(ctx context.Context, id uint) error
}

// QuoteService stores quote requests, pricing them from the flooring-type list when possible
type QuoteService interface {
	Submit(ctx context.Context, quote *Quote) (*Quote, error)
	List(ctx context.Context, query *LeadQuery) (pagination.Page[*Quote], error)
	GetByID(ctx context.Context, id uint) (*Quote, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*Quote, error)
	DeleteByID(ctx context.Context, id uint) error
}

// Notifier delivers the out-of-band side effects of a stored lead.
// Implementations return immediately; delivery failures are logged, never returned.
type Notifier interface {
	ContactSubmitted(contact *Contact)
	ScheduleSubmitted(schedule *Schedule)
	QuoteSubmitted(quote *Quote)
}
