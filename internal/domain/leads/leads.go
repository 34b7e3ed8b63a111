package leads

import (
	"strings"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

// Kind names a lead type in notifications and events
type Kind string

// Lead kinds
const (
	KindContact  Kind = "contact"
	KindSchedule Kind = "schedule"
	KindQuote    Kind = "quote"
)

// Contact statuses
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// Schedule statuses
const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusConfirmed = "confirmed"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

// Quote statuses
const (
	QuoteStatusNew       = "new"
	QuoteStatusContacted = "contacted"
	QuoteStatusWon       = "won"
	QuoteStatusLost      = "lost"
)

var statuses = map[Kind][]string{
	KindContact:  {ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived},
	KindSchedule: {ScheduleStatusPending, ScheduleStatusConfirmed, ScheduleStatusCompleted, ScheduleStatusCancelled},
	KindQuote:    {QuoteStatusNew, QuoteStatusContacted, QuoteStatusWon, QuoteStatusLost},
}

// ValidateStatus checks that status belongs to the workflow of kind.
func ValidateStatus(kind Kind, status string) error {
	for _, s := range statuses[kind] {
		if s == status {
			return nil
		}
	}
	return apperr.Invalid("status %q is not one of [%s]", status, strings.Join(statuses[kind], " "))
}

var validate = validators.New()

// Contact is a message from the contact form
type Contact struct {
	ID        uint
	Name      string `validate:"required,min=1,max=100"`
	Email     string `validate:"required,email,max=255"`
	Phone     string `validate:"omitempty,max=30"`
	Subject   string `validate:"omitempty,max=200"`
	Message   string `validate:"required,min=1,max=5000"`
	Status    string `validate:"required,oneof=new read replied archived"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Contact struct
func (c *Contact) Validate() error {
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
	return apperr.FromValidator(validate.Struct(c))
}

// Schedule is a consultation or measurement appointment request
type Schedule struct {
	ID            uint
	Name          string    `validate:"required,min=1,max=100"`
	Email         string    `validate:"required,email,max=255"`
	Phone         string    `validate:"required,min=5,max=30"`
	Address       string    `validate:"omitempty,max=255"`
	ServiceType   string    `validate:"required,max=100"`
	PreferredDate time.Time `validate:"required,notpast"`
	PreferredTime string    `validate:"omitempty,max=50"`
	Notes         string    `validate:"omitempty,max=2000"`
	Status        string    `validate:"required,oneof=pending confirmed completed cancelled"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate for validating Schedule struct. PreferredDate must not be in the past.
func (s *Schedule) Validate() error {
	if s.Status == "" {
		s.Status = ScheduleStatusPending
	}
	return apperr.FromValidator(validate.Struct(s))
}

// Quote is a request for a priced estimate
type Quote struct {
	ID               uint
	Name             string   `validate:"required,min=1,max=100"`
	Email            string   `validate:"required,email,max=255"`
	Phone            string   `validate:"omitempty,max=30"`
	FlooringTypeID   *uint    `validate:"omitempty,gt=0"`
	FlooringTypeName string   `validate:"omitempty,max=100"`
	AreaSqft         float64  `validate:"gt=0,lte=1000000"`
	Rooms            int      `validate:"gte=0,lte=100"`
	Details          string   `validate:"omitempty,max=5000"`
	EstimatedCost    *float64 `validate:"omitempty,gte=0"`
	Status           string   `validate:"required,oneof=new contacted won lost"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate for validating Quote struct
func (q *Quote) Validate() error {
	if q.Status == "" {
		q.Status = QuoteStatusNew
	}
	return apperr.FromValidator(validate.Struct(q))
}

// LeadQuery filters a back-office lead listing
type LeadQuery struct {
	Status string
	Page   pagination.Params
}

// NewLeadQuery creates a query for the first page with the default limit
func NewLeadQuery() *LeadQuery {
	return &LeadQuery{Page: pagination.New(0, 0)}
}

// Validate checks the optional status filter against the workflow of kind
func (q *LeadQuery) Validate(kind Kind) error {
	if q.Status == "" {
		return nil
	}
	return ValidateStatus(kind, q.Status)
}
