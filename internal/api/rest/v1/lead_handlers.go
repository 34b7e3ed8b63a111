package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// LeadHandler defines the interface shared by the contact, schedule and quote endpoints.
// Submit is public, the others are back-office operations.
type LeadHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// leadService is the back-office part common to the three lead services
type leadService[E any] interface {
	List(ctx context.Context, query *leads.LeadQuery) (pagination.Page[E], error)
	GetByID(ctx context.Context, id uint) (E, error)
	UpdateStatus(ctx context.Context, id uint, status string) (E, error)
	DeleteByID(ctx context.Context, id uint) error
}

type leadHandler[E any, R any] struct {
	kind       leads.Kind
	service    leadService[E]
	submit     func(ctx *gin.Context) (E, bool)
	toResponse func(E) R
}

// NewContactHandler creates the LeadHandler of /contacts
func NewContactHandler(contactService leads.ContactService) LeadHandler {
	return &leadHandler[*leads.Contact, ContactResponse]{
		kind:    leads.KindContact,
		service: contactService,
		submit: func(ctx *gin.Context) (*leads.Contact, bool) {
			var req ContactRequest
			if !bindJSON(ctx, &req) {
				return nil, false
			}
			contact, err := contactService.Submit(ctx.Request.Context(), req.ToContact())
			if err != nil {
				respondError(ctx, err)
				return nil, false
			}
			return contact, true
		},
		toResponse: newContactResponse,
	}
}

// NewScheduleHandler creates the LeadHandler of /schedules
func NewScheduleHandler(scheduleService leads.ScheduleService) LeadHandler {
	return &leadHandler[*leads.Schedule, ScheduleResponse]{
		kind:    leads.KindSchedule,
		service: scheduleService,
		submit: func(ctx *gin.Context) (*leads.Schedule, bool) {
			var req ScheduleRequest
			if !bindJSON(ctx, &req) {
				return nil, false
			}
			schedule, err := req.ToSchedule()
			if err != nil {
				respondError(ctx, err)
				return nil, false
			}
			stored, err := scheduleService.Submit(ctx.Request.Context(), schedule)
			if err != nil {
				respondError(ctx, err)
				return nil, false
			}
			return stored, true
		},
		toResponse: newScheduleResponse,
	}
}

// NewQuoteHandler creates the LeadHandler of /quotes
func NewQuoteHandler(quoteService leads.QuoteService) LeadHandler {
	return &leadHandler[*leads.Quote, QuoteResponse]{
		kind:    leads.KindQuote,
		service: quoteService,
		submit: func(ctx *gin.Context) (*leads.Quote, bool) {
			var req QuoteRequest
			if !bindJSON(ctx, &req) {
				return nil, false
			}
			quote, err := quoteService.Submit(ctx.Request.Context(), req.ToQuote())
			if err != nil {
				respondError(ctx, err)
				return nil, false
			}
			return quote, true
		},
		toResponse: newQuoteResponse,
	}
}

// Submit stores a public form submission; notifications are sent in the background
func (handler *leadHandler[E, R]) Submit(ctx *gin.Context) {
	lead, ok := handler.submit(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusCreated, handler.toResponse(lead))
}

// List returns one page of leads, optionally filtered by status
func (handler *leadHandler[E, R]) List(ctx *gin.Context) {
	query := leads.NewLeadQuery()
	query.Page = pageParams(ctx)

	if status := strings.TrimSpace(ctx.Query("status")); len(status) > 0 {
		query.Status = status
	}

	if err := query.Validate(handler.kind); err != nil {
		respondError(ctx, err)
		return
	}

	page, err := handler.service.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(page, handler.toResponse))
}

func (handler *leadHandler[E, R]) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	lead, err := handler.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, handler.toResponse(lead))
}

// UpdateStatus moves a lead along its workflow
func (handler *leadHandler[E, R]) UpdateStatus(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	lead, err := handler.service.UpdateStatus(ctx.Request.Context(), id, strings.TrimSpace(req.Status))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, handler.toResponse(lead))
}

func (handler *leadHandler[E, R]) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := handler.service.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}
