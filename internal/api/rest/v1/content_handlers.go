package v1

import (
	"net/http"

	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler defines the interface for customer reviews
type TestimonialHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type testimonialHandler struct {
	testimonialService testimonials.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(testimonialService testimonials.TestimonialService) TestimonialHandler {
	return &testimonialHandler{testimonialService: testimonialService}
}

func (handler *testimonialHandler) Create(ctx *gin.Context) {
	var req TestimonialRequest
	if !bindJSON(ctx, &req) {
		return
	}

	testimonial, err := handler.testimonialService.Create(ctx.Request.Context(), req.ToTestimonial())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newTestimonialResponse(testimonial))
}

func (handler *testimonialHandler) List(ctx *gin.Context) {
	page, err := handler.testimonialService.List(ctx.Request.Context(), pageParams(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(page, newTestimonialResponse))
}

func (handler *testimonialHandler) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	testimonial, err := handler.testimonialService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTestimonialResponse(testimonial))
}

func (handler *testimonialHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req TestimonialRequest
	if !bindJSON(ctx, &req) {
		return
	}

	testimonial, err := handler.testimonialService.Update(ctx.Request.Context(), id, req.ToTestimonial())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTestimonialResponse(testimonial))
}

func (handler *testimonialHandler) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := handler.testimonialService.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// FAQHandler defines the interface for the FAQ list
type FAQHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type faqHandler struct {
	faqService faqs.FAQService
}

// NewFAQHandler creates a new FAQHandler
func NewFAQHandler(faqService faqs.FAQService) FAQHandler {
	return &faqHandler{faqService: faqService}
}

func (handler *faqHandler) Create(ctx *gin.Context) {
	var req FAQRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faq, err := handler.faqService.Create(ctx.Request.Context(), req.ToFAQ())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newFAQResponse(faq))
}

// List returns every FAQ in display order
func (handler *faqHandler) List(ctx *gin.Context) {
	items, err := handler.faqService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(pagination.All(items), newFAQResponse))
}

func (handler *faqHandler) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	faq, err := handler.faqService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newFAQResponse(faq))
}

func (handler *faqHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req FAQRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faq, err := handler.faqService.Update(ctx.Request.Context(), id, req.ToFAQ())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newFAQResponse(faq))
}

func (handler *faqHandler) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := handler.faqService.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// FlooringTypeHandler defines the interface for the price list and estimates
type FlooringTypeHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Estimate(ctx *gin.Context)
}

type flooringTypeHandler struct {
	flooringTypeService pricing.FlooringTypeService
}

// NewFlooringTypeHandler creates a new FlooringTypeHandler
func NewFlooringTypeHandler(flooringTypeService pricing.FlooringTypeService) FlooringTypeHandler {
	return &flooringTypeHandler{flooringTypeService: flooringTypeService}
}

func (handler *flooringTypeHandler) Create(ctx *gin.Context) {
	var req FlooringTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	flooringType, err := handler.flooringTypeService.Create(ctx.Request.Context(), req.ToFlooringType())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newFlooringTypeResponse(flooringType))
}

// List returns the full price list in display order
func (handler *flooringTypeHandler) List(ctx *gin.Context) {
	items, err := handler.flooringTypeService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(pagination.All(items), newFlooringTypeResponse))
}

func (handler *flooringTypeHandler) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	flooringType, err := handler.flooringTypeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newFlooringTypeResponse(flooringType))
}

func (handler *flooringTypeHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req FlooringTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	flooringType, err := handler.flooringTypeService.Update(ctx.Request.Context(), id, req.ToFlooringType())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newFlooringTypeResponse(flooringType))
}

func (handler *flooringTypeHandler) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := handler.flooringTypeService.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Estimate prices an area of one flooring type without storing anything
func (handler *flooringTypeHandler) Estimate(ctx *gin.Context) {
	var req EstimateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	estimate, err := handler.flooringTypeService.Estimate(ctx.Request.Context(), req.FlooringTypeID, req.AreaSqft)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newEstimateResponse(estimate))
}
