package v1

import (
	"net/http"
	"strings"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// ServiceHandler defines the interface for the services catalog
type ServiceHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type serviceHandler struct {
	catalogService catalog.ServiceCatalogService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(catalogService catalog.ServiceCatalogService) ServiceHandler {
	return &serviceHandler{catalogService: catalogService}
}

// Create adds a service with its features
func (handler *serviceHandler) Create(ctx *gin.Context) {
	var req ServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	service, err := handler.catalogService.Create(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newServiceResponse(service))
}

// List returns every service in display order
func (handler *serviceHandler) List(ctx *gin.Context) {
	services, err := handler.catalogService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(pagination.All(services), newServiceResponse))
}

// GetByID returns one service
func (handler *serviceHandler) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	service, err := handler.catalogService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newServiceResponse(service))
}

// Update replaces a service and its features
func (handler *serviceHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req ServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	service, err := handler.catalogService.Update(ctx.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newServiceResponse(service))
}

// DeleteByID removes a service; its features cascade
func (handler *serviceHandler) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := handler.catalogService.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// ProjectHandler defines the interface for the portfolio
type ProjectHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Categories(ctx *gin.Context)
}

type projectHandler struct {
	projectService projects.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService projects.ProjectService) ProjectHandler {
	return &projectHandler{projectService: projectService}
}

// Create adds a project with its gallery
func (handler *projectHandler) Create(ctx *gin.Context) {
	var req ProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	project, err := handler.projectService.Create(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newProjectResponse(project))
}

// List returns one page of projects, optionally filtered by category and type
func (handler *projectHandler) List(ctx *gin.Context) {
	query := projects.NewProjectQuery()
	query.Page = pageParams(ctx)

	if category := strings.TrimSpace(ctx.Query("category")); len(category) > 0 {
		query.Category = category
	}

	if projectType := strings.TrimSpace(ctx.Query("type")); len(projectType) > 0 {
		query.Type = projectType
	}

	page, err := handler.projectService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newListResponse(page, newProjectResponse))
}

// GetByID returns one project
func (handler *projectHandler) GetByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	project, err := handler.projectService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProjectResponse(project))
}

// Update replaces a project and its gallery
func (handler *projectHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req ProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	project, err := handler.projectService.Update(ctx.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProjectResponse(project))
}

// DeleteByID removes a project; its images cascade
func (handler *projectHandler) DeleteByID(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := handler.projectService.DeleteByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Categories returns the distinct project categories for the portfolio filter
func (handler *projectHandler) Categories(ctx *gin.Context) {
	categories, err := handler.projectService.Categories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	ctx.JSON(http.StatusOK, gin.H{"data": categories})
}
