package app

import (
	"context"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
)

// serviceCatalogService implements the ServiceCatalogService interface
type serviceCatalogService struct {
	serviceRepo catalog.ServiceRepository
	cache       ListCache
	logger      logger.Logger
}

// NewServiceCatalogService creates a new instance of ServiceCatalogService
func NewServiceCatalogService(serviceRepo catalog.ServiceRepository, cache ListCache, logger logger.Logger) (catalog.ServiceCatalogService, error) {
	return &serviceCatalogService{
		serviceRepo: serviceRepo,
		cache:       cache,
		logger:      logger,
	}, nil
}

// Create stores the service and its features in one transaction
func (s *serviceCatalogService) Create(ctx context.Context, input *catalog.ServiceInput) (*catalog.Service, error) {
	service := input.ToService()
	if err := service.Validate(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyServices)

	s.logger.Info("service created", "service_id", service.ID, "features", len(service.Features))
	return service, nil
}

// List returns every service in display order
func (s *serviceCatalogService) List(ctx context.Context) ([]*catalog.Service, error) {
	return readThrough(ctx, s.cache, s.logger, cacheKeyServices, func() ([]*catalog.Service, error) {
		services, err := s.serviceRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list services: %w", err)
		}
		return services, nil
	})
}

// GetByID retrieves a service with its features
func (s *serviceCatalogService) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

// Update replaces the service row and its feature list
func (s *serviceCatalogService) Update(ctx context.Context, id uint, input *catalog.ServiceInput) (*catalog.Service, error) {
	existing, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	service := input.ToService()
	service.ID = existing.ID
	service.CreatedAt = existing.CreatedAt
	if err := service.Validate(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyServices)

	s.logger.Info("service updated", "service_id", service.ID, "features", len(service.Features))
	return s.serviceRepo.GetByID(ctx, id)
}

// DeleteByID removes a service and its features
func (s *serviceCatalogService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.serviceRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyServices)

	s.logger.Info("service deleted", "service_id", id)
	return nil
}

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo projects.ProjectRepository
	cache       ListCache
	logger      logger.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo projects.ProjectRepository, cache ListCache, logger logger.Logger) (projects.ProjectService, error) {
	return &projectService{
		projectRepo: projectRepo,
		cache:       cache,
		logger:      logger,
	}, nil
}

// Create stores the project and its images in one transaction
func (s *projectService) Create(ctx context.Context, input *projects.ProjectInput) (*projects.Project, error) {
	project := input.ToProject()
	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyProjectCategories)

	s.logger.Info("project created", "project_id", project.ID, "images", len(project.Images))
	return project, nil
}

// List returns one page of projects filtered by category and type
func (s *projectService) List(ctx context.Context, query *projects.ProjectQuery) (pagination.Page[*projects.Project], error) {
	items, total, err := s.projectRepo.List(ctx, query)
	if err != nil {
		return pagination.Page[*projects.Project]{}, fmt.Errorf("failed to list projects: %w", err)
	}
	return pagination.Page[*projects.Project]{Items: items, Meta: pagination.NewMeta(query.Page, total)}, nil
}

// GetByID retrieves a project with its images
func (s *projectService) GetByID(ctx context.Context, id uint) (*projects.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Update replaces the project row and its image list
func (s *projectService) Update(ctx context.Context, id uint, input *projects.ProjectInput) (*projects.Project, error) {
	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project := input.ToProject()
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt
	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyProjectCategories)

	s.logger.Info("project updated", "project_id", project.ID, "images", len(project.Images))
	return s.projectRepo.GetByID(ctx, id)
}

// DeleteByID removes a project and its images
func (s *projectService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.projectRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, cacheKeyProjectCategories)

	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// Categories returns the distinct project categories for the portfolio filter
func (s *projectService) Categories(ctx context.Context) ([]string, error) {
	return readThrough(ctx, s.cache, s.logger, cacheKeyProjectCategories, func() ([]string, error) {
		categories, err := s.projectRepo.Categories(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list project categories: %w", err)
		}
		if categories == nil {
			categories = []string{}
		}
		return categories, nil
	})
}
