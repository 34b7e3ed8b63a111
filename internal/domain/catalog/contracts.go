package catalog

import (
	"context"
)

// ServiceRepository defines the persistence operations for services.
// Create and Update write the service row and its feature rows in one transaction.
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	// List returns every service ordered by order_index then id, features included
	List(ctx context.Context) ([]*Service, error)
	GetByID(ctx context.Context, id uint) (*Service, error)
	// Update replaces the row and the full feature list
	Update(ctx context.Context, service *Service) error
	DeleteByID(ctx context.Context, id uint) error
}

// ServiceCatalogService defines the operations behind the public services page and its admin editor.
type ServiceCatalogService interface {
	Create(ctx context.Context, input *ServiceInput) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
	GetByID(ctx context.Context, id uint) (*Service, error)
	Update(ctx context.Context, id uint, input *ServiceInput) (*Service, error)
	DeleteByID(ctx context.Context, id uint) error
}
