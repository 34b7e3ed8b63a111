package projects

import (
	"context"

	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
)

// ProjectRepository defines the persistence operations for projects.
// Create and Update write the project row and its images in one transaction.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	// List returns one page of projects, newest first, images included, and the total count
	List(ctx context.Context, query *ProjectQuery) ([]*Project, int64, error)
	GetByID(ctx context.Context, id uint) (*Project, error)
	// Update replaces the row and the full image list
	Update(ctx context.Context, project *Project) error
	DeleteByID(ctx context.Context, id uint) error
	// Categories returns the distinct categories in alphabetical order
	Categories(ctx context.Context) ([]string, error)
}

// ProjectService defines the portfolio operations.
type ProjectService interface {
	Create(ctx context.Context, input *ProjectInput) (*Project, error)
	List(ctx context.Context, query *ProjectQuery) (pagination.Page[*Project], error)
	GetByID(ctx context.Context, id uint) (*Project, error)
	Update(ctx context.Context, id uint, input *ProjectInput) (*Project, error)
	DeleteByID(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]string, error)
}
