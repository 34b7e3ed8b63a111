package projects

import (
	"strings"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

var validate = validators.New()

// Project entity
type Project struct {
	ID          uint
	Title       string `validate:"required,min=1,max=200"`
	Description string
	Category    string         `validate:"required,min=1,max=100"`
	Type        string         `validate:"omitempty,max=100"`
	Images      []ProjectImage `validate:"max=30,dive"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectImage is one picture of a project gallery
type ProjectImage struct {
	ID         uint
	ProjectID  uint
	URL        string `validate:"required,max=500"`
	Alt        string `validate:"omitempty,max=255"`
	IsFeatured bool
}

// Validate for validating Project struct
func (p *Project) Validate() error {
	return apperr.FromValidator(validate.Struct(p))
}

// FeaturedImage returns the featured image, falling back to the first one.
func (p *Project) FeaturedImage() *ProjectImage {
	for i := range p.Images {
		if p.Images[i].IsFeatured {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// NormalizeFeatured keeps at most one featured image: the first flagged one wins.
func (p *Project) NormalizeFeatured() {
	seen := false
	for i := range p.Images {
		if p.Images[i].IsFeatured {
			if seen {
				p.Images[i].IsFeatured = false
			}
			seen = true
		}
	}
}

// ProjectImageInput is one image of a ProjectInput
type ProjectImageInput struct {
	URL        string
	Alt        string
	IsFeatured bool
}

// ProjectInput carries the writable fields of a project
type ProjectInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Images      []ProjectImageInput
}

// ToProject builds a Project from the input with a normalized featured flag.
func (in *ProjectInput) ToProject() *Project {
	p := &Project{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Type:        strings.TrimSpace(in.Type),
	}
	for _, img := range in.Images {
		p.Images = append(p.Images, ProjectImage{
			URL:        strings.TrimSpace(img.URL),
			Alt:        strings.TrimSpace(img.Alt),
			IsFeatured: img.IsFeatured,
		})
	}
	p.NormalizeFeatured()
	return p
}

// ProjectQuery filters the portfolio listing
type ProjectQuery struct {
	Category string
	Type     string
	Page     pagination.Params
}

// NewProjectQuery creates a query for the first page with the default limit
func NewProjectQuery() *ProjectQuery {
	return &ProjectQuery{Page: pagination.New(0, 0)}
}
