package catalog

import (
	"strings"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

var validate = validators.New()

// Service entity, e.g. "Hardwood Installation"
type Service struct {
	ID          uint
	Title       string           `validate:"required,min=1,max=200"`
	Description string           `validate:"required"`
	ImageURL    string           `validate:"omitempty,max=500"`
	OrderIndex  int              `validate:"gte=0"`
	Features    []ServiceFeature `validate:"max=50,dive"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceFeature is one bullet point of a service
type ServiceFeature struct {
	ID          uint
	ServiceID   uint
	Description string `validate:"required,min=1,max=255"`
}

// Validate for validating Service struct
func (s *Service) Validate() error {
	return apperr.FromValidator(validate.Struct(s))
}

// ServiceInput carries the writable fields of a service
type ServiceInput struct {
	Title       string
	Description string
	ImageURL    string
	OrderIndex  int
	Features    []string
}

// ToService builds a Service from the input, dropping blank feature lines.
func (in *ServiceInput) ToService() *Service {
	svc := &Service{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		OrderIndex:  in.OrderIndex,
	}
	for _, f := range in.Features {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		svc.Features = append(svc.Features, ServiceFeature{Description: f})
	}
	return svc
}
