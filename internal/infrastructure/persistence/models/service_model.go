package models

import (
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
)

// ServiceModel is the gorm model for catalog services
type ServiceModel struct {
	ID          uint                  `gorm:"primaryKey"`
	Title       string                `gorm:"size:200;not null;uniqueIndex"`
	Description string                `gorm:"type:text;not null"`
	ImageURL    string                `gorm:"size:500"`
	OrderIndex  int                   `gorm:"not null;default:0;index"`
	Features    []ServiceFeatureModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceFeatureModel is one feature bullet of a service
type ServiceFeatureModel struct {
	ID          uint   `gorm:"primaryKey"`
	ServiceID   uint   `gorm:"not null;index"`
	Description string `gorm:"size:255;not null"`
}

// TableName specifies the table name for gorm
func (ServiceModel) TableName() string {
	return "services"
}

// TableName specifies the table name for gorm
func (ServiceFeatureModel) TableName() string {
	return "service_features"
}

// ToDomain converts the gorm model, features included, to the domain entity
func (m *ServiceModel) ToDomain() *catalog.Service {
	svc := &catalog.Service{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		OrderIndex:  m.OrderIndex,
		Features:    make([]catalog.ServiceFeature, 0, len(m.Features)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, f := range m.Features {
		svc.Features = append(svc.Features, catalog.ServiceFeature{
			ID:          f.ID,
			ServiceID:   f.ServiceID,
			Description: f.Description,
		})
	}
	return svc
}

// FromDomain converts the domain entity to the gorm model. Feature ids are not carried
// over because features are always rewritten as a whole.
func (m *ServiceModel) FromDomain(s *catalog.Service) {
	m.ID = s.ID
	m.Title = s.Title
	m.Description = s.Description
	m.ImageURL = s.ImageURL
	m.OrderIndex = s.OrderIndex
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
	m.Features = make([]ServiceFeatureModel, 0, len(s.Features))
	for _, f := range s.Features {
		m.Features = append(m.Features, ServiceFeatureModel{ServiceID: s.ID, Description: f.Description})
	}
}
