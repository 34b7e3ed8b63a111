package models

import (
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
)

// TestimonialModel is the gorm model for testimonials
type TestimonialModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Role      string `gorm:"size:100"`
	Content   string `gorm:"type:text;not null"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ImageURL  string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for gorm
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// ToDomain converts the gorm model to the domain entity
func (m *TestimonialModel) ToDomain() *testimonials.Testimonial {
	return &testimonials.Testimonial{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Content:   m.Content,
		Rating:    m.Rating,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *TestimonialModel) FromDomain(t *testimonials.Testimonial) {
	m.ID = t.ID
	m.Name = t.Name
	m.Role = t.Role
	m.Content = t.Content
	m.Rating = t.Rating
	m.ImageURL = t.ImageURL
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// FAQModel is the gorm model for FAQs
type FAQModel struct {
	ID         uint   `gorm:"primaryKey"`
	Question   string `gorm:"size:500;not null;uniqueIndex"`
	Answer     string `gorm:"type:text;not null"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for gorm
func (FAQModel) TableName() string {
	return "faqs"
}

// ToDomain converts the gorm model to the domain entity
func (m *FAQModel) ToDomain() *faqs.FAQ {
	return &faqs.FAQ{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		OrderIndex: m.OrderIndex,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *FAQModel) FromDomain(f *faqs.FAQ) {
	m.ID = f.ID
	m.Question = f.Question
	m.Answer = f.Answer
	m.OrderIndex = f.OrderIndex
	m.CreatedAt = f.CreatedAt
	m.UpdatedAt = f.UpdatedAt
}

// FlooringTypeModel is the gorm model for the price list
type FlooringTypeModel struct {
	ID                   uint    `gorm:"primaryKey"`
	Name                 string  `gorm:"size:100;not null;uniqueIndex"`
	Description          string  `gorm:"type:text"`
	MaterialPricePerSqft float64 `gorm:"not null;default:0"`
	LaborPricePerSqft    float64 `gorm:"not null;default:0"`
	Unit                 string  `gorm:"size:20;not null;default:sqft"`
	OrderIndex           int     `gorm:"not null;default:0;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for gorm
func (FlooringTypeModel) TableName() string {
	return "flooring_types"
}

// ToDomain converts the gorm model to the domain entity
func (m *FlooringTypeModel) ToDomain() *pricing.FlooringType {
	return &pricing.FlooringType{
		ID:                   m.ID,
		Name:                 m.Name,
		Description:          m.Description,
		MaterialPricePerSqft: m.MaterialPricePerSqft,
		LaborPricePerSqft:    m.LaborPricePerSqft,
		Unit:                 m.Unit,
		OrderIndex:           m.OrderIndex,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *FlooringTypeModel) FromDomain(f *pricing.FlooringType) {
	m.ID = f.ID
	m.Name = f.Name
	m.Description = f.Description
	m.MaterialPricePerSqft = f.MaterialPricePerSqft
	m.LaborPricePerSqft = f.LaborPricePerSqft
	m.Unit = f.Unit
	m.OrderIndex = f.OrderIndex
	m.CreatedAt = f.CreatedAt
	m.UpdatedAt = f.UpdatedAt
}
