package models

import (
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/projects"
)

// ProjectModel is the gorm model for portfolio projects
type ProjectModel struct {
	ID          uint                `gorm:"primaryKey"`
	Title       string              `gorm:"size:200;not null;uniqueIndex"`
	Description string              `gorm:"type:text"`
	Category    string              `gorm:"size:100;not null;index"`
	Type        string              `gorm:"size:100;index"`
	Images      []ProjectImageModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectImageModel is one image of a project gallery
type ProjectImageModel struct {
	ID         uint   `gorm:"primaryKey"`
	ProjectID  uint   `gorm:"not null;index"`
	URL        string `gorm:"size:500;not null"`
	Alt        string `gorm:"size:255"`
	IsFeatured bool   `gorm:"not null;default:false"`
}

// TableName specifies the table name for gorm
func (ProjectModel) TableName() string {
	return "projects"
}

// TableName specifies the table name for gorm
func (ProjectImageModel) TableName() string {
	return "project_images"
}

// ToDomain converts the gorm model, images included, to the domain entity
func (m *ProjectModel) ToDomain() *projects.Project {
	p := &projects.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Type:        m.Type,
		Images:      make([]projects.ProjectImage, 0, len(m.Images)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, img := range m.Images {
		p.Images = append(p.Images, projects.ProjectImage{
			ID:         img.ID,
			ProjectID:  img.ProjectID,
			URL:        img.URL,
			Alt:        img.Alt,
			IsFeatured: img.IsFeatured,
		})
	}
	return p
}

// FromDomain converts the domain entity to the gorm model
func (m *ProjectModel) FromDomain(p *projects.Project) {
	m.ID = p.ID
	m.Title = p.Title
	m.Description = p.Description
	m.Category = p.Category
	m.Type = p.Type
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.Images = make([]ProjectImageModel, 0, len(p.Images))
	for _, img := range p.Images {
		m.Images = append(m.Images, ProjectImageModel{
			ProjectID:  p.ID,
			URL:        img.URL,
			Alt:        img.Alt,
			IsFeatured: img.IsFeatured,
		})
	}
}
