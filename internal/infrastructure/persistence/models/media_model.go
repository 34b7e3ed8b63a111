package models

import (
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/media"
)

// MediaModel is the gorm model for uploaded images
type MediaModel struct {
	ID           uint   `gorm:"primaryKey"`
	FileName     string `gorm:"size:255;not null;uniqueIndex"`
	OriginalName string `gorm:"size:255;not null"`
	ContentType  string `gorm:"size:100;not null"`
	Size         int64  `gorm:"not null"`
	URL          string `gorm:"size:500;not null"`
	UploadedBy   uint   `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the table name for gorm
func (MediaModel) TableName() string {
	return "media"
}

// ToDomain converts the gorm model to the domain entity
func (m *MediaModel) ToDomain() *media.Media {
	return &media.Media{
		ID:           m.ID,
		FileName:     m.FileName,
		OriginalName: m.OriginalName,
		ContentType:  m.ContentType,
		Size:         m.Size,
		URL:          m.URL,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *MediaModel) FromDomain(md *media.Media) {
	m.ID = md.ID
	m.FileName = md.FileName
	m.OriginalName = md.OriginalName
	m.ContentType = md.ContentType
	m.Size = md.Size
	m.URL = md.URL
	m.UploadedBy = md.UploadedBy
	m.CreatedAt = md.CreatedAt
}
