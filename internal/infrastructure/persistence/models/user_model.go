package models

import (
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/users"
)

// UserModel is the gorm model for back-office accounts
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Name         string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:Viewer"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for gorm
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the gorm model to the domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Name = u.Name
	m.Role = u.Role
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
