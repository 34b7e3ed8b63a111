package models

import (
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/leads"
)

// ContactModel is the gorm model for contact messages
type ContactModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null;index"`
	Phone     string `gorm:"size:30"`
	Subject   string `gorm:"size:200"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"size:20;not null;default:new;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for gorm
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the gorm model to the domain entity
func (m *ContactModel) ToDomain() *leads.Contact {
	return &leads.Contact{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *ContactModel) FromDomain(c *leads.Contact) {
	m.ID = c.ID
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Subject = c.Subject
	m.Message = c.Message
	m.Status = c.Status
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ScheduleModel is the gorm model for consultation requests
type ScheduleModel struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null"`
	Email         string    `gorm:"size:255;not null;index"`
	Phone         string    `gorm:"size:30;not null"`
	Address       string    `gorm:"size:255"`
	ServiceType   string    `gorm:"size:100;not null"`
	PreferredDate time.Time `gorm:"not null;index"`
	PreferredTime string    `gorm:"size:50"`
	Notes         string    `gorm:"type:text"`
	Status        string    `gorm:"size:20;not null;default:pending;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for gorm
func (ScheduleModel) TableName() string {
	return "schedules"
}

// ToDomain converts the gorm model to the domain entity
func (m *ScheduleModel) ToDomain() *leads.Schedule {
	return &leads.Schedule{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		ServiceType:   m.ServiceType,
		PreferredDate: m.PreferredDate,
		PreferredTime: m.PreferredTime,
		Notes:         m.Notes,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *ScheduleModel) FromDomain(s *leads.Schedule) {
	m.ID = s.ID
	m.Name = s.Name
	m.Email = s.Email
	m.Phone = s.Phone
	m.Address = s.Address
	m.ServiceType = s.ServiceType
	m.PreferredDate = s.PreferredDate
	m.PreferredTime = s.PreferredTime
	m.Notes = s.Notes
	m.Status = s.Status
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// QuoteModel is the gorm model for quote requests. The flooring type is referenced
// by id and its name is copied so the quote stays readable after the type is deleted.
type QuoteModel struct {
	ID               uint               `gorm:"primaryKey"`
	Name             string             `gorm:"size:100;not null"`
	Email            string             `gorm:"size:255;not null;index"`
	Phone            string             `gorm:"size:30"`
	FlooringTypeID   *uint              `gorm:"index"`
	FlooringType     *FlooringTypeModel `gorm:"foreignKey:FlooringTypeID;constraint:OnDelete:SET NULL"`
	FlooringTypeName string             `gorm:"size:100"`
	AreaSqft         float64            `gorm:"not null"`
	Rooms            int                `gorm:"not null;default:0"`
	Details          string             `gorm:"type:text"`
	EstimatedCost    *float64
	Status           string `gorm:"size:20;not null;default:new;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for gorm
func (QuoteModel) TableName() string {
	return "quotes"
}

// ToDomain converts the gorm model to the domain entity
func (m *QuoteModel) ToDomain() *leads.Quote {
	return &leads.Quote{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		FlooringTypeID:   m.FlooringTypeID,
		FlooringTypeName: m.FlooringTypeName,
		AreaSqft:         m.AreaSqft,
		Rooms:            m.Rooms,
		Details:          m.Details,
		EstimatedCost:    m.EstimatedCost,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain converts the domain entity to the gorm model
func (m *QuoteModel) FromDomain(q *leads.Quote) {
	m.ID = q.ID
	m.Name = q.Name
	m.Email = q.Email
	m.Phone = q.Phone
	m.FlooringTypeID = q.FlooringTypeID
	m.FlooringTypeName = q.FlooringTypeName
	m.AreaSqft = q.AreaSqft
	m.Rooms = q.Rooms
	m.Details = q.Details
	m.EstimatedCost = q.EstimatedCost
	m.Status = q.Status
	m.CreatedAt = q.CreatedAt
	m.UpdatedAt = q.UpdatedAt
}
