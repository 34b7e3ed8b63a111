//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserModel_RoundTrip(t *testing.T) {
	now := time.Now()
	user := &users.User{ID: 9, Email: "a@b.co", PasswordHash: "hash", Name: "A", Role: users.RoleAdmin, CreatedAt: now, UpdatedAt: now}

	var m UserModel
	m.FromDomain(user)

	assert.Equal(t, "users", m.TableName())
	assert.Equal(t, user, m.ToDomain())
}

func TestServiceModel_FromDomain_SetsFeatureOwner(t *testing.T) {
	svc := &catalog.Service{
		ID:          4,
		Title:       "Refinishing",
		Description: "Sand and seal",
		Features:    []catalog.ServiceFeature{{ID: 99, Description: "Dustless sanding"}, {Description: "Eco finish"}},
	}

	var m ServiceModel
	m.FromDomain(svc)

	require.Len(t, m.Features, 2)
	for _, f := range m.Features {
		assert.Equal(t, uint(4), f.ServiceID)
		assert.Zero(t, f.ID)
	}
	assert.Equal(t, "Dustless sanding", m.Features[0].Description)
}

func TestServiceModel_ToDomain(t *testing.T) {
	m := &ServiceModel{ID: 1, Title: "Tile", Description: "d", Features: []ServiceFeatureModel{{ID: 3, ServiceID: 1, Description: "Grout"}}}

	svc := m.ToDomain()

	assert.Equal(t, "Tile", svc.Title)
	require.Len(t, svc.Features, 1)
	assert.Equal(t, catalog.ServiceFeature{ID: 3, ServiceID: 1, Description: "Grout"}, svc.Features[0])

	empty := (&ServiceModel{}).ToDomain()
	assert.NotNil(t, empty.Features)
}

func TestProjectModel_RoundTrip(t *testing.T) {
	p := &projects.Project{
		ID:       2,
		Title:    "Office",
		Category: "Commercial",
		Images:   []projects.ProjectImage{{URL: "a.jpg", Alt: "lobby", IsFeatured: true}},
	}

	var m ProjectModel
	m.FromDomain(p)
	require.Len(t, m.Images, 1)
	assert.Equal(t, uint(2), m.Images[0].ProjectID)

	back := m.ToDomain()
	assert.Equal(t, "Commercial", back.Category)
	assert.True(t, back.Images[0].IsFeatured)
}

func TestQuoteModel_RoundTrip(t *testing.T) {
	typeID := uint(5)
	cost := 1122.5
	q := &leads.Quote{
		Name:             "Lee",
		Email:            "lee@example.com",
		FlooringTypeID:   &typeID,
		FlooringTypeName: "Oak",
		AreaSqft:         120,
		EstimatedCost:    &cost,
		Status:           leads.QuoteStatusNew,
	}

	var m QuoteModel
	m.FromDomain(q)
	assert.Equal(t, q, m.ToDomain())
}

func TestAll(t *testing.T) {
	assert.Len(t, All(), 12)
}
