//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	UserRepo        users.UserRepository
	ServiceRepo     catalog.ServiceRepository
	ProjectRepo     projects.ProjectRepository
	TestimonialRepo testimonials.TestimonialRepository
	FAQRepo         faqs.FAQRepository
	FlooringRepo    pricing.FlooringTypeRepository
	ContactRepo     leads.ContactRepository
	ScheduleRepo    leads.ScheduleRepository
	QuoteRepo       leads.QuoteRepository
	MediaRepo       media.MediaRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.ServiceRepo, err = NewGormServiceRepository(db, log)
	require.NoError(t, err)
	tc.ProjectRepo, err = NewGormProjectRepository(db, log)
	require.NoError(t, err)
	tc.TestimonialRepo, err = NewGormTestimonialRepository(db, log)
	require.NoError(t, err)
	tc.FAQRepo, err = NewGormFAQRepository(db, log)
	require.NoError(t, err)
	tc.FlooringRepo, err = NewGormFlooringTypeRepository(db, log)
	require.NoError(t, err)
	tc.ContactRepo, err = NewGormContactRepository(db, log)
	require.NoError(t, err)
	tc.ScheduleRepo, err = NewGormScheduleRepository(db, log)
	require.NoError(t, err)
	tc.QuoteRepo, err = NewGormQuoteRepository(db, log)
	require.NoError(t, err)
	tc.MediaRepo, err = NewGormMediaRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser returns a valid viewer with a unique email
func CreateTestUser(t *testing.T, name string) *users.User {
	t.Helper()

	return &users.User{
		Email:        strings.ToLower(name) + "-" + uuid.NewString()[:8] + "@modarflor.test",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZrpA1dAkgkkGsvu0jY1bQe",
		Name:         name,
		Role:         users.RoleViewer,
	}
}

// CreateTestService returns a valid service with the given feature lines
func CreateTestService(t *testing.T, title string, order int, features ...string) *catalog.Service {
	t.Helper()

	in := &catalog.ServiceInput{
		Title:       title,
		Description: title + " done right",
		OrderIndex:  order,
		Features:    features,
	}
	return in.ToService()
}

// CreateTestProject returns a valid project with n images, the first one featured
func CreateTestProject(t *testing.T, title, category string, n int) *projects.Project {
	t.Helper()

	p := &projects.Project{Title: title, Category: category, Type: "Residential"}
	for i := 0; i < n; i++ {
		p.Images = append(p.Images, projects.ProjectImage{
			URL:        "/api/v1/media/" + uuid.NewString() + ".jpg",
			Alt:        title,
			IsFeatured: i == 0,
		})
	}
	return p
}

// CreateTestSchedule returns a valid schedule two days ahead
func CreateTestSchedule(t *testing.T) *leads.Schedule {
	t.Helper()

	return &leads.Schedule{
		Name:          "Sam Carter",
		Email:         "sam@example.com",
		Phone:         "555-0100",
		ServiceType:   "In-home measurement",
		PreferredDate: time.Now().Add(48 * time.Hour),
		PreferredTime: "morning",
	}
}
