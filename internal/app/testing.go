//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/infrastructure/auth"
	"github.com/kagailawrence/modarflor/internal/infrastructure/cache"
	"github.com/kagailawrence/modarflor/internal/infrastructure/connector"
	"github.com/kagailawrence/modarflor/internal/infrastructure/mailer"
	"github.com/kagailawrence/modarflor/internal/infrastructure/messaging"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestJWTSecret signs tokens in integration tests
const TestJWTSecret = "integration-test-secret-0123456789abcdef"

// TestAdminRecipient receives the admin notifications in integration tests
const TestAdminRecipient = "office@modarflor.test"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService         users.UserService
	AuthService         users.AuthService
	ServiceCatalog      catalog.ServiceCatalogService
	ProjectService      projects.ProjectService
	TestimonialService  testimonials.TestimonialService
	FAQService          faqs.FAQService
	FlooringTypeService pricing.FlooringTypeService
	ContactService      leads.ContactService
	ScheduleService     leads.ScheduleService
	QuoteService        leads.QuoteService
	MediaService        media.MediaService

	// Infrastructure
	Notifier  *LeadNotifier
	Mail      *mailer.NoopSender
	Connector media.MediaConnector
	MediaDir  string
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service over an in-memory database, a temporary media
// directory and the noop mail and event adapters
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	mediaSettings := &config.MediaSettings{
		Provider:      config.MediaProviderLocal,
		LocalDir:      t.TempDir(),
		PublicBaseURL: "/api/v1/media",
		MaxFileSize:   1 << 20,
		MaxFiles:      3,
	}
	mediaConnector, err := connector.NewMediaConnector(ctx, mediaSettings, logger)
	require.NoError(t, err, "Failed to create media connector")

	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err, "Failed to create password hasher")

	tokens, err := auth.NewJWTIssuer(&config.AuthSettings{
		JWTSecret: TestJWTSecret,
		Issuer:    "modarflor-test",
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err, "Failed to create token issuer")

	renderer, err := mailer.NewTemplateRenderer("Modarflor")
	require.NoError(t, err, "Failed to create mail renderer")

	sender := mailer.NewNoopSender(logger)
	notifier := NewLeadNotifier(renderer, sender, messaging.NewNoopPublisher(logger), []string{TestAdminRecipient}, 5*time.Second, logger)
	t.Cleanup(func() {
		waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = notifier.Wait(waitCtx)
	})

	listCache := cache.NoopStore{}
	ts := &TestServices{
		Notifier:  notifier,
		Mail:      sender,
		Connector: mediaConnector,
		MediaDir:  mediaSettings.LocalDir,
		DBContext: dbContext,
	}

	ts.UserService, err = NewUserService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err, "Failed to create UserService")
	ts.AuthService, err = NewAuthService(dbContext.UserRepo, hasher, tokens, logger)
	require.NoError(t, err, "Failed to create AuthService")
	ts.ServiceCatalog, err = NewServiceCatalogService(dbContext.ServiceRepo, listCache, logger)
	require.NoError(t, err, "Failed to create ServiceCatalogService")
	ts.ProjectService, err = NewProjectService(dbContext.ProjectRepo, listCache, logger)
	require.NoError(t, err, "Failed to create ProjectService")
	ts.TestimonialService, err = NewTestimonialService(dbContext.TestimonialRepo, logger)
	require.NoError(t, err, "Failed to create TestimonialService")
	ts.FAQService, err = NewFAQService(dbContext.FAQRepo, listCache, logger)
	require.NoError(t, err, "Failed to create FAQService")
	ts.FlooringTypeService, err = NewFlooringTypeService(dbContext.FlooringRepo, listCache, logger)
	require.NoError(t, err, "Failed to create FlooringTypeService")
	ts.ContactService, err = NewContactService(dbContext.ContactRepo, notifier, logger)
	require.NoError(t, err, "Failed to create ContactService")
	ts.ScheduleService, err = NewScheduleService(dbContext.ScheduleRepo, notifier, logger)
	require.NoError(t, err, "Failed to create ScheduleService")
	ts.QuoteService, err = NewQuoteService(dbContext.QuoteRepo, dbContext.FlooringRepo, notifier, logger)
	require.NoError(t, err, "Failed to create QuoteService")
	ts.MediaService, err = NewMediaService(mediaConnector, dbContext.MediaRepo, mediaSettings, logger)
	require.NoError(t, err, "Failed to create MediaService")

	return ts
}

// WaitForNotifications blocks until every pending lead notification has been delivered
func (ts *TestServices) WaitForNotifications(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, ts.Notifier.Wait(ctx))
}
