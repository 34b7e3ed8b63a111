// cmd/modarflor-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/kagailawrence/modarflor/internal/api/rest/v1"
	"github.com/kagailawrence/modarflor/internal/app"
	"github.com/kagailawrence/modarflor/internal/domain/events"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/infrastructure/auth"
	"github.com/kagailawrence/modarflor/internal/infrastructure/cache"
	"github.com/kagailawrence/modarflor/internal/infrastructure/connector"
	"github.com/kagailawrence/modarflor/internal/infrastructure/mailer"
	"github.com/kagailawrence/modarflor/internal/infrastructure/messaging"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	shutdownTimeout        = 15 * time.Second
	rateLimiterCleanupTick = 5 * time.Minute
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	loc, err := restConfig.Location()
	if err != nil {
		return err
	}
	validators.SetBusinessLocation(loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(ctx, restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	store     cache.Store
	publisher events.Publisher
	notifier  *app.LeadNotifier
	services  *v1.Services
}

// close releases the backing connections once in-flight notifications are done.
// Components that were never built are skipped, so it also unwinds a failed startup.
func (d *appDependencies) close(log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if d.notifier != nil {
		if err := d.notifier.Wait(ctx); err != nil {
			log.Warn("lead notifications still pending at shutdown", "error", err)
		}
	}
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			log.Error("failed to close event publisher", "error", err)
		}
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			log.Error("failed to close cache", "error", err)
		}
	}
	if d.db != nil {
		if err := persistence.CloseDB(d.db); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	deps := &appDependencies{}
	if err := deps.initialize(ctx, cfg, log); err != nil {
		return nil, err
	}
	return deps, nil
}

// initialize builds each component in turn. On failure everything built so far is closed again.
func (d *appDependencies) initialize(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (err error) {
	defer func() {
		if err != nil {
			d.close(log)
		}
	}()

	// Initialize database
	if d.db, err = persistence.NewDBConnection(cfg.Database); err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if cfg.Database.AutoMigrate {
		if err = persistence.Migrate(d.db); err != nil {
			return err
		}
		log.Info("Database migrations completed successfully")
	}

	if d.store, err = cache.NewStore(ctx, &cfg.Cache, log); err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}

	if d.publisher, err = messaging.NewPublisher(&cfg.Events, log); err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}

	sender, err := mailer.NewSender(&cfg.Mail, log)
	if err != nil {
		return fmt.Errorf("failed to create mail sender: %w", err)
	}

	renderer, err := mailer.NewTemplateRenderer(cfg.Mail.CompanyName)
	if err != nil {
		return fmt.Errorf("failed to create mail renderer: %w", err)
	}

	d.notifier = app.NewLeadNotifier(
		renderer, sender, d.publisher,
		cfg.Mail.AdminRecipients,
		time.Duration(cfg.Mail.SendTimeout)*time.Second,
		log,
	)

	mediaConnector, err := connector.NewMediaConnector(ctx, &cfg.Media, log)
	if err != nil {
		return fmt.Errorf("failed to create media connector: %w", err)
	}

	if d.services, err = initializeApplicationServices(d.db, d.store, d.notifier, mediaConnector, cfg, log); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	created, err := d.services.Auth.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.AdminName)
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	if created {
		log.Info("Seeded admin account", "email", cfg.Auth.AdminEmail)
	}

	return nil
}

// initializeApplicationServices sets up repositories and all application services
func initializeApplicationServices(
	db *gorm.DB,
	store cache.Store,
	notifier *app.LeadNotifier,
	mediaConnector media.MediaConnector,
	cfg *config.RestConfig,
	log logger.Logger,
) (*v1.Services, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	serviceRepo, err := persistence.NewGormServiceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create service repository: %w", err)
	}
	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}
	testimonialRepo, err := persistence.NewGormTestimonialRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create testimonial repository: %w", err)
	}
	faqRepo, err := persistence.NewGormFAQRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create faq repository: %w", err)
	}
	flooringRepo, err := persistence.NewGormFlooringTypeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create flooring type repository: %w", err)
	}
	contactRepo, err := persistence.NewGormContactRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	scheduleRepo, err := persistence.NewGormScheduleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule repository: %w", err)
	}
	quoteRepo, err := persistence.NewGormQuoteRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote repository: %w", err)
	}
	mediaRepo, err := persistence.NewGormMediaRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create media repository: %w", err)
	}

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}
	tokens, err := auth.NewJWTIssuer(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	s := &v1.Services{
		PingDatabase: func(ctx context.Context) error { return persistence.Ping(ctx, db) },
	}

	if s.Users, err = app.NewUserService(userRepo, hasher, log); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	if s.Auth, err = app.NewAuthService(userRepo, hasher, tokens, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if s.Catalog, err = app.NewServiceCatalogService(serviceRepo, store, log); err != nil {
		return nil, fmt.Errorf("failed to create service catalog service: %w", err)
	}
	if s.Projects, err = app.NewProjectService(projectRepo, store, log); err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}
	if s.Testimonials, err = app.NewTestimonialService(testimonialRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial service: %w", err)
	}
	if s.FAQs, err = app.NewFAQService(faqRepo, store, log); err != nil {
		return nil, fmt.Errorf("failed to create faq service: %w", err)
	}
	if s.FlooringTypes, err = app.NewFlooringTypeService(flooringRepo, store, log); err != nil {
		return nil, fmt.Errorf("failed to create flooring type service: %w", err)
	}
	if s.Contacts, err = app.NewContactService(contactRepo, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}
	if s.Schedules, err = app.NewScheduleService(scheduleRepo, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %w", err)
	}
	if s.Quotes, err = app.NewQuoteService(quoteRepo, flooringRepo, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create quote service: %w", err)
	}
	if s.Media, err = app.NewMediaService(mediaConnector, mediaRepo, &cfg.Media, log); err != nil {
		return nil, fmt.Errorf("failed to create media service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return s, nil
}

// newRouter builds the gin engine with the global middleware chain and every API route
func newRouter(ctx context.Context, cfg *config.RestConfig, services *v1.Services, log logger.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	r, err := v1.NewEngine(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, err
	}

	metrics := v1.NewMetrics()
	limiter := v1.NewRateLimiter(&cfg.RateLimit, log)
	limiter.StartCleanup(ctx, rateLimiterCleanupTick)

	r.Use(gin.Recovery(), v1.RequestID(), v1.AccessLog(log), metrics.Middleware())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.MaxMultipartMemory = cfg.Media.MaxFileSize

	v1.SetupRoutes(r, services, limiter, metrics)
	return r, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(ctx context.Context, cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	router, err := newRouter(ctx, cfg, deps.services, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Info("Received shutdown signal, initiating graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
