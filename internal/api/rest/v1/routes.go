package v1

import (
	"fmt"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services the routes delegate to
type Services struct {
	Auth          users.AuthService
	Users         users.UserService
	Catalog       catalog.ServiceCatalogService
	Projects      projects.ProjectService
	Testimonials  testimonials.TestimonialService
	FAQs          faqs.FAQService
	FlooringTypes pricing.FlooringTypeService
	Contacts      leads.ContactService
	Schedules     leads.ScheduleService
	Quotes        leads.QuoteService
	Media         media.MediaService
	PingDatabase  PingFunc
}

// NewEngine returns a bare gin engine that resolves the client IP from forwarding headers
// only when the request comes from one of trustedProxies. With none, the peer address is used.
func NewEngine(trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if len(trustedProxies) == 0 {
		trustedProxies = nil
	}
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	return r, nil
}

// SetupRoutes sets up all the API routes for version 1.
// Reads of the catalog are public, back-office reads need a token and every mutation
// outside the public forms needs the Admin role. The public forms are rate limited per client.
func SetupRoutes(r *gin.Engine, services *Services, limiter *RateLimiter, metrics *Metrics) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group(BasePath) // lookup in version file
	authed := v1.Group("", Authenticate(services.Auth))
	admin := authed.Group("", RequireAdmin())

	// Health Routes
	healthHandler := NewHealthHandler(services.PingDatabase)
	v1.GET("/health", healthHandler.Health)

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth, services.Users)
	v1.POST("/auth/login", authHandler.Login)
	authed.GET("/auth/me", authHandler.Me)
	authed.PUT("/auth/password", authHandler.ChangePassword)

	// Users Routes
	userHandler := NewUserHandler(services.Users)
	authed.GET("/users", userHandler.List)
	authed.GET("/users/:id", userHandler.GetByID)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.DeleteByID)

	// Services Routes
	serviceHandler := NewServiceHandler(services.Catalog)
	v1.GET("/services", serviceHandler.List)
	v1.GET("/services/:id", serviceHandler.GetByID)
	admin.POST("/services", serviceHandler.Create)
	admin.PUT("/services/:id", serviceHandler.Update)
	admin.DELETE("/services/:id", serviceHandler.DeleteByID)

	// Projects Routes
	projectHandler := NewProjectHandler(services.Projects)
	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/categories", projectHandler.Categories)
	v1.GET("/projects/:id", projectHandler.GetByID)
	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.DeleteByID)

	// Testimonials Routes
	testimonialHandler := NewTestimonialHandler(services.Testimonials)
	v1.GET("/testimonials", testimonialHandler.List)
	v1.GET("/testimonials/:id", testimonialHandler.GetByID)
	admin.POST("/testimonials", testimonialHandler.Create)
	admin.PUT("/testimonials/:id", testimonialHandler.Update)
	admin.DELETE("/testimonials/:id", testimonialHandler.DeleteByID)

	// FAQs Routes
	faqHandler := NewFAQHandler(services.FAQs)
	v1.GET("/faqs", faqHandler.List)
	v1.GET("/faqs/:id", faqHandler.GetByID)
	admin.POST("/faqs", faqHandler.Create)
	admin.PUT("/faqs/:id", faqHandler.Update)
	admin.DELETE("/faqs/:id", faqHandler.DeleteByID)

	// Flooring Types Routes
	flooringTypeHandler := NewFlooringTypeHandler(services.FlooringTypes)
	v1.GET("/flooring-types", flooringTypeHandler.List)
	v1.GET("/flooring-types/:id", flooringTypeHandler.GetByID)
	admin.POST("/flooring-types", flooringTypeHandler.Create)
	admin.PUT("/flooring-types/:id", flooringTypeHandler.Update)
	admin.DELETE("/flooring-types/:id", flooringTypeHandler.DeleteByID)
	v1.POST("/quotes/estimate", flooringTypeHandler.Estimate)

	// Lead Routes
	registerLeadRoutes(v1, authed, admin, "/contacts", NewContactHandler(services.Contacts), limiter)
	registerLeadRoutes(v1, authed, admin, "/schedules", NewScheduleHandler(services.Schedules), limiter)
	registerLeadRoutes(v1, authed, admin, "/quotes", NewQuoteHandler(services.Quotes), limiter)

	// Media Routes
	mediaHandler := NewMediaHandler(services.Media)
	authed.GET("/uploads", mediaHandler.List)
	authed.GET("/uploads/:id", mediaHandler.GetByID)
	admin.POST("/uploads", mediaHandler.Upload)
	admin.DELETE("/uploads/:id", mediaHandler.DeleteByID)
	v1.GET("/media/:file", mediaHandler.Serve)
}

func registerLeadRoutes(public, authed, admin *gin.RouterGroup, path string, handler LeadHandler, limiter *RateLimiter) {
	public.POST(path, limiter.Handler(), handler.Submit)
	authed.GET(path, handler.List)
	authed.GET(path+"/:id", handler.GetByID)
	admin.PATCH(path+"/:id/status", handler.UpdateStatus)
	admin.DELETE(path+"/:id", handler.DeleteByID)
}
