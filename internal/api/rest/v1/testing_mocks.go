//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *users.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*users.User), args.Error(2)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	args := m.Called(ctx, email, password, name)
	return args.Bool(0), args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, input *users.CreateUserInput) (*users.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, page pagination.Params) (pagination.Page[*users.User], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[*users.User]), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uint, input *users.UpdateUserInput) (*users.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, actorID, id uint) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

// MockServiceCatalogService is a mock implementation of ServiceCatalogService
type MockServiceCatalogService struct {
	mock.Mock
}

func (m *MockServiceCatalogService) Create(ctx context.Context, input *catalog.ServiceInput) (*catalog.Service, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceCatalogService) List(ctx context.Context) ([]*catalog.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Service), args.Error(1)
}

func (m *MockServiceCatalogService) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceCatalogService) Update(ctx context.Context, id uint, input *catalog.ServiceInput) (*catalog.Service, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceCatalogService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, input *projects.ProjectInput) (*projects.Project, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, query *projects.ProjectQuery) (pagination.Page[*projects.Project], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*projects.Project]), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, id uint) (*projects.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id uint, input *projects.ProjectInput) (*projects.Project, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTestimonialService is a mock implementation of TestimonialService
type MockTestimonialService struct {
	mock.Mock
}

func (m *MockTestimonialService) Create(ctx context.Context, testimonial *testimonials.Testimonial) (*testimonials.Testimonial, error) {
	args := m.Called(ctx, testimonial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*testimonials.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) List(ctx context.Context, page pagination.Params) (pagination.Page[*testimonials.Testimonial], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[*testimonials.Testimonial]), args.Error(1)
}

func (m *MockTestimonialService) GetByID(ctx context.Context, id uint) (*testimonials.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*testimonials.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) Update(ctx context.Context, id uint, testimonial *testimonials.Testimonial) (*testimonials.Testimonial, error) {
	args := m.Called(ctx, id, testimonial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*testimonials.Testimonial), args.Error(1)
}

func (m *MockTestimonialService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFAQService is a mock implementation of FAQService
type MockFAQService struct {
	mock.Mock
}

func (m *MockFAQService) Create(ctx context.Context, faq *faqs.FAQ) (*faqs.FAQ, error) {
	args := m.Called(ctx, faq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*faqs.FAQ), args.Error(1)
}

func (m *MockFAQService) List(ctx context.Context) ([]*faqs.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*faqs.FAQ), args.Error(1)
}

func (m *MockFAQService) GetByID(ctx context.Context, id uint) (*faqs.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*faqs.FAQ), args.Error(1)
}

func (m *MockFAQService) Update(ctx context.Context, id uint, faq *faqs.FAQ) (*faqs.FAQ, error) {
	args := m.Called(ctx, id, faq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*faqs.FAQ), args.Error(1)
}

func (m *MockFAQService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFlooringTypeService is a mock implementation of FlooringTypeService
type MockFlooringTypeService struct {
	mock.Mock
}

func (m *MockFlooringTypeService) Create(ctx context.Context, flooringType *pricing.FlooringType) (*pricing.FlooringType, error) {
	args := m.Called(ctx, flooringType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.FlooringType), args.Error(1)
}

func (m *MockFlooringTypeService) List(ctx context.Context) ([]*pricing.FlooringType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.FlooringType), args.Error(1)
}

func (m *MockFlooringTypeService) GetByID(ctx context.Context, id uint) (*pricing.FlooringType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.FlooringType), args.Error(1)
}

func (m *MockFlooringTypeService) Update(ctx context.Context, id uint, flooringType *pricing.FlooringType) (*pricing.FlooringType, error) {
	args := m.Called(ctx, id, flooringType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.FlooringType), args.Error(1)
}

func (m *MockFlooringTypeService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlooringTypeService) Estimate(ctx context.Context, flooringTypeID uint, areaSqft float64) (*pricing.Estimate, error) {
	args := m.Called(ctx, flooringTypeID, areaSqft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Estimate), args.Error(1)
}

// MockContactService is a mock implementation of ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, contact *leads.Contact) (*leads.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, query *leads.LeadQuery) (pagination.Page[*leads.Contact], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*leads.Contact]), args.Error(1)
}

func (m *MockContactService) GetByID(ctx context.Context, id uint) (*leads.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Contact), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, id uint, status string) (*leads.Contact, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Contact), args.Error(1)
}

func (m *MockContactService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Submit(ctx context.Context, schedule *leads.Schedule) (*leads.Schedule, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Schedule), args.Error(1)
}

func (m *MockScheduleService) List(ctx context.Context, query *leads.LeadQuery) (pagination.Page[*leads.Schedule], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*leads.Schedule]), args.Error(1)
}

func (m *MockScheduleService) GetByID(ctx context.Context, id uint) (*leads.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Schedule), args.Error(1)
}

func (m *MockScheduleService) UpdateStatus(ctx context.Context, id uint, status string) (*leads.Schedule, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Schedule), args.Error(1)
}

func (m *MockScheduleService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuoteService is a mock implementation of QuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Submit(ctx context.Context, quote *leads.Quote) (*leads.Quote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Quote), args.Error(1)
}

func (m *MockQuoteService) List(ctx context.Context, query *leads.LeadQuery) (pagination.Page[*leads.Quote], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(pagination.Page[*leads.Quote]), args.Error(1)
}

func (m *MockQuoteService) GetByID(ctx context.Context, id uint) (*leads.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Quote), args.Error(1)
}

func (m *MockQuoteService) UpdateStatus(ctx context.Context, id uint, status string) (*leads.Quote, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Quote), args.Error(1)
}

func (m *MockQuoteService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMediaService is a mock implementation of MediaService
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, form *multipart.Form, userID uint) ([]*media.Media, error) {
	args := m.Called(ctx, form, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.Media), args.Error(1)
}

func (m *MockMediaService) List(ctx context.Context, page pagination.Params) (pagination.Page[*media.Media], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(pagination.Page[*media.Media]), args.Error(1)
}

func (m *MockMediaService) GetByID(ctx context.Context, id uint) (*media.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Media), args.Error(1)
}

func (m *MockMediaService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaService) Download(ctx context.Context, fileName string) ([]byte, *media.Media, error) {
	args := m.Called(ctx, fileName)
	if args.Get(1) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*media.Media), args.Error(2)
}
