package v1

import (
	"strings"
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/faqs"
	"github.com/kagailawrence/modarflor/internal/domain/leads"
	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/domain/pricing"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/domain/testimonials"
	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/markdown"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

var validate = validators.New()

// dateLayout is the calendar date format accepted for schedule requests
const dateLayout = "2006-01-02"

// ListResponse is the envelope of every list endpoint
type ListResponse[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

func newListResponse[E any, T any](page pagination.Page[E], toResponse func(E) T) ListResponse[T] {
	data := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		data = append(data, toResponse(item))
	}
	return ListResponse[T]{Data: data, Pagination: page.Meta}
}

// Auth

// LoginRequest holds the credentials of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// LoginResponse carries the signed token and the logged in user
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest is the body of PUT /auth/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// Validate for validating ChangePasswordRequest struct
func (r *ChangePasswordRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// Users

// UserResponse never exposes the password hash
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=Admin Viewer"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToInput converts the request to the domain input
func (r *CreateUserRequest) ToInput() *users.CreateUserInput {
	return &users.CreateUserInput{Email: r.Email, Name: r.Name, Password: r.Password, Role: r.Role}
}

// UpdateUserRequest is the body of PUT /users/:id. An omitted password keeps the current one.
type UpdateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Role     string  `json:"role" validate:"required,oneof=Admin Viewer"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

// Validate for validating UpdateUserRequest struct
func (r *UpdateUserRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToInput converts the request to the domain input
func (r *UpdateUserRequest) ToInput() *users.UpdateUserInput {
	return &users.UpdateUserInput{Email: r.Email, Name: r.Name, Role: r.Role, Password: r.Password}
}

// Services

// ServiceRequest is the body of POST and PUT /services
type ServiceRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=500"`
	OrderIndex  int      `json:"order_index" validate:"gte=0"`
	Features    []string `json:"features" validate:"max=50"`
}

// Validate for validating ServiceRequest struct
func (r *ServiceRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToInput converts the request to the domain input
func (r *ServiceRequest) ToInput() *catalog.ServiceInput {
	return &catalog.ServiceInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		OrderIndex:  r.OrderIndex,
		Features:    r.Features,
	}
}

// ServiceFeatureResponse is one feature bullet
type ServiceFeatureResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}

// ServiceResponse carries the markdown description and its rendered HTML
type ServiceResponse struct {
	ID              uint                     `json:"id"`
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	DescriptionHTML string                   `json:"description_html"`
	ImageURL        string                   `json:"image_url"`
	OrderIndex      int                      `json:"order_index"`
	Features        []ServiceFeatureResponse `json:"features"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func newServiceResponse(s *catalog.Service) ServiceResponse {
	features := make([]ServiceFeatureResponse, 0, len(s.Features))
	for _, f := range s.Features {
		features = append(features, ServiceFeatureResponse{ID: f.ID, Description: f.Description})
	}
	return ServiceResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		DescriptionHTML: markdown.MustHTML(s.Description),
		ImageURL:        s.ImageURL,
		OrderIndex:      s.OrderIndex,
		Features:        features,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// Projects

// ProjectImageRequest is one gallery image of a ProjectRequest
type ProjectImageRequest struct {
	URL        string `json:"url" validate:"required,max=500"`
	Alt        string `json:"alt" validate:"omitempty,max=255"`
	IsFeatured bool   `json:"is_featured"`
}

// ProjectRequest is the body of POST and PUT /projects
type ProjectRequest struct {
	Title       string                `json:"title" validate:"required,min=1,max=200"`
	Description string                `json:"description"`
	Category    string                `json:"category" validate:"required,min=1,max=100"`
	Type        string                `json:"type" validate:"omitempty,max=100"`
	Images      []ProjectImageRequest `json:"images" validate:"max=30,dive"`
}

// Validate for validating ProjectRequest struct
func (r *ProjectRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToInput converts the request to the domain input
func (r *ProjectRequest) ToInput() *projects.ProjectInput {
	in := &projects.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
	}
	for _, img := range r.Images {
		in.Images = append(in.Images, projects.ProjectImageInput{URL: img.URL, Alt: img.Alt, IsFeatured: img.IsFeatured})
	}
	return in
}

// ProjectImageResponse is one gallery image
type ProjectImageResponse struct {
	ID         uint   `json:"id"`
	URL        string `json:"url"`
	Alt        string `json:"alt"`
	IsFeatured bool   `json:"is_featured"`
}

// ProjectResponse includes the gallery and the image shown on portfolio cards
type ProjectResponse struct {
	ID            uint                   `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	Type          string                 `json:"type"`
	Images        []ProjectImageResponse `json:"images"`
	FeaturedImage *ProjectImageResponse  `json:"featured_image,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func newProjectImageResponse(img *projects.ProjectImage) ProjectImageResponse {
	return ProjectImageResponse{ID: img.ID, URL: img.URL, Alt: img.Alt, IsFeatured: img.IsFeatured}
}

func newProjectResponse(p *projects.Project) ProjectResponse {
	images := make([]ProjectImageResponse, 0, len(p.Images))
	for i := range p.Images {
		images = append(images, newProjectImageResponse(&p.Images[i]))
	}
	resp := ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Type:        p.Type,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if featured := p.FeaturedImage(); featured != nil {
		img := newProjectImageResponse(featured)
		resp.FeaturedImage = &img
	}
	return resp
}

// Testimonials

// TestimonialRequest is the body of POST and PUT /testimonials
type TestimonialRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Role     string `json:"role" validate:"omitempty,max=100"`
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL string `json:"image_url" validate:"omitempty,max=500"`
}

// Validate for validating TestimonialRequest struct
func (r *TestimonialRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToTestimonial converts the request to the domain entity
func (r *TestimonialRequest) ToTestimonial() *testimonials.Testimonial {
	return &testimonials.Testimonial{
		Name:     strings.TrimSpace(r.Name),
		Role:     strings.TrimSpace(r.Role),
		Content:  strings.TrimSpace(r.Content),
		Rating:   r.Rating,
		ImageURL: strings.TrimSpace(r.ImageURL),
	}
}

// TestimonialResponse is a customer review
type TestimonialResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTestimonialResponse(t *testimonials.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		Content:   t.Content,
		Rating:    t.Rating,
		ImageURL:  t.ImageURL,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FAQs

// FAQRequest is the body of POST and PUT /faqs. Answer is markdown.
type FAQRequest struct {
	Question   string `json:"question" validate:"required,min=1,max=500"`
	Answer     string `json:"answer" validate:"required"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

// Validate for validating FAQRequest struct
func (r *FAQRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToFAQ converts the request to the domain entity
func (r *FAQRequest) ToFAQ() *faqs.FAQ {
	return &faqs.FAQ{
		Question:   strings.TrimSpace(r.Question),
		Answer:     strings.TrimSpace(r.Answer),
		OrderIndex: r.OrderIndex,
	}
}

// FAQResponse carries the markdown answer and its rendered HTML
type FAQResponse struct {
	ID         uint      `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	AnswerHTML string    `json:"answer_html"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newFAQResponse(f *faqs.FAQ) FAQResponse {
	return FAQResponse{
		ID:         f.ID,
		Question:   f.Question,
		Answer:     f.Answer,
		AnswerHTML: markdown.MustHTML(f.Answer),
		OrderIndex: f.OrderIndex,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

// Flooring types

// FlooringTypeRequest is the body of POST and PUT /flooring-types
type FlooringTypeRequest struct {
	Name                 string  `json:"name" validate:"required,min=1,max=100"`
	Description          string  `json:"description" validate:"omitempty,max=1000"`
	MaterialPricePerSqft float64 `json:"material_price_per_sqft" validate:"gte=0"`
	LaborPricePerSqft    float64 `json:"labor_price_per_sqft" validate:"gte=0"`
	Unit                 string  `json:"unit" validate:"omitempty,max=20"`
	OrderIndex           int     `json:"order_index" validate:"gte=0"`
}

// Validate for validating FlooringTypeRequest struct
func (r *FlooringTypeRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToFlooringType converts the request to the domain entity
func (r *FlooringTypeRequest) ToFlooringType() *pricing.FlooringType {
	return &pricing.FlooringType{
		Name:                 strings.TrimSpace(r.Name),
		Description:          strings.TrimSpace(r.Description),
		MaterialPricePerSqft: r.MaterialPricePerSqft,
		LaborPricePerSqft:    r.LaborPricePerSqft,
		Unit:                 strings.TrimSpace(r.Unit),
		OrderIndex:           r.OrderIndex,
	}
}

// FlooringTypeResponse is one entry of the price list
type FlooringTypeResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	MaterialPricePerSqft float64   `json:"material_price_per_sqft"`
	LaborPricePerSqft    float64   `json:"labor_price_per_sqft"`
	PricePerSqft         float64   `json:"price_per_sqft"`
	Unit                 string    `json:"unit"`
	OrderIndex           int       `json:"order_index"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func newFlooringTypeResponse(f *pricing.FlooringType) FlooringTypeResponse {
	return FlooringTypeResponse{
		ID:                   f.ID,
		Name:                 f.Name,
		Description:          f.Description,
		MaterialPricePerSqft: f.MaterialPricePerSqft,
		LaborPricePerSqft:    f.LaborPricePerSqft,
		PricePerSqft:         f.PricePerSqft(),
		Unit:                 f.Unit,
		OrderIndex:           f.OrderIndex,
		CreatedAt:            f.CreatedAt,
		UpdatedAt:            f.UpdatedAt,
	}
}

// EstimateRequest is the body of POST /quotes/estimate
type EstimateRequest struct {
	FlooringTypeID uint    `json:"flooring_type_id" validate:"required,gt=0"`
	AreaSqft       float64 `json:"area_sqft" validate:"gt=0,lte=1000000"`
}

// Validate for validating EstimateRequest struct
func (r *EstimateRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// EstimateBreakdown splits an estimate into material and labor
type EstimateBreakdown struct {
	MaterialCost float64 `json:"material_cost"`
	LaborCost    float64 `json:"labor_cost"`
}

// EstimateResponse is a priced, unsaved estimate
type EstimateResponse struct {
	FlooringTypeID   uint              `json:"flooring_type_id"`
	FlooringTypeName string            `json:"flooring_type_name"`
	AreaSqft         float64           `json:"area_sqft"`
	EstimatedCost    float64           `json:"estimated_cost"`
	Breakdown        EstimateBreakdown `json:"breakdown"`
}

func newEstimateResponse(e *pricing.Estimate) EstimateResponse {
	return EstimateResponse{
		FlooringTypeID:   e.FlooringTypeID,
		FlooringTypeName: e.FlooringTypeName,
		AreaSqft:         e.AreaSqft,
		EstimatedCost:    e.EstimatedCost,
		Breakdown:        EstimateBreakdown{MaterialCost: e.MaterialCost, LaborCost: e.LaborCost},
	}
}

// Leads

// StatusUpdateRequest is the body of PATCH /<leads>/:id/status
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate for validating StatusUpdateRequest struct
func (r *StatusUpdateRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ContactRequest is the public contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// Validate for validating ContactRequest struct
func (r *ContactRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToContact converts the request to the domain entity
func (r *ContactRequest) ToContact() *leads.Contact {
	return &leads.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone, Subject: r.Subject, Message: r.Message}
}

// ContactResponse is a stored contact message
type ContactResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newContactResponse(c *leads.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ScheduleRequest is the public appointment form.
// PreferredDate is a calendar date (2006-01-02) or an RFC 3339 timestamp.
type ScheduleRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,min=5,max=30"`
	Address       string `json:"address" validate:"omitempty,max=255"`
	ServiceType   string `json:"service_type" validate:"required,max=100"`
	PreferredDate string `json:"preferred_date" validate:"required"`
	PreferredTime string `json:"preferred_time" validate:"omitempty,max=50"`
	Notes         string `json:"notes" validate:"omitempty,max=2000"`
}

// Validate for validating ScheduleRequest struct
func (r *ScheduleRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return apperr.FromValidator(err)
	}
	_, err := parseDate(r.PreferredDate)
	return err
}

// ToSchedule converts the request to the domain entity
func (r *ScheduleRequest) ToSchedule() (*leads.Schedule, error) {
	date, err := parseDate(r.PreferredDate)
	if err != nil {
		return nil, err
	}
	return &leads.Schedule{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		ServiceType:   r.ServiceType,
		PreferredDate: date,
		PreferredTime: r.PreferredTime,
		Notes:         r.Notes,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperr.Invalid("preferred_date %q is not a date (YYYY-MM-DD)", value)
}

// ScheduleResponse is a stored appointment request
type ScheduleResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	ServiceType   string    `json:"service_type"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newScheduleResponse(s *leads.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		ServiceType:   s.ServiceType,
		PreferredDate: s.PreferredDate.Format(dateLayout),
		PreferredTime: s.PreferredTime,
		Notes:         s.Notes,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// QuoteRequest is the public quote form. The cost is computed by the server.
type QuoteRequest struct {
	Name             string  `json:"name" validate:"required,min=1,max=100"`
	Email            string  `json:"email" validate:"required,email,max=255"`
	Phone            string  `json:"phone" validate:"omitempty,max=30"`
	FlooringTypeID   *uint   `json:"flooring_type_id" validate:"omitempty,gt=0"`
	FlooringTypeName string  `json:"flooring_type_name" validate:"omitempty,max=100"`
	AreaSqft         float64 `json:"area_sqft" validate:"gt=0,lte=1000000"`
	Rooms            int     `json:"rooms" validate:"gte=0,lte=100"`
	Details          string  `json:"details" validate:"omitempty,max=5000"`
}

// Validate for validating QuoteRequest struct
func (r *QuoteRequest) Validate() error {
	return apperr.FromValidator(validate.Struct(r))
}

// ToQuote converts the request to the domain entity
func (r *QuoteRequest) ToQuote() *leads.Quote {
	return &leads.Quote{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		FlooringTypeID:   r.FlooringTypeID,
		FlooringTypeName: r.FlooringTypeName,
		AreaSqft:         r.AreaSqft,
		Rooms:            r.Rooms,
		Details:          r.Details,
	}
}

// QuoteResponse is a stored quote request
type QuoteResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	FlooringTypeID   *uint     `json:"flooring_type_id"`
	FlooringTypeName string    `json:"flooring_type_name"`
	AreaSqft         float64   `json:"area_sqft"`
	Rooms            int       `json:"rooms"`
	Details          string    `json:"details"`
	EstimatedCost    *float64  `json:"estimated_cost"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newQuoteResponse(q *leads.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		Name:             q.Name,
		Email:            q.Email,
		Phone:            q.Phone,
		FlooringTypeID:   q.FlooringTypeID,
		FlooringTypeName: q.FlooringTypeName,
		AreaSqft:         q.AreaSqft,
		Rooms:            q.Rooms,
		Details:          q.Details,
		EstimatedCost:    q.EstimatedCost,
		Status:           q.Status,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

// Media

// MediaResponse describes one uploaded image
type MediaResponse struct {
	ID           uint      `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	UploadedBy   uint      `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func newMediaResponse(m *media.Media) MediaResponse {
	return MediaResponse{
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

// HealthResponse reports the service and database state
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
