package users

import (
	"strings"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

const (
	// RoleAdmin may read and mutate every resource
	RoleAdmin = "Admin"
	// RoleViewer may only read back-office resources
	RoleViewer = "Viewer"

	// MinPasswordLength applies to new and changed passwords
	MinPasswordLength = 8
)

var validate = validators.New()

// User entity
type User struct {
	ID           uint
	Email        string `validate:"required,email,max=255"`
	PasswordHash string `validate:"required"`
	Name         string `validate:"required,min=1,max=100"`
	Role         string `validate:"required,oneof=Admin Viewer"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	return apperr.FromValidator(validate.Struct(u))
}

// IsAdmin reports whether the user holds the Admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUserInput carries the fields required to create an account
type CreateUserInput struct {
	Email    string `validate:"required,email,max=255"`
	Name     string `validate:"required,min=1,max=100"`
	Password string `validate:"required,min=8,max=72"`
	Role     string `validate:"required,oneof=Admin Viewer"`
}

// Validate for validating CreateUserInput struct
func (in *CreateUserInput) Validate() error {
	return apperr.FromValidator(validate.Struct(in))
}

// UpdateUserInput carries the editable account fields. A nil Password keeps the current one.
type UpdateUserInput struct {
	Email    string  `validate:"required,email,max=255"`
	Name     string  `validate:"required,min=1,max=100"`
	Role     string  `validate:"required,oneof=Admin Viewer"`
	Password *string `validate:"omitempty,min=8,max=72"`
}

// Validate for validating UpdateUserInput struct
func (in *UpdateUserInput) Validate() error {
	return apperr.FromValidator(validate.Struct(in))
}

// Claims are the identity facts carried by an access token
type Claims struct {
	UserID    uint
	Email     string
	Role      string
	ExpiresAt time.Time
}

// IsAdmin reports whether the token was issued to an administrator
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
