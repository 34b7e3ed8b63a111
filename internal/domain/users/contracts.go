package users

import (
	"context"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
)

// UserRepository defines the persistence operations for users
type UserRepository interface {
	// Create adds a new user; a duplicate email yields apperr.ErrConflict
	Create(ctx context.Context, user *User) error
	// List returns one page of users ordered by id and the total count
	List(ctx context.Context, page pagination.Params) ([]*User, int64, error)
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update persists all editable fields of the user
	Update(ctx context.Context, user *User) error
	// DeleteByID removes a user
	DeleteByID(ctx context.Context, id uint) error
	// Count returns the number of stored users
	Count(ctx context.Context) (int64, error)
}

// UserService defines account management for administrators.
type UserService interface {
	Create(ctx context.Context, input *CreateUserInput) (*User, error)
	List(ctx context.Context, page pagination.Params) (pagination.Page[*User], error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, id uint, input *UpdateUserInput) (*User, error)
	// Delete removes the account id on behalf of actorID; deleting oneself is rejected.
	Delete(ctx context.Context, actorID, id uint) error
}

// AuthService defines login, token verification and password changes.
type AuthService interface {
	// Login checks the credentials and returns a signed token for the user.
	// Unknown emails and wrong passwords both yield apperr.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (string, *User, error)
	// Authenticate verifies a bearer token and returns its claims
	Authenticate(ctx context.Context, token string) (*Claims, error)
	// ChangePassword replaces the password after checking the current one
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	// EnsureAdmin creates the configured admin account when no users exist yet
	EnsureAdmin(ctx context.Context, email, password, name string) (bool, error)
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs and parses access tokens
type TokenIssuer interface {
	Issue(user *User) (string, time.Time, error)
	Parse(token string) (*Claims, error)
}
