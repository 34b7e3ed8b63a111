package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
)

// userService implements the UserService interface for account management
type userService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	logger   logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo users.UserRepository, hasher users.PasswordHasher, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Create hashes the password and stores the account
func (s *userService) Create(ctx context.Context, input *users.CreateUserInput) (*users.User, error) {
	input.Email = users.NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// List returns one page of accounts
func (s *userService) List(ctx context.Context, page pagination.Params) (pagination.Page[*users.User], error) {
	items, total, err := s.userRepo.List(ctx, page)
	if err != nil {
		return pagination.Page[*users.User]{}, fmt.Errorf("failed to list users: %w", err)
	}
	return pagination.Page[*users.User]{Items: items, Meta: pagination.NewMeta(page, total)}, nil
}

// GetByID retrieves an account by ID
func (s *userService) GetByID(ctx context.Context, id uint) (*users.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update changes the editable fields and, when given, the password
func (s *userService) Update(ctx context.Context, id uint, input *users.UpdateUserInput) (*users.User, error) {
	input.Email = users.NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = input.Email
	user.Name = input.Name
	user.Role = input.Role
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated", "user_id", user.ID, "password_changed", input.Password != nil)
	return user, nil
}

// Delete removes an account other than the caller's own
func (s *userService) Delete(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return fmt.Errorf("%w: you cannot delete your own account", apperr.ErrForbidden)
	}

	if err := s.userRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id, "by", actorID)
	return nil
}

// authService implements the AuthService interface
type authService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	tokens   users.TokenIssuer
	logger   logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo users.UserRepository, hasher users.PasswordHasher, tokens users.TokenIssuer, logger logger.Logger) (users.AuthService, error) {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}, nil
}

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)

// Login checks the credentials and issues a token
func (s *authService) Login(ctx context.Context, email, password string) (string, *users.User, error) {
	email = users.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, errInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			s.logger.Warn("login rejected", "user_id", user.ID)
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, user, nil
}

// Authenticate verifies the token and that its user still exists with the same role
func (s *authService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", apperr.ErrUnauthorized)
		}
		return nil, err
	}

	claims.Email = user.Email
	claims.Role = user.Role
	return claims, nil
}

// ChangePassword verifies the current password before storing the new hash
func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < users.MinPasswordLength {
		return apperr.Invalid("new password must be at least %d characters", users.MinPasswordLength)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, currentPassword); err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			return fmt.Errorf("%w: current password is incorrect", apperr.ErrUnauthorized)
		}
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password changed", "user_id", user.ID)
	return nil
}

// EnsureAdmin seeds the first administrator. It reports whether an account was created.
func (s *authService) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	if email == "" {
		return false, nil
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}
	input := &users.CreateUserInput{
		Email:    users.NormalizeEmail(email),
		Name:     strings.TrimSpace(name),
		Password: password,
		Role:     users.RoleAdmin,
	}
	if err := input.Validate(); err != nil {
		return false, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, err
	}

	admin := &users.User{Email: input.Email, Name: input.Name, Role: users.RoleAdmin, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create admin account: %w", err)
	}

	s.logger.Info("bootstrap admin account created", "user_id", admin.ID, "email", admin.Email)
	return true, nil
}
