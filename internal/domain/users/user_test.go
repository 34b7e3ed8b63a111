//go:build unit
// +build unit

package users

import (
	"errors"
	"testing"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr string
	}{
		{
			name: "valid admin",
			user: User{Email: "admin@modarflor.com", PasswordHash: "$2a$10$x", Name: "Admin", Role: RoleAdmin},
		},
		{
			name: "valid viewer",
			user: User{Email: "viewer@modarflor.com", PasswordHash: "$2a$10$x", Name: "Viewer", Role: RoleViewer},
		},
		{
			name:    "invalid email",
			user:    User{Email: "nope", PasswordHash: "h", Name: "A", Role: RoleAdmin},
			wantErr: "Field: Email, Tag: email",
		},
		{
			name:    "unknown role",
			user:    User{Email: "a@b.co", PasswordHash: "h", Name: "A", Role: "Owner"},
			wantErr: "Field: Role, Tag: oneof",
		},
		{
			name:    "missing hash",
			user:    User{Email: "a@b.co", Name: "A", Role: RoleViewer},
			wantErr: "Field: PasswordHash, Tag: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, apperr.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateUserInput_Validate(t *testing.T) {
	valid := CreateUserInput{Email: "a@b.co", Name: "A", Password: "longenough", Role: RoleViewer}
	assert.NoError(t, valid.Validate())

	short := valid
	short.Password = "short"
	assert.Error(t, short.Validate())
}

func TestUpdateUserInput_Validate(t *testing.T) {
	in := UpdateUserInput{Email: "a@b.co", Name: "A", Role: RoleAdmin}
	assert.NoError(t, in.Validate())

	short := "abc"
	in.Password = &short
	assert.Error(t, in.Validate())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@modarflor.com", NormalizeEmail("  Admin@ModarFlor.com "))
}

func TestRoles(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleViewer}).IsAdmin())
	assert.True(t, (&Claims{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&Claims{Role: RoleViewer}).IsAdmin())
}
