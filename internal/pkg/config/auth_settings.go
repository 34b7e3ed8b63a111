package config

import (
	"fmt"
	"time"
)

// AuthSettings configures token issuing and the bootstrap admin account
type AuthSettings struct {
	JWTSecret     string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer        string        `mapstructure:"issuer" validate:"required"`
	TokenTTL      time.Duration `mapstructure:"token_ttl" validate:"required,min=1m"`
	BcryptCost    int           `mapstructure:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
	AdminEmail    string        `mapstructure:"admin_email" validate:"omitempty,email"`
	AdminPassword string        `mapstructure:"admin_password" validate:"required_with=AdminEmail"`
	AdminName     string        `mapstructure:"admin_name"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	if err := validateSettings("AuthSettings", s); err != nil {
		return err
	}
	if s.AdminPassword != "" && len(s.AdminPassword) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}
	return nil
}
