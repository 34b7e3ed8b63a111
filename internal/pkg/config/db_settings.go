package config

import "fmt"

// DatabaseSettings holds the connection settings of the relational store
type DatabaseSettings struct {
	Type         string `mapstructure:"type" validate:"required,oneof=postgres sqlite mysql"`
	DSN          string `mapstructure:"dsn"`
	Name         string `mapstructure:"name"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validateSettings("DatabaseSettings", s); err != nil {
		return err
	}

	// sqlite falls back to an in-memory database, the network databases need a DSN
	if s.Type != SqliteDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for database type %s", s.Type)
	}

	return nil
}
