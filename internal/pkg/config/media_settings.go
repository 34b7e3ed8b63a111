package config

import "fmt"

// MediaSettings configures where uploaded images are stored
type MediaSettings struct {
	Provider         string `mapstructure:"provider" validate:"required,oneof=local azure"`
	LocalDir         string `mapstructure:"local_dir"`
	PublicBaseURL    string `mapstructure:"public_base_url" validate:"required"`
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`
	MaxFileSize      int64  `mapstructure:"max_file_size" validate:"required,min=1"`
	MaxFiles         int    `mapstructure:"max_files" validate:"required,min=1,max=50"`
}

// Validate checks that all fields in MediaSettings are valid
func (s *MediaSettings) Validate() error {
	if err := validateSettings("MediaSettings", s); err != nil {
		return err
	}

	switch s.Provider {
	case MediaProviderLocal:
		if s.LocalDir == "" {
			return fmt.Errorf("local media provider requires local_dir")
		}
	case MediaProviderAzure:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("azure media provider requires connection_string and container_name")
		}
	}

	return nil
}
