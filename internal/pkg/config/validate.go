package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var settingsValidator = validator.New()

func validateSettings(section string, s interface{}) error {
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("validation failed for %s: %w", section, err)
	}
	return nil
}
