package commands

import (
	"fmt"
	"os"

	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const configFlag = "config"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// AddConfigFlag registers the persistent --config flag shared by every command
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(configFlag, "", "Path to the service config file (defaults to $CONFIG_PATH)")
}

// loadConfig resolves the config path from --config, then CONFIG_PATH, then the repo default
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

// openDatabase loads the config and connects to the configured database
func openDatabase(cmd *cobra.Command) (*config.RestConfig, *gorm.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return cfg, db, nil
}
