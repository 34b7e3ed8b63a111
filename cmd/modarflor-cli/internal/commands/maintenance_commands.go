package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/kagailawrence/modarflor/internal/infrastructure/auth"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// MaintenanceCommandHandler runs schema migrations and password hashing
type MaintenanceCommandHandler struct {
	logger logger.Logger
}

// NewMaintenanceCommandHandler initializes a MaintenanceCommandHandler with a console logger
func NewMaintenanceCommandHandler() (*MaintenanceCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &MaintenanceCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates every table of the configured database
func (commandHandler *MaintenanceCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database", "error", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return err
	}
	commandHandler.logger.Info("Database migrations completed successfully", "type", cfg.Database.Type)
	return nil
}

// HashPasswordCmd prints the bcrypt hash of a password read from the argument or stdin
func (commandHandler *MaintenanceCommandHandler) HashPasswordCmd(cmd *cobra.Command, args []string) error {
	cost, err := cmd.Flags().GetInt("cost")
	if err != nil {
		return fmt.Errorf("invalid cost flag: %w", err)
	}

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password from stdin: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hasher, err := auth.NewBcryptHasher(cost)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

// InitMaintenanceCommands registers migrate and hash-password
func InitMaintenanceCommands(rootCmd *cobra.Command) error {
	handler, err := NewMaintenanceCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create maintenance command handler: %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var hashPasswordCmd = &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Long:  "Print the bcrypt hash of a password. Without an argument the password is read from the first line of stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.HashPasswordCmd,
	}
	hashPasswordCmd.Flags().Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	rootCmd.AddCommand(hashPasswordCmd)

	return nil
}
