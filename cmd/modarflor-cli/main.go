// Package main is the entry point for the modarflor-cli application.
// It registers the maintenance, user and seed command groups and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/kagailawrence/modarflor/cmd/modarflor-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "modarflor-cli",
		Short: "Administration CLI for the Modarflor API",
		Long: `modarflor-cli performs maintenance tasks against the Modarflor database.
It migrates the schema, manages back-office accounts, seeds the default catalog
and hashes passwords.

The database is configured the same way as the REST API: the file named by --config
or CONFIG_PATH, overridden by MODARFLOR_* environment variables.`,
		SilenceUsage: true,
	}
	commands.AddConfigFlag(rootCmd)

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMaintenanceCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize maintenance commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	return nil
}
