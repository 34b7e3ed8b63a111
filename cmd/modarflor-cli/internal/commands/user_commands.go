package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/kagailawrence/modarflor/internal/app"
	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/infrastructure/auth"
	"github.com/kagailawrence/modarflor/internal/infrastructure/persistence"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"github.com/spf13/cobra"
)

// cliActorID is passed as the acting user for deletions from the CLI, so no account counts as "self"
const cliActorID = 0

// UserCommandHandler manages back-office accounts directly against the database
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes a UserCommandHandler with a console logger
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &UserCommandHandler{logger: loggerInstance}, nil
}

// withUserService opens the database, builds the user service and closes the connection afterwards
func (commandHandler *UserCommandHandler) withUserService(cmd *cobra.Command, fn func(users.UserService) error) error {
	cfg, db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database", "error", err)
		}
	}()

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}
	userService, err := app.NewUserService(userRepo, hasher, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}
	return fn(userService)
}

// CreateUserCmd creates an account with the given role
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	input := &users.CreateUserInput{}
	var err error
	if input.Email, err = cmd.Flags().GetString("email"); err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	if input.Name, err = cmd.Flags().GetString("name"); err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	if input.Password, err = cmd.Flags().GetString("password"); err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	if input.Role, err = cmd.Flags().GetString("role"); err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}

	return commandHandler.withUserService(cmd, func(userService users.UserService) error {
		user, err := userService.Create(cmd.Context(), input)
		if err != nil {
			return err
		}
		commandHandler.logger.Info("User created", "id", user.ID, "email", user.Email, "role", user.Role)
		return nil
	})
}

// ListUsersCmd prints one page of accounts as a table
func (commandHandler *UserCommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) error {
	pageNumber, err := cmd.Flags().GetInt("page")
	if err != nil {
		return fmt.Errorf("invalid page flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}

	return commandHandler.withUserService(cmd, func(userService users.UserService) error {
		page, err := userService.List(cmd.Context(), pagination.New(pageNumber, limit))
		if err != nil {
			return err
		}
		return writeUserTable(cmd, page)
	})
}

func writeUserTable(cmd *cobra.Command, page pagination.Page[*users.User]) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tCREATED")
	for _, u := range page.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Name, u.Role, u.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "\npage %d of %d, %d users\n", page.Meta.Page, page.Meta.TotalPages, page.Meta.Total)
	return w.Flush()
}

// DeleteUserCmd removes the account with the given ID
func (commandHandler *UserCommandHandler) DeleteUserCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	return commandHandler.withUserService(cmd, func(userService users.UserService) error {
		if err := userService.Delete(cmd.Context(), cliActorID, uint(id)); err != nil {
			return err
		}
		commandHandler.logger.Info("User deleted", "id", id)
		return nil
	})
}

// InitUserCommands registers the user command group
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create user command handler: %w", err)
	}

	var userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage back-office accounts",
	}

	var createUserCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE:  handler.CreateUserCmd,
	}
	createUserCmd.Flags().String("email", "", "Login email of the account")
	createUserCmd.Flags().String("name", "", "Display name")
	createUserCmd.Flags().String("password", "", "Initial password (at least 8 characters)")
	createUserCmd.Flags().String("role", users.RoleViewer, "Role: Admin or Viewer")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("name")
	_ = createUserCmd.MarkFlagRequired("password")
	userCmd.AddCommand(createUserCmd)

	var listUsersCmd = &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE:  handler.ListUsersCmd,
	}
	listUsersCmd.Flags().Int("page", 1, "Page number")
	listUsersCmd.Flags().Int("limit", pagination.DefaultLimit, "Accounts per page")
	userCmd.AddCommand(listUsersCmd)

	var deleteUserCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteUserCmd,
	}
	userCmd.AddCommand(deleteUserCmd)

	rootCmd.AddCommand(userCmd)
	return nil
}
