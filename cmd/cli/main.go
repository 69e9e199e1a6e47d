package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/cmd/cli/commands"
	"github.com/volunteerhub/volunteerhub-cli/internal/config"
	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/localstore"
	"github.com/volunteerhub/volunteerhub-cli/pkg/onboarding"
	"github.com/volunteerhub/volunteerhub-cli/pkg/session"
	"github.com/volunteerhub/volunteerhub-cli/pkg/utils/logging"
)

// app is allocated once so the command closures share the populated context
var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volunteerhub",
		Short: "VolunteerHub CLI - Coordinate volunteers, programs, and emergency response",
		Long:  `A CLI client for the VolunteerHub coordination platform: volunteer onboarding, admin review, and organization program management.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.RegisterCmd(app))
	rootCmd.AddCommand(commands.RegisterOrganizationCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.OnboardCmd(app))
	rootCmd.AddCommand(commands.DashboardCmd(app))
	rootCmd.AddCommand(commands.EmergencyCmd(app))
	rootCmd.AddCommand(commands.UpdateProfileCmd(app))
	rootCmd.AddCommand(commands.ListVolunteersCmd(app))
	rootCmd.AddCommand(commands.ApproveVolunteerCmd(app))
	rootCmd.AddCommand(commands.RejectVolunteerCmd(app))
	rootCmd.AddCommand(commands.ListOrganizationsCmd(app))
	rootCmd.AddCommand(commands.ReviewOrganizationCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.ListProgramsCmd(app))
	rootCmd.AddCommand(commands.CreateProgramCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, storage, session, and the API client
func initApp() error {
	var err error

	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Initialize local storage
	app.Logger.Info("Opening local storage", zap.String("state_dir", app.Cfg.StateDir))
	app.Storage, err = localstore.New(app.Cfg.StateDir)
	if err != nil {
		return fmt.Errorf("failed to open local storage: %w", err)
	}

	// Restore the session from storage
	app.Sessions = session.New(app.Storage, app.Logger)
	app.Logger.Debug("Session restored", zap.Bool("authenticated", app.Sessions.IsAuthenticated()))

	// Initialize the API client
	app.Logger.Info("Initializing API client", zap.String("base_url", app.Cfg.APIBaseURL))
	app.API = apiclient.New(app.Ctx, app.Cfg.APIBaseURL, app.Storage, app.Logger)

	// Onboarding wizard state and admin console cache
	app.Machine = onboarding.NewMachine(app.Cfg.SlotKeys(), app.Logger)
	app.Console = services.NewAdminConsole()

	app.Logger.Info("Application initialized successfully")
	return nil
}
