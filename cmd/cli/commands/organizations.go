package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// ListOrganizationsCmd creates the listOrganizations command
func ListOrganizationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listOrganizations",
		Short: "List organizations for admin review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireAdmin); err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString("status")

			organizations, err := app.API.GetOrganizations(app.Ctx, status)
			if err != nil {
				return fmt.Errorf("failed to list organizations: %w", err)
			}

			fmt.Printf("\nFound %d organizations:\n\n", len(organizations))
			for _, org := range organizations {
				fmt.Printf("- %s (%s) - %s - %s\n", org.Name, org.ID, org.Status, org.Email)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by review status (pending, approved, rejected, suspended)")

	return cmd
}

// ReviewOrganizationCmd creates the reviewOrganization command
func ReviewOrganizationCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reviewOrganization <organization_id> <status>",
		Short: "Set an organization's review status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireAdmin); err != nil {
				return err
			}

			status := model.Status(args[1])
			updated, err := services.ReviewOrganization(app.Ctx, app.API, app.Logger, args[0], status)
			if err != nil {
				return err
			}

			fmt.Printf("✓ %s is now %s\n", updated.Name, updated.Status)
			return nil
		},
	}
}
