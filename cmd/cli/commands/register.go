package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// RegisterCmd creates the register command for volunteer accounts
func RegisterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "register <name> <email> <password>",
		Short: "Create a volunteer account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := apiclient.RegisterRequest{
				Name:     args[0],
				Email:    args[1],
				Password: args[2],
			}

			identity, err := services.Register(app.Ctx, app.API, app.Sessions, app.Logger, req)
			if err != nil {
				fmt.Printf("❌ Registration failed: %v\n", err)
				return err
			}

			fmt.Printf("\n✓ Account created for %s\n", identity.Email)
			fmt.Printf("Current view: %s\n", router.Resolve(app.Sessions))
			fmt.Println("Run 'onboard' to complete your volunteer profile.")
			fmt.Println()
			return nil
		},
	}
}

// RegisterOrganizationCmd creates the registerOrganization command
func RegisterOrganizationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registerOrganization <name> <email> <password>",
		Short: "Create an organization account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			website, _ := cmd.Flags().GetString("website")
			phone, _ := cmd.Flags().GetString("phone")

			req := apiclient.RegisterOrganizationRequest{
				Name:        args[0],
				Email:       args[1],
				Password:    args[2],
				Description: description,
				Website:     website,
				Phone:       phone,
			}

			identity, err := services.RegisterOrganization(app.Ctx, app.API, app.Sessions, app.Logger, req)
			if err != nil {
				fmt.Printf("❌ Registration failed: %v\n", err)
				return err
			}

			fmt.Printf("\n✓ Organization account created for %s\n", identity.Email)
			if identity.Role == model.RoleOrganization {
				fmt.Println("Your organization is pending admin approval.")
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("description", "", "What the organization does")
	cmd.Flags().String("website", "", "Organization website")
	cmd.Flags().String("phone", "", "Contact phone number")

	return cmd
}
