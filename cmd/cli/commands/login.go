package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in as a volunteer, admin, or organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")

			creds := apiclient.Credentials{
				Email:    args[0],
				Password: args[1],
			}

			identity, err := services.Login(app.Ctx, app.API, app.Sessions, app.Logger, model.Role(role), creds)
			if err != nil {
				fmt.Printf("❌ Login failed: %v\n", err)
				return err
			}

			fmt.Printf("\n✓ Signed in as %s (%s)\n", identity.Name, identity.Role)
			fmt.Printf("Current view: %s\n\n", router.Resolve(app.Sessions))
			return nil
		},
	}

	cmd.Flags().String("role", string(model.RoleVolunteer), "Account role (volunteer, admin, organization)")

	return cmd
}
