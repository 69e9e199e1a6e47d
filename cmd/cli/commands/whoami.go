package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity and current view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Sessions.IsAuthenticated() {
				fmt.Println("Not signed in.")
				return nil
			}

			identity := app.Sessions.Identity()
			fmt.Printf("\nSigned in as: %s\n", identity.Name)
			fmt.Printf("Email:        %s\n", identity.Email)
			fmt.Printf("Role:         %s\n", identity.Role)
			if identity.Role == model.RoleVolunteer {
				fmt.Printf("Onboarding:   complete=%v status=%s\n", identity.OnboardingComplete, identity.Status)
			}
			fmt.Printf("Current view: %s\n\n", router.Resolve(app.Sessions))
			return nil
		},
	}
}
